// Package format подставляет поля текущего состояния в шаблоны ответов
// вида "{artist} - {title} [{version}]".
package format

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/EgorLis/osunpbot/internal/state"
)

var (
	ErrUnknownPlaceholder = errors.New("unknown placeholder")
	ErrMalformed          = errors.New("malformed template")
)

// Error — ошибка форматирования; вызывающий обязан не отправлять частичный текст.
type Error struct {
	Template    string
	Placeholder string
	Err         error
}

func (e *Error) Error() string {
	if e.Placeholder != "" {
		return fmt.Sprintf("format %q: %v {%s}", e.Template, e.Err, e.Placeholder)
	}
	return fmt.Sprintf("format %q: %v", e.Template, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func float1(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
func float2(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

var placeholders = map[string]func(s state.State) string{
	"artist":         func(s state.State) string { return s.Artist },
	"artist_unicode": func(s state.State) string { return s.ArtistUnicode },
	"title":          func(s state.State) string { return s.Title },
	"title_unicode":  func(s state.State) string { return s.TitleUnicode },
	"version":        func(s state.State) string { return s.Version },
	"creator":        func(s state.State) string { return s.Creator },
	"mods":           func(s state.State) string { return s.ModList() },
	"mods_raw":       func(s state.State) string { return s.Mods },
	"skin":           func(s state.State) string { return s.Skin },
	"map_id":         func(s state.State) string { return strconv.FormatUint(uint64(s.MapID), 10) },
	"mode":           func(s state.State) string { return s.Mode.String() },

	"stars": func(s state.State) string { return float2(s.Stars) },
	"cs":    func(s state.State) string { return float1(s.CS) },
	"ar":    func(s state.State) string { return float1(s.AR) },
	"od":    func(s state.State) string { return float1(s.OD) },
	"hp":    func(s state.State) string { return float1(s.HP) },

	"pp_98":      func(s state.State) string { return float1(s.PP98) },
	"pp_99":      func(s state.State) string { return float1(s.PP99) },
	"pp_ss":      func(s state.State) string { return float1(s.PPSS) },
	"pp_mods_95": func(s state.State) string { return float1(s.PPMods95) },
	"pp_mods_96": func(s state.State) string { return float1(s.PPMods96) },
	"pp_mods_97": func(s state.State) string { return float1(s.PPMods97) },
	"pp_mods_98": func(s state.State) string { return float1(s.PPMods98) },
	"pp_mods_99": func(s state.State) string { return float1(s.PPMods99) },
	"pp_mods_ss": func(s state.State) string { return float1(s.PPModsSS) },

	// производные
	"link":    func(s state.State) string { return s.Link() },
	"beatmap": func(s state.State) string { return s.Beatmap() },
	"pp":      func(s state.State) string { return s.PP() },
}

// Placeholders — отсортированный список поддерживаемых имён.
func Placeholders() []string {
	out := make([]string, 0, len(placeholders))
	for name := range placeholders {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Format рендерит template по снапшоту s.
func Format(template string, s state.State) (string, error) {
	t, err := fasttemplate.NewTemplate(template, "{", "}")
	if err != nil {
		return "", &Error{Template: template, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	return t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		name := strings.TrimSpace(tag)
		render, ok := placeholders[name]
		if !ok {
			return 0, &Error{Template: template, Placeholder: name, Err: ErrUnknownPlaceholder}
		}
		return io.WriteString(w, render(s))
	})
}

// Validate проверяет шаблон на пустом состоянии: синтаксис и имена.
func Validate(template string) error {
	_, err := Format(template, state.State{})
	return err
}
