package tosu

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/EgorLis/osunpbot/internal/state"
)

const DefaultURL = "ws://localhost:24050/ws"

var errMissingSection = errors.New("missing section")

type settingsFolders struct {
	Skin string `json:"skin"`
}

type settings struct {
	Folders *settingsFolders `json:"folders"`
}

type beatmapMetadata struct {
	Artist         string `json:"artist"`
	ArtistOriginal string `json:"artistOriginal"`
	Title          string `json:"title"`
	TitleOriginal  string `json:"titleOriginal"`
	Mapper         string `json:"mapper"`
	Difficulty     string `json:"difficulty"`
}

type beatmapStats struct {
	SR float64 `json:"SR"`
	CS float64 `json:"CS"`
	AR float64 `json:"AR"`
	OD float64 `json:"OD"`
	HP float64 `json:"HP"`
}

type beatmap struct {
	ID       uint32           `json:"id"`
	Metadata *beatmapMetadata `json:"metadata"`
	Stats    *beatmapStats    `json:"stats"`
}

type mods struct {
	Num uint64 `json:"num"`
	Str string `json:"str"`
}

// pp для текущего выбора модов, ключ — точность
type ppMap map[string]float64

var ppKeys = []string{"95", "96", "97", "98", "99", "100"}

type menu struct {
	GameMode *int     `json:"gameMode"`
	Beatmap  *beatmap `json:"bm"`
	Mods     *mods    `json:"mods"`
	PP       ppMap    `json:"pp"`
}

// Message — одно сообщение потока tosu (только нужные нам поля).
type Message struct {
	Settings *settings `json:"settings"`
	Menu     *menu     `json:"menu"`
}

// Decode разбирает сообщение целиком и только потом строит обновление.
// Любая отсутствующая секция или неизвестный код режима — ошибка
// декодирования, сообщение отбрасывается целиком.
func Decode(data []byte) (state.Partial, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return state.Partial{}, err
	}
	if err := msg.validate(); err != nil {
		return state.Partial{}, err
	}
	mode, err := state.ModeFromCode(*msg.Menu.GameMode)
	if err != nil {
		return state.Partial{}, err
	}
	return msg.partial(mode), nil
}

func (m Message) validate() error {
	missing := func(path string) error { return fmt.Errorf("%w: %s", errMissingSection, path) }

	switch {
	case m.Settings == nil:
		return missing("settings")
	case m.Settings.Folders == nil:
		return missing("settings.folders")
	case m.Menu == nil:
		return missing("menu")
	case m.Menu.GameMode == nil:
		return missing("menu.gameMode")
	case m.Menu.Beatmap == nil:
		return missing("menu.bm")
	case m.Menu.Beatmap.Metadata == nil:
		return missing("menu.bm.metadata")
	case m.Menu.Beatmap.Stats == nil:
		return missing("menu.bm.stats")
	case m.Menu.Mods == nil:
		return missing("menu.mods")
	case m.Menu.PP == nil:
		return missing("menu.pp")
	}
	for _, k := range ppKeys {
		if _, ok := m.Menu.PP[k]; !ok {
			return missing("menu.pp." + k)
		}
	}
	return nil
}

func (m Message) partial(mode state.Mode) state.Partial {
	bm := m.Menu.Beatmap
	return state.Partial{
		Artist:        state.Value(bm.Metadata.Artist),
		ArtistUnicode: state.Value(bm.Metadata.ArtistOriginal),
		Title:         state.Value(bm.Metadata.Title),
		TitleUnicode:  state.Value(bm.Metadata.TitleOriginal),
		Version:       state.Value(bm.Metadata.Difficulty),
		Creator:       state.Value(bm.Metadata.Mapper),
		Mods:          state.Value(m.Menu.Mods.Str),
		ModsNum:       state.Value(m.Menu.Mods.Num),
		Skin:          state.Value(m.Settings.Folders.Skin),
		MapID:         state.Value(bm.ID),
		Stars:         state.Value(bm.Stats.SR),
		CS:            state.Value(bm.Stats.CS),
		AR:            state.Value(bm.Stats.AR),
		OD:            state.Value(bm.Stats.OD),
		HP:            state.Value(bm.Stats.HP),
		PPMods95:      state.Value(m.Menu.PP["95"]),
		PPMods96:      state.Value(m.Menu.PP["96"]),
		PPMods97:      state.Value(m.Menu.PP["97"]),
		PPMods98:      state.Value(m.Menu.PP["98"]),
		PPMods99:      state.Value(m.Menu.PP["99"]),
		PPModsSS:      state.Value(m.Menu.PP["100"]),
		Mode:          state.Value(mode),
	}
}
