package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Mode — игровой режим osu!.
type Mode uint8

const (
	ModeOsu Mode = iota
	ModeTaiko
	ModeCatch
	ModeMania
)

// ErrUnknownMode — код или имя режима вне таблицы.
var ErrUnknownMode = errors.New("unknown game mode")

// таблица режимов: wire-код совпадает с индексом, первое имя — каноническое
var modeTable = []struct {
	mode  Mode
	code  int
	names []string
}{
	{ModeOsu, 0, []string{"osu", "standard", "std"}},
	{ModeTaiko, 1, []string{"taiko"}},
	{ModeCatch, 2, []string{"catch", "fruits", "ctb", "catchthebeat"}},
	{ModeMania, 3, []string{"mania", "osumania"}},
}

// ModeFromCode переводит числовой код источника в Mode.
func ModeFromCode(code int) (Mode, error) {
	for _, m := range modeTable {
		if m.code == code {
			return m.mode, nil
		}
	}
	return ModeOsu, fmt.Errorf("%w: code %d", ErrUnknownMode, code)
}

// ModeFromName понимает имена в любом регистре ("Osu", "CatchTheBeat", "OsuMania" ...).
func ModeFromName(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, m := range modeTable {
		for _, alias := range m.names {
			if alias == n {
				return m.mode, nil
			}
		}
	}
	return ModeOsu, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Code — обратное отображение в wire-код.
func (m Mode) Code() int {
	for _, e := range modeTable {
		if e.mode == m {
			return e.code
		}
	}
	return 0
}

func (m Mode) String() string {
	for _, e := range modeTable {
		if e.mode == m {
			return e.names[0]
		}
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// UnmarshalJSON принимает и число (tosu), и строку (StreamCompanion).
func (m *Mode) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err == nil {
		v, err := ModeFromCode(code)
		if err != nil {
			return err
		}
		*m = v
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("game mode: expected number or string, got %s", data)
	}
	v, err := ModeFromName(name)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
