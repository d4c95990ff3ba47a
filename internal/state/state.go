package state

import (
	"fmt"
	"reflect"
	"strings"
)

// State — "что сейчас происходит": выбранная карта, её параметры, pp, моды, скин, режим.
// Нулевое значение — запись по умолчанию.
type State struct {
	Artist        string
	ArtistUnicode string
	Title         string
	TitleUnicode  string
	Version       string
	Creator       string
	Mods          string // как прислал источник, например "HD,DT"
	ModsNum       uint64
	Skin          string
	MapID         uint32

	Stars float64
	CS    float64
	AR    float64
	OD    float64
	HP    float64

	// без модов
	PP98 float64
	PP99 float64
	PPSS float64

	// с текущими модами
	PPMods95 float64
	PPMods96 float64
	PPMods97 float64
	PPMods98 float64
	PPMods99 float64
	PPModsSS float64

	Mode Mode
}

// Partial — разреженное обновление State: nil означает "нет мнения".
// json-теги — имена токенов StreamCompanion, сообщение компаньона
// декодируется прямо в Partial. Поля с тегом "-" заполняет только tosu.
type Partial struct {
	Artist        *string `json:"artistRoman"`
	ArtistUnicode *string `json:"artistUnicode"`
	Title         *string `json:"titleRoman"`
	TitleUnicode  *string `json:"titleUnicode"`
	Version       *string `json:"diffName"`
	Creator       *string `json:"creator"`
	Mods          *string `json:"mods"`
	ModsNum       *uint64 `json:"-"`
	Skin          *string `json:"skin"`
	MapID         *uint32 `json:"mapid"`

	Stars *float64 `json:"mStars"`
	CS    *float64 `json:"mCS"`
	AR    *float64 `json:"mAR"`
	OD    *float64 `json:"mOD"`
	HP    *float64 `json:"mHP"`

	PP98 *float64 `json:"osu_98PP"`
	PP99 *float64 `json:"osu_99PP"`
	PPSS *float64 `json:"osu_SSPP"`

	PPMods95 *float64 `json:"osu_m95PP"`
	PPMods96 *float64 `json:"osu_m96PP"`
	PPMods97 *float64 `json:"osu_m97PP"`
	PPMods98 *float64 `json:"osu_m98PP"`
	PPMods99 *float64 `json:"osu_m99PP"`
	PPModsSS *float64 `json:"osu_mSSPP"`

	Mode *Mode `json:"gameMode"`
}

// Value возвращает указатель на копию v, удобно для сборки Partial.
func Value[T any](v T) *T {
	return &v
}

// mergePlan[i] — индекс поля State для i-го поля Partial.
var (
	mergePlan []int
	keys      []string
)

func init() {
	st := reflect.TypeOf(State{})
	pt := reflect.TypeOf(Partial{})
	if st.NumField() != pt.NumField() {
		panic(fmt.Sprintf("state: State has %d fields, Partial has %d", st.NumField(), pt.NumField()))
	}
	mergePlan = make([]int, pt.NumField())
	for i := 0; i < pt.NumField(); i++ {
		pf := pt.Field(i)
		sf, ok := st.FieldByName(pf.Name)
		if !ok {
			panic("state: Partial." + pf.Name + " has no State counterpart")
		}
		if pf.Type.Kind() != reflect.Pointer || pf.Type.Elem() != sf.Type {
			panic(fmt.Sprintf("state: Partial.%s must be *%s", pf.Name, sf.Type))
		}
		mergePlan[i] = sf.Index[0]

		name, _, _ := strings.Cut(pf.Tag.Get("json"), ",")
		if name != "" && name != "-" {
			keys = append(keys, name)
		}
	}
}

// Merge выставляет ровно те поля, что присутствуют в p; остальные не трогает.
func (s *State) Merge(p Partial) {
	sv := reflect.ValueOf(s).Elem()
	pv := reflect.ValueOf(p)
	for i, idx := range mergePlan {
		f := pv.Field(i)
		if f.IsNil() {
			continue
		}
		sv.Field(idx).Set(f.Elem())
	}
}

// IsEmpty — в обновлении нет ни одного поля.
func (p Partial) IsEmpty() bool {
	pv := reflect.ValueOf(p)
	for i := range mergePlan {
		if !pv.Field(i).IsNil() {
			return false
		}
	}
	return true
}

// Keys возвращает имена полей, которые понимает запись (в нотации компаньона).
// Этот список отправляется источнику при подключении.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}
