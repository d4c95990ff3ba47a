package state

import (
	"fmt"
	"strings"
)

const beatmapURL = "https://osu.ppy.sh/b/%d"

// Link — каноническая ссылка на карту или "" если id неизвестен.
func (s State) Link() string {
	if s.MapID == 0 {
		return ""
	}
	return fmt.Sprintf(beatmapURL, s.MapID)
}

// Beatmap — строка вида "Artist - Title [Version] by Creator [link]".
func (s State) Beatmap() string {
	line := fmt.Sprintf("%s - %s [%s] by %s", s.Artist, s.Title, s.Version, s.Creator)
	if link := s.Link(); link != "" {
		return line + " " + link
	}
	return line
}

// ModList — моды без разделителей: "HD,DT" -> "HDDT".
func (s State) ModList() string {
	return strings.Join(strings.Split(s.Mods, ","), "")
}

// PP — строка с pp для 98/99/100%. Если pp за SS с модами выводится так же,
// как без модов, суффикс "+MODS" не выводится.
func (s State) PP() string {
	base := fmt.Sprintf("PP (98/99/100): %.1f/%.1f/%.1f", s.PP98, s.PP99, s.PPSS)
	if fmt.Sprintf("%.1f", s.PPSS) == fmt.Sprintf("%.1f", s.PPModsSS) {
		return base
	}
	return fmt.Sprintf("%s +%s %.1f/%.1f/%.1f", base, s.ModList(), s.PPMods98, s.PPMods99, s.PPModsSS)
}
