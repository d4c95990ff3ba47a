package state

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() State {
	return State{
		Artist:   "Camellia",
		Title:    "Exit This Earth's Atomosphere",
		Version:  "Evolution",
		Creator:  "ProfessionalBox",
		Mods:     "HD,DT",
		ModsNum:  72,
		Skin:     "- Skin -",
		MapID:    2437245,
		Stars:    7.31,
		PP98:     412.3,
		PP99:     450.1,
		PPSS:     501.9,
		PPMods98: 610,
		PPMods99: 660,
		PPModsSS: 720,
		Mode:     ModeTaiko,
	}
}

func TestMerge_EmptyPartialKeepsState(t *testing.T) {
	s := sampleState()
	before := s

	s.Merge(Partial{})

	assert.Equal(t, before, s)
	assert.True(t, Partial{}.IsEmpty())
}

func TestMerge_SetsOnlyPresentFields(t *testing.T) {
	s := sampleState()
	before := s

	s.Merge(Partial{
		Title:    Value("Ascension to Heaven"),
		MapID:    Value(uint32(0)),
		PPMods99: Value(1.5),
		Mode:     Value(ModeMania),
	})

	want := before
	want.Title = "Ascension to Heaven"
	want.MapID = 0
	want.PPMods99 = 1.5
	want.Mode = ModeMania
	assert.Equal(t, want, s)
}

func TestMerge_LastWriterWins(t *testing.T) {
	var s State
	s.Merge(Partial{Skin: Value("first")})
	s.Merge(Partial{Skin: Value("second"), Artist: Value("A")})
	s.Merge(Partial{Artist: Value("B")})

	assert.Equal(t, "second", s.Skin)
	assert.Equal(t, "B", s.Artist)
}

func TestMerge_EveryFieldIsMerged(t *testing.T) {
	// companion-сообщение со всеми ключами должно затронуть каждое поле, кроме ModsNum
	raw := map[string]any{}
	raw["artistRoman"] = "a"
	raw["artistUnicode"] = "au"
	raw["titleRoman"] = "t"
	raw["titleUnicode"] = "tu"
	raw["diffName"] = "v"
	raw["creator"] = "c"
	raw["mods"] = "HR"
	raw["skin"] = "s"
	raw["mapid"] = 7
	raw["mStars"] = 1.0
	raw["mCS"] = 2.0
	raw["mAR"] = 3.0
	raw["mOD"] = 4.0
	raw["mHP"] = 5.0
	raw["osu_98PP"] = 6.0
	raw["osu_99PP"] = 7.0
	raw["osu_SSPP"] = 8.0
	raw["osu_m95PP"] = 12.0
	raw["osu_m96PP"] = 13.0
	raw["osu_m97PP"] = 14.0
	raw["osu_m98PP"] = 9.0
	raw["osu_m99PP"] = 10.0
	raw["osu_mSSPP"] = 11.0
	raw["gameMode"] = "CatchTheBeat"
	data, err := json.Marshal(raw)
	require.NoError(t, err)

	var p Partial
	require.NoError(t, json.Unmarshal(data, &p))

	var s State
	s.Merge(p)
	assert.Equal(t, State{
		Artist: "a", ArtistUnicode: "au", Title: "t", TitleUnicode: "tu",
		Version: "v", Creator: "c", Mods: "HR", Skin: "s", MapID: 7,
		Stars: 1, CS: 2, AR: 3, OD: 4, HP: 5,
		PP98: 6, PP99: 7, PPSS: 8,
		PPMods95: 12, PPMods96: 13, PPMods97: 14, PPMods98: 9, PPMods99: 10, PPModsSS: 11,
		Mode: ModeCatch,
	}, s)
}

func TestKeys(t *testing.T) {
	k := Keys()

	assert.Contains(t, k, "artistRoman")
	assert.Contains(t, k, "diffName")
	assert.Contains(t, k, "mapid")
	assert.Contains(t, k, "gameMode")
	assert.NotContains(t, k, "-")
	assert.Contains(t, k, "osu_m95PP")
	assert.Len(t, k, 24)

	// копия, а не внутренний срез
	k[0] = "mutated"
	assert.NotEqual(t, "mutated", Keys()[0])
}

func TestBeatmap(t *testing.T) {
	s := State{Artist: "A", Title: "B", Version: "C", Creator: "D"}
	assert.Equal(t, "A - B [C] by D", s.Beatmap())
	assert.Empty(t, s.Link())

	s.MapID = 123
	assert.Equal(t, "A - B [C] by D https://osu.ppy.sh/b/123", s.Beatmap())
	assert.Equal(t, "https://osu.ppy.sh/b/123", s.Link())
}

func TestPP_CollapsesEqualModValues(t *testing.T) {
	s := State{PP98: 100, PP99: 120.04, PPSS: 150.06, PPMods98: 100, PPMods99: 120.04, PPModsSS: 150.06, Mods: ""}
	assert.Equal(t, "PP (98/99/100): 100.0/120.0/150.1", s.PP())
}

func TestPP_CollapsesWhenModValuesPrintTheSame(t *testing.T) {
	// pp без модов считает HTTP-калькулятор, с модами приходит из потока
	s := State{PP98: 100, PP99: 120, PPSS: 150.0412, PPMods98: 100.02, PPMods99: 119.98, PPModsSS: 150.0388}
	assert.Equal(t, "PP (98/99/100): 100.0/120.0/150.0", s.PP())
}

func TestPP_ShowsModsWhenDifferent(t *testing.T) {
	s := State{PP98: 100, PP99: 120, PPSS: 150, PPMods98: 200, PPMods99: 240, PPModsSS: 300, Mods: "HD,DT"}
	assert.Equal(t, "PP (98/99/100): 100.0/120.0/150.0 +HDDT 200.0/240.0/300.0", s.PP())
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	st := NewStore()
	st.Merge(Partial{Artist: Value("A")})

	snap := st.Snapshot()
	snap.Artist = "changed"

	assert.Equal(t, "A", st.Snapshot().Artist)
}

func TestStore_MergeIsAtomicForReaders(t *testing.T) {
	st := NewStore()
	var wg sync.WaitGroup

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				v := float64(w*1000 + i)
				st.Merge(Partial{PP98: Value(v), PPMods98: Value(v)})
			}
		}(w)
	}

	done := make(chan struct{})
	var torn bool
	go func() {
		defer close(done)
		for i := 0; i < 2000; i++ {
			s := st.Snapshot()
			if s.PP98 != s.PPMods98 {
				torn = true
				return
			}
		}
	}()

	wg.Wait()
	<-done
	assert.False(t, torn, "reader observed a half-applied merge")
}
