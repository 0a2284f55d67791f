package nml

import (
	"fmt"
	"sort"

	"github.com/traktorbox/traktorbox/anlz"
)

const maxMemoryCues = 8

// buildAutoGrid locates the first beat marking the start of a bar (num ==
// 1) and builds the AutoGrid cue Traktor anchors its tempo grid to. It
// returns nil, with a warning, if no such beat exists.
func buildAutoGrid(beats []anlz.Beat, tempo float64) (*cueV2, string) {
	for _, b := range beats {
		if b.Num == 1 {
			return &cueV2{
				Name:       "AutoGrid",
				DisplOrder: "0",
				Type:       "4",
				Len:        0,
				Repeats:    "-1",
				Hotcue:     -1,
				Start:      fixedFloat(b.TimeMs),
				Grid:       &grid{BPM: fixedFloat(tempo)},
			}, ""
		}
	}
	return nil, "missing AutoGrid: no beat with num == 1"
}

// buildMemoryCues converts a track's memory cues into CUE_V2 elements,
// sorted by time and capped at maxMemoryCues. Hot cues are never emitted.
// Returns a warning if cues were dropped to fit the cap.
func buildMemoryCues(cues []anlz.Cue) ([]cueV2, string) {
	var mem []anlz.Cue
	for _, c := range cues {
		if c.Kind == anlz.CueMemory {
			mem = append(mem, c)
		}
	}
	sort.SliceStable(mem, func(i, j int) bool { return mem[i].TimeMs < mem[j].TimeMs })

	warning := ""
	if len(mem) > maxMemoryCues {
		warning = fmt.Sprintf("too many memory cues: %d present, keeping first %d by time", len(mem), maxMemoryCues)
		mem = mem[:maxMemoryCues]
	}

	out := make([]cueV2, 0, len(mem))
	for i, c := range mem {
		name := c.Comment
		if name == "" {
			name = "n.n."
		}
		cueType := "0"
		length := fixedFloat(0)
		if c.IsLoop() {
			cueType = "5"
			length = fixedFloat(float64(c.LoopEndMs) - float64(c.TimeMs))
		}
		out = append(out, cueV2{
			Name:       name,
			DisplOrder: "0",
			Type:       cueType,
			Len:        length,
			Repeats:    "-1",
			Hotcue:     i,
			Start:      fixedFloat(c.TimeMs),
		})
	}
	return out, warning
}
