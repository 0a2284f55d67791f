package nml

// colorMap translates a rekordbox color_id (1..8) to the Traktor COLOR
// attribute value. rekordbox's "aqua" (6) has no Traktor equivalent and
// falls back to the same code as blue (7).
var colorMap = map[uint32]int{
	1: 7, // pink
	2: 1, // red
	3: 2, // orange
	4: 3, // yellow
	5: 4, // green
	6: 5, // aqua -> blue
	7: 5, // blue
	8: 6, // purple
}

// traktorColor returns the Traktor COLOR attribute value for a rekordbox
// color_id, and whether the track has a color set at all (id 0 means
// unset).
func traktorColor(colorID uint32) (int, bool) {
	if colorID == 0 {
		return 0, false
	}
	v, ok := colorMap[colorID]
	return v, ok
}
