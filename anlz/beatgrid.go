package anlz

import (
	"encoding/binary"
	"fmt"
)

// tagBeatGrid is the section magic for the beat grid.
const tagBeatGrid = "PQTZ"

const beatGridBodyOffset = 12 + 8 // section header + two unused u32 fields
const beatRecordSize = 8

// Beat is one entry of a track's tempo grid.
type Beat struct {
	// Num is the beat's position within its bar, 1..4.
	Num uint16
	// Tempo is the BPM in effect at this beat.
	Tempo float64
	// TimeMs is this beat's position in the track, in milliseconds.
	TimeMs uint32
}

// parseBeatGrid decodes a PQTZ section body (including its 12-byte section
// header) into its beat records.
func parseBeatGrid(body []byte) ([]Beat, error) {
	if len(body) < beatGridBodyOffset+4 {
		return nil, fmt.Errorf("anlz: beat grid section too short: %d bytes", len(body))
	}
	lenBeats := int(binary.BigEndian.Uint32(body[beatGridBodyOffset : beatGridBodyOffset+4]))
	recordsStart := beatGridBodyOffset + 4

	beats := make([]Beat, 0, lenBeats)
	for i := 0; i < lenBeats; i++ {
		off := recordsStart + i*beatRecordSize
		if off+beatRecordSize > len(body) {
			break
		}
		num := binary.BigEndian.Uint16(body[off : off+2])
		tempoX100 := binary.BigEndian.Uint16(body[off+2 : off+4])
		timeMs := binary.BigEndian.Uint32(body[off+4 : off+8])
		beats = append(beats, Beat{
			Num:    num,
			Tempo:  float64(tempoX100) / 100,
			TimeMs: timeMs,
		})
	}
	return beats, nil
}
