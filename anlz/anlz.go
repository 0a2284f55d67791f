// Package anlz decodes rekordbox's per-track analysis files (.DAT primary,
// .EXT supplementary): a sequence of tagged, big-endian sections. Only the
// beat-grid (PQTZ) and cue-list-v2 (PCO2) sections are decoded; anything
// else is skipped via its declared length.
package anlz

import (
	"encoding/binary"
	"fmt"
)

// Magic is the 4-byte signature every ANLZ file begins with.
const Magic = "PMAI"

const envelopeSize = 12
const sectionHeaderSize = 12
const firstSectionOffset = 28

// BadMagic is returned when a file or section magic does not match what was
// expected.
type BadMagic struct {
	Expected, Got string
}

func (e *BadMagic) Error() string {
	return fmt.Sprintf("anlz: bad magic: expected %q, got %q", e.Expected, e.Got)
}

// Result holds everything decoded from one ANLZ file.
type Result struct {
	Beats []Beat
	Cues  []Cue
}

// Parse decodes a single .DAT or .EXT buffer.
func Parse(buf []byte) (*Result, error) {
	if len(buf) < envelopeSize {
		return nil, fmt.Errorf("anlz: file too short for envelope: %d bytes", len(buf))
	}
	magic := string(buf[0:4])
	if magic != Magic {
		return nil, &BadMagic{Expected: Magic, Got: magic}
	}
	lenFile := int(binary.BigEndian.Uint32(buf[8:12]))
	if lenFile > len(buf) {
		lenFile = len(buf)
	}

	res := &Result{}
	offset := firstSectionOffset
	for offset < lenFile {
		if offset+sectionHeaderSize > len(buf) {
			break
		}
		sectionMagic := string(buf[offset : offset+4])
		lenTag := int(binary.BigEndian.Uint32(buf[offset+8 : offset+12]))
		if lenTag <= 0 || offset+lenTag > len(buf) {
			break
		}
		body := buf[offset : offset+lenTag]

		switch sectionMagic {
		case tagBeatGrid:
			beats, err := parseBeatGrid(body)
			if err != nil {
				return nil, err
			}
			res.Beats = append(res.Beats, beats...)
		case tagCueListV2:
			cues, err := parseCueListV2(body)
			if err != nil {
				return nil, err
			}
			res.Cues = append(res.Cues, cues...)
		default:
			// unknown section: skip via its declared length
		}

		offset += lenTag
	}
	return res, nil
}
