package anlz

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// tagCueListV2 is the section magic for the cue list (v2). The v1 format,
// PCOB, is never decoded; cues are read only from PCO2.
const tagCueListV2 = "PCO2"
const cueMagic = "PCP2"

const (
	cueListBodyOffset  = 12 // past the section header
	cueFixedHeaderSize = 44
)

// CueKind distinguishes memory cues from hot cues.
type CueKind int

const (
	CueMemory CueKind = iota
	CueHot
)

// CueShape is whether a cue marks a single point or a loop region.
type CueShape int

const (
	CuePoint CueShape = 1
	CueLoop  CueShape = 2
)

// Cue is one memory or hot cue attached to a track.
type Cue struct {
	Kind      CueKind
	HotSlot   uint32
	Shape     CueShape
	TimeMs    uint32
	LoopEndMs uint32
	ColorID   uint8
	LoopNum   uint16
	LoopDen   uint16
	Comment   string
	HasRGB    bool
	R, G, B   uint8
}

// IsLoop reports whether the cue marks a loop rather than a single point.
func (c Cue) IsLoop() bool { return c.Shape == CueLoop }

// parseCueListV2 decodes a PCO2 section body (including its 12-byte section
// header) into its cue records.
func parseCueListV2(body []byte) ([]Cue, error) {
	if len(body) < cueListBodyOffset+8 {
		return nil, fmt.Errorf("anlz: cue list section too short: %d bytes", len(body))
	}
	lenCues := int(binary.BigEndian.Uint16(body[cueListBodyOffset+4 : cueListBodyOffset+6]))

	cues := make([]Cue, 0, lenCues)
	offset := cueListBodyOffset + 8
	for i := 0; i < lenCues; i++ {
		if offset+cueFixedHeaderSize > len(body) {
			break
		}
		magic := string(body[offset : offset+4])
		if magic != cueMagic {
			return nil, &BadMagic{Expected: cueMagic, Got: magic}
		}
		lenEntry := int(binary.BigEndian.Uint32(body[offset+8 : offset+12]))
		hotSlot := binary.BigEndian.Uint32(body[offset+12 : offset+16])
		shape := CueShape(body[offset+16])
		timeMs := binary.BigEndian.Uint32(body[offset+20 : offset+24])
		loopEndMs := binary.BigEndian.Uint32(body[offset+24 : offset+28])
		colorID := body[offset+28]
		loopNum := binary.BigEndian.Uint16(body[offset+36 : offset+38])
		loopDen := binary.BigEndian.Uint16(body[offset+38 : offset+40])
		lenComment := int(binary.BigEndian.Uint32(body[offset+40 : offset+44]))

		cue := Cue{
			HotSlot:   hotSlot,
			Shape:     shape,
			TimeMs:    timeMs,
			LoopEndMs: loopEndMs,
			ColorID:   colorID,
			LoopNum:   loopNum,
			LoopDen:   loopDen,
		}
		if hotSlot == 0 {
			cue.Kind = CueMemory
		} else {
			cue.Kind = CueHot
		}
		if !cue.IsLoop() {
			// loop_end_ms is populated but stale for point cues on disk;
			// zero it so nothing downstream reads it.
			cue.LoopEndMs = 0
		}

		commentStart := offset + cueFixedHeaderSize
		if lenEntry > cueFixedHeaderSize && lenComment > 0 {
			// Stored length counts the trailing U+0000 terminator; the
			// decoded text does not include it.
			textLen := lenComment - 2
			if textLen < 0 {
				textLen = 0
			}
			commentEnd := commentStart + textLen
			if commentEnd > len(body) {
				commentEnd = len(body)
			}
			cue.Comment = decodeUTF16BEComment(body[commentStart:commentEnd])
		}

		tailStart := offset + cueFixedHeaderSize + lenComment
		if lenEntry > cueFixedHeaderSize+lenComment && tailStart+4 <= len(body) {
			cue.HasRGB = true
			cue.R = body[tailStart+1]
			cue.G = body[tailStart+2]
			cue.B = body[tailStart+3]
		}

		cues = append(cues, cue)
		offset += lenEntry
	}
	return cues, nil
}

// decodeUTF16BEComment decodes a big-endian UTF-16 comment, stripping the
// trailing U+0000 terminator if present.
func decodeUTF16BEComment(b []byte) string {
	n := len(b) / 2
	units := make([]uint16, 0, n)
	for i := 0; i < n; i++ {
		u := uint16(b[2*i])<<8 | uint16(b[2*i+1])
		if u == 0 && i == n-1 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units))
}
