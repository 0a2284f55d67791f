package anlz

import (
	"encoding/binary"
	"testing"
)

// buildEnvelope lays down the 12-byte file envelope plus a single tagged
// section (the section's own 12-byte header is the caller's responsibility,
// since each section type defines the rest of its header differently).
func buildEnvelope(section []byte) []byte {
	buf := make([]byte, firstSectionOffset)
	copy(buf[0:4], Magic)
	binary.BigEndian.PutUint32(buf[8:12], uint32(firstSectionOffset+len(section)))
	buf = append(buf, section...)
	return buf
}

func buildBeatGridSection(beats []Beat) []byte {
	body := make([]byte, beatGridBodyOffset+4+len(beats)*beatRecordSize)
	copy(body[0:4], tagBeatGrid)
	binary.BigEndian.PutUint32(body[8:12], uint32(len(body)))
	binary.BigEndian.PutUint32(body[beatGridBodyOffset:], uint32(len(beats)))
	off := beatGridBodyOffset + 4
	for _, b := range beats {
		binary.BigEndian.PutUint16(body[off:], b.Num)
		binary.BigEndian.PutUint16(body[off+2:], uint16(b.Tempo*100))
		binary.BigEndian.PutUint32(body[off+4:], b.TimeMs)
		off += beatRecordSize
	}
	return body
}

func TestParseBeatGrid(t *testing.T) {
	beats := []Beat{
		{Num: 1, Tempo: 128, TimeMs: 0},
		{Num: 2, Tempo: 128, TimeMs: 469},
		{Num: 3, Tempo: 128, TimeMs: 938},
	}
	section := buildBeatGridSection(beats)
	buf := buildEnvelope(section)

	res, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Beats) != len(beats) {
		t.Fatalf("got %d beats, want %d", len(res.Beats), len(beats))
	}
	for i, want := range beats {
		got := res.Beats[i]
		if got.Num != want.Num || got.Tempo != want.Tempo || got.TimeMs != want.TimeMs {
			t.Errorf("beat %d = %+v, want %+v", i, got, want)
		}
	}
}

// buildCueEntry builds one cue entry: the fixed 44-byte header, followed by
// a UTF-16-BE comment when comment is non-empty and a 4-byte RGB tail when
// hasRGB is set. A lenEntry of 0 stores the entry's own size, which is 44
// (the len_entry == 44 boundary) when there is neither comment nor tail.
func buildCueEntry(hotSlot uint32, shape byte, timeMs, loopEndMs uint32, lenEntry uint32, comment string, hasRGB bool, r, g, b byte) []byte {
	var commentBytes []byte
	lenComment := uint32(0)
	if comment != "" {
		for _, r := range comment {
			commentBytes = append(commentBytes, 0, byte(r))
		}
		commentBytes = append(commentBytes, 0, 0)
		lenComment = uint32(len(commentBytes))
	}
	total := cueFixedHeaderSize + len(commentBytes)
	if hasRGB {
		total += 4
	}
	if lenEntry == 0 {
		lenEntry = uint32(total)
	}
	buf := make([]byte, total)
	copy(buf[0:4], cueMagic)
	binary.BigEndian.PutUint32(buf[4:8], cueFixedHeaderSize)
	binary.BigEndian.PutUint32(buf[8:12], lenEntry)
	binary.BigEndian.PutUint32(buf[12:16], hotSlot)
	buf[16] = shape
	binary.BigEndian.PutUint32(buf[20:24], timeMs)
	binary.BigEndian.PutUint32(buf[24:28], loopEndMs)
	binary.BigEndian.PutUint16(buf[36:38], 1)
	binary.BigEndian.PutUint16(buf[38:40], 8)
	binary.BigEndian.PutUint32(buf[40:44], lenComment)
	if len(commentBytes) > 0 {
		copy(buf[44:], commentBytes)
	}
	if hasRGB {
		tail := 44 + len(commentBytes)
		buf[tail] = 0
		buf[tail+1] = r
		buf[tail+2] = g
		buf[tail+3] = b
	}
	return buf
}

func buildCueListSection(entries [][]byte) []byte {
	var total int
	for _, e := range entries {
		total += len(e)
	}
	body := make([]byte, cueListBodyOffset+8+total)
	copy(body[0:4], tagCueListV2)
	binary.BigEndian.PutUint32(body[8:12], uint32(len(body)))
	binary.BigEndian.PutUint16(body[cueListBodyOffset+4:], uint16(len(entries)))
	off := cueListBodyOffset + 8
	for _, e := range entries {
		copy(body[off:], e)
		off += len(e)
	}
	return body
}

func TestParseCueListNoCommentNoRGB(t *testing.T) {
	entry := buildCueEntry(0, 1, 1000, 0, 0, "", false, 0, 0, 0)
	section := buildCueListSection([][]byte{entry})
	buf := buildEnvelope(section)

	res, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Cues) != 1 {
		t.Fatalf("got %d cues, want 1", len(res.Cues))
	}
	c := res.Cues[0]
	if c.Comment != "" {
		t.Errorf("Comment = %q, want empty", c.Comment)
	}
	if c.HasRGB {
		t.Errorf("HasRGB = true, want false")
	}
	if c.Kind != CueMemory {
		t.Errorf("Kind = %v, want CueMemory", c.Kind)
	}
	if c.TimeMs != 1000 {
		t.Errorf("TimeMs = %d, want 1000", c.TimeMs)
	}
}

func TestParseCueListCommentAndRGB(t *testing.T) {
	entry := buildCueEntry(0, 1, 500, 0, 0, "Drop", true, 10, 20, 30)
	section := buildCueListSection([][]byte{entry})
	buf := buildEnvelope(section)

	res, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c := res.Cues[0]
	if c.Comment != "Drop" {
		t.Errorf("Comment = %q, want %q", c.Comment, "Drop")
	}
	if !c.HasRGB || c.R != 10 || c.G != 20 || c.B != 30 {
		t.Errorf("RGB = (%v,%d,%d,%d), want (true,10,20,30)", c.HasRGB, c.R, c.G, c.B)
	}
}

func TestParseCueListHotCueAndLoop(t *testing.T) {
	entry := buildCueEntry(1, byte(CueLoop), 2000, 4000, 0, "", false, 0, 0, 0)
	section := buildCueListSection([][]byte{entry})
	buf := buildEnvelope(section)

	res, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c := res.Cues[0]
	if c.Kind != CueHot {
		t.Errorf("Kind = %v, want CueHot", c.Kind)
	}
	if !c.IsLoop() {
		t.Errorf("IsLoop() = false, want true")
	}
	if c.LoopEndMs != 4000 {
		t.Errorf("LoopEndMs = %d, want 4000 (retained for loop cues)", c.LoopEndMs)
	}
}

func TestParseCueListPointCueZerosLoopEnd(t *testing.T) {
	// loop_end_ms is populated on disk even for a point cue; the decoder
	// must zero it.
	entry := buildCueEntry(0, byte(CuePoint), 2000, 9999, 0, "", false, 0, 0, 0)
	section := buildCueListSection([][]byte{entry})
	buf := buildEnvelope(section)

	res, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Cues[0].LoopEndMs != 0 {
		t.Errorf("LoopEndMs = %d, want 0 for a point cue", res.Cues[0].LoopEndMs)
	}
}

func TestParseBadMagic(t *testing.T) {
	buf := []byte("XXXX00000000")
	if _, err := Parse(buf); err == nil {
		t.Fatal("Parse: want error for bad file magic")
	} else if _, ok := err.(*BadMagic); !ok {
		t.Fatalf("Parse error = %v (%T), want *BadMagic", err, err)
	}
}
