package pdb

import (
	"encoding/binary"
	"testing"
)

const testPageSize = 256

// buildMiniPDB assembles a two-page export.pdb: page 0 is the envelope and
// table-pointer array, page 1 holds a single genres row ("Techno", id 7)
// with rows_large deliberately set to the 0x1fff sentinel, to exercise the
// rows_large/rows_small boundary rule alongside the happy path.
func buildMiniPDB(t *testing.T) []byte {
	t.Helper()
	buf := make([]byte, 2*testPageSize)

	binary.LittleEndian.PutUint32(buf[4:], testPageSize)
	binary.LittleEndian.PutUint32(buf[8:], 1) // num_tables

	// Table pointer 0, at offset 28: genres table, pages [1,1].
	const tp0 = dbHeaderSize
	binary.LittleEndian.PutUint32(buf[tp0:], uint32(TableGenres))
	binary.LittleEndian.PutUint32(buf[tp0+8:], 1)
	binary.LittleEndian.PutUint32(buf[tp0+12:], 1)

	// Page 1 header.
	page := buf[testPageSize:]
	binary.LittleEndian.PutUint32(page[4:], 1)                  // page_index
	binary.LittleEndian.PutUint32(page[8:], uint32(TableGenres)) // page_type
	binary.LittleEndian.PutUint32(page[12:], 1)                  // next_page == self: last page
	page[24] = 1                                                 // rows_small
	binary.LittleEndian.PutUint16(page[34:], largeRowCountInvalid)

	// Row body at page-relative offset 40 (word offset 0): id=7, name="Techno".
	rowOff := pageHeaderSize
	binary.LittleEndian.PutUint32(page[rowOff:], 7)
	enc, ok := encodeShortASCIIString("Techno")
	if !ok {
		t.Fatal("encodeShortASCIIString failed")
	}
	copy(page[rowOff+4:], enc)

	// Trailing slot group: presence mask bit 0 set, row 0's offset word is 0.
	blockStart := testPageSize - slotGroupSize
	binary.LittleEndian.PutUint16(page[blockStart+2*16:], 1) // presence mask

	return buf
}

func TestWalkDecodesGenreRow(t *testing.T) {
	buf := buildMiniPDB(t)
	rows, err := Walk(buf)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Walk returned %d rows, want 1", len(rows))
	}
	g := rows[0].Genre
	if g == nil {
		t.Fatalf("rows[0].Genre is nil (Type=%s)", rows[0].Type)
	}
	if g.ID != 7 || g.Name != "Techno" {
		t.Errorf("rows[0].Genre = %+v, want {ID:7 Name:Techno}", g)
	}
}

func TestParsePageHeaderRowCounters(t *testing.T) {
	buf := buildMiniPDB(t)
	page := buf[testPageSize:]
	hdr, err := parsePageHeader(page, 1)
	if err != nil {
		t.Fatalf("parsePageHeader: %v", err)
	}
	if hdr.rowsSmall != 1 {
		t.Errorf("rowsSmall = %d, want 1", hdr.rowsSmall)
	}
	if hdr.rowsLarge != largeRowCountInvalid {
		t.Errorf("rowsLarge = %#x, want the %#x sentinel", hdr.rowsLarge, largeRowCountInvalid)
	}
}

func TestParsePageHeaderIndexMismatch(t *testing.T) {
	buf := buildMiniPDB(t)
	page := buf[testPageSize:]
	if _, err := parsePageHeader(page, 5); err == nil {
		t.Fatal("parsePageHeader: want error for mismatched index")
	} else if _, ok := err.(*PageSelfCheckFailed); !ok {
		t.Fatalf("parsePageHeader error = %v (%T), want *PageSelfCheckFailed", err, err)
	}
}

func TestEffectiveRowCountLargeSentinel(t *testing.T) {
	h := pageHeader{rowsSmall: 1, rowsLarge: largeRowCountInvalid}
	if got := h.effectiveRowCount(); got != 1 {
		t.Errorf("effectiveRowCount() = %d, want 1 (rows_small)", got)
	}

	h2 := pageHeader{rowsSmall: 1, rowsLarge: 40}
	if got := h2.effectiveRowCount(); got != 40 {
		t.Errorf("effectiveRowCount() = %d, want 40 (rows_large)", got)
	}
}
