package pdb

// pageHeaderSize is the size, in bytes, of the header at the start of every
// page, before its row bytes and trailing slot groups.
const pageHeaderSize = 40

// slotGroupSize is the size, in bytes, of one 16-row slot group at the end
// of a page.
const slotGroupSize = 36

// rowsPerSlotGroup is the number of rows described by one slot group.
const rowsPerSlotGroup = 16

// largeRowCountInvalid is the sentinel value of rows_large meaning "ignore
// me, use rows_small instead".
const largeRowCountInvalid = 0x1fff

// pageHeader is the 40-byte header at the start of every page.
//
//	type PAGE_HEADER struct {
//	   zeros      uint32
//	   pageIndex  uint32 // redundant copy of the page's own index
//	   pageType   uint32 // low byte is the TableType
//	   nextPage   uint32
//	   _          uint32
//	   _          uint32
//	   rowsSmall  uint8
//	   _          uint8
//	   _          uint8
//	   _          uint8
//	   freeSize   uint16
//	   usedSize   uint16
//	   _          uint16
//	   rowsLarge  uint16
//	   _          uint16
//	   _          uint16
//	}
type pageHeader struct {
	pageIndex int
	pageType  TableType
	nextPage  int
	rowsSmall uint8
	rowsLarge uint16
}

func parsePageHeader(page []byte, wantIndex int) (pageHeader, error) {
	zeros, err := readU32(page, 0)
	if err != nil {
		return pageHeader{}, err
	}
	if zeros != 0 {
		return pageHeader{}, &BadZeroField{Field: "page.zeros", Got: zeros}
	}
	pageIndex, err := readU32(page, 4)
	if err != nil {
		return pageHeader{}, err
	}
	pageType, err := readU32(page, 8)
	if err != nil {
		return pageHeader{}, err
	}
	nextPage, err := readU32(page, 12)
	if err != nil {
		return pageHeader{}, err
	}
	rowsSmall, err := readU8(page, 24)
	if err != nil {
		return pageHeader{}, err
	}
	rowsLarge, err := readU16(page, 34)
	if err != nil {
		return pageHeader{}, err
	}

	h := pageHeader{
		pageIndex: int(pageIndex),
		pageType:  normalizeTableType(uint8(pageType)),
		nextPage:  int(nextPage),
		rowsSmall: rowsSmall,
		rowsLarge: rowsLarge,
	}
	if h.pageIndex != wantIndex {
		return pageHeader{}, newIndexMismatch(wantIndex, wantIndex, h.pageIndex)
	}
	return h, nil
}

// effectiveRowCount applies the rows_large/rows_small disambiguation rule.
func (h pageHeader) effectiveRowCount() int {
	if h.rowsLarge > uint16(h.rowsSmall) && h.rowsLarge != largeRowCountInvalid {
		return int(h.rowsLarge)
	}
	return int(h.rowsSmall)
}

// Row is a decoded PDB row tagged with the table it came from. Exactly one
// of the typed fields is set, chosen by Type.
type Row struct {
	Type TableType

	Track         *TrackRow
	Artist        *ArtistRow
	Album         *AlbumRow
	Genre         *NamedRow
	Label         *NamedRow
	Key           *NamedRow
	Color         *ColorRow
	Artwork       *NamedRow
	PlaylistNode  *PlaylistNodeRow
	PlaylistEntry *PlaylistEntryRow
}

// Walk decodes the full table-pointer array and every reachable row across
// all known tables of a loaded export.pdb buffer, in page-traversal order.
// Rows belonging to unrecognized tables are skipped, not erred on.
func Walk(buf []byte) ([]Row, error) {
	header, err := parseDBHeader(buf)
	if err != nil {
		return nil, err
	}
	pointers, err := parseTablePointers(buf, header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for _, tp := range pointers {
		tableRows, err := walkTable(buf, int(header.pageSize), tp)
		if err != nil {
			return nil, err
		}
		rows = append(rows, tableRows...)
	}
	return rows, nil
}

func walkTable(buf []byte, pageSize int, tp tablePointer) ([]Row, error) {
	var rows []Row
	pageIndex := int(tp.firstPage)
	for {
		page, err := bytesAt(buf, pageIndex*pageSize, pageSize)
		if err != nil {
			return nil, err
		}
		hdr, err := parsePageHeader(page, pageIndex)
		if err != nil {
			return nil, err
		}
		if hdr.pageType != tp.tableType {
			return nil, newTypeMismatch(pageIndex, tp.tableType, hdr.pageType)
		}

		pageRows, err := decodePageRows(page, pageSize, hdr)
		if err != nil {
			return nil, err
		}
		rows = append(rows, pageRows...)

		if pageIndex == int(tp.lastPage) {
			break
		}
		pageIndex = hdr.nextPage
	}
	return rows, nil
}

// decodePageRows walks the slot groups of a single page, decoding every
// present row into a tagged Row.
func decodePageRows(page []byte, pageSize int, hdr pageHeader) ([]Row, error) {
	if !hdr.pageType.known() {
		return nil, nil
	}

	var rows []Row
	count := hdr.effectiveRowCount()
	for group := 0; group*rowsPerSlotGroup < count; group++ {
		blockStart := pageSize - (group+1)*slotGroupSize
		words := make([]uint16, 18)
		for i := 0; i < 18; i++ {
			w, err := readU16(page, blockStart+2*i)
			if err != nil {
				return nil, err
			}
			words[i] = w
		}
		// The block is stored reversed: word 17 is unused, word 16 is
		// the presence mask, and row i's offset lives at word 15-i.
		presenceMask := words[16]
		for i := 0; i < rowsPerSlotGroup; i++ {
			if presenceMask&(1<<uint(i)) == 0 {
				continue
			}
			rowOffset := pageHeaderSize + int(words[15-i])
			row, err := decodeRow(page, hdr.pageType, rowOffset)
			if err != nil {
				return nil, err
			}
			if row != nil {
				rows = append(rows, *row)
			}
		}
	}
	return rows, nil
}
