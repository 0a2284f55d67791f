package pdb

// dbHeaderSize is the size, in bytes, of the file envelope preceding the
// table-pointer array.
const dbHeaderSize = 28

// tablePointerSize is the size, in bytes, of each entry in the
// table-pointer array following the envelope.
const tablePointerSize = 16

// dbHeader is the 28-byte envelope at the start of export.pdb.
//
//	type DB_HEADER struct {
//	   zeros1     uint32
//	   page_size  uint32
//	   num_tables uint32
//	   next_u     uint32 // read but not validated
//	   _          uint32
//	   sequence   uint32 // read but not validated
//	   zeros2     uint32
//	}
type dbHeader struct {
	pageSize  uint32
	numTables uint32
}

func parseDBHeader(buf []byte) (dbHeader, error) {
	zeros1, err := readU32(buf, 0)
	if err != nil {
		return dbHeader{}, err
	}
	if zeros1 != 0 {
		return dbHeader{}, &BadZeroField{Field: "zeros1", Got: zeros1}
	}
	pageSize, err := readU32(buf, 4)
	if err != nil {
		return dbHeader{}, err
	}
	numTables, err := readU32(buf, 8)
	if err != nil {
		return dbHeader{}, err
	}
	zeros2, err := readU32(buf, 24)
	if err != nil {
		return dbHeader{}, err
	}
	if zeros2 != 0 {
		return dbHeader{}, &BadZeroField{Field: "zeros2", Got: zeros2}
	}
	return dbHeader{pageSize: pageSize, numTables: numTables}, nil
}

// tablePointer is one entry of the table-pointer array: which pages hold a
// given table's rows.
type tablePointer struct {
	tableType           TableType
	firstPage, lastPage uint32
}

func parseTablePointers(buf []byte, h dbHeader) ([]tablePointer, error) {
	out := make([]tablePointer, 0, h.numTables)
	for i := uint32(0); i < h.numTables; i++ {
		offset := dbHeaderSize + int(i)*tablePointerSize
		rawType, err := readU32(buf, offset)
		if err != nil {
			return nil, err
		}
		firstPage, err := readU32(buf, offset+8)
		if err != nil {
			return nil, err
		}
		lastPage, err := readU32(buf, offset+12)
		if err != nil {
			return nil, err
		}
		out = append(out, tablePointer{
			tableType: normalizeTableType(uint8(rawType)),
			firstPage: firstPage,
			lastPage:  lastPage,
		})
	}
	return out, nil
}
