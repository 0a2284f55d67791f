package pdb

// TableType identifies the kind of rows a PDB table (and therefore each of
// its pages) holds.
type TableType uint8

// Table types. Unrecognized values collapse to Unknown and are skipped by
// the walker rather than rejected.
const (
	TableTracks           TableType = 0x00
	TableGenres           TableType = 0x01
	TableArtists          TableType = 0x02
	TableAlbums           TableType = 0x03
	TableLabels           TableType = 0x04
	TableKeys             TableType = 0x05
	TableColors           TableType = 0x06
	TablePlaylistTree     TableType = 0x07
	TablePlaylistEntries  TableType = 0x08
	TableHistoryPlaylists TableType = 0x0B
	TableHistoryEntries   TableType = 0x0C
	TableArtwork          TableType = 0x0D
	TableColumns          TableType = 0x10
	TableHistory          TableType = 0x13
	TableUnknown          TableType = 0xFF
)

var tableTypeNames = map[TableType]string{
	TableTracks:           "tracks",
	TableGenres:           "genres",
	TableArtists:          "artists",
	TableAlbums:           "albums",
	TableLabels:           "labels",
	TableKeys:             "keys",
	TableColors:           "colors",
	TablePlaylistTree:     "playlist_tree",
	TablePlaylistEntries:  "playlist_entries",
	TableHistoryPlaylists: "history_playlists",
	TableHistoryEntries:   "history_entries",
	TableArtwork:          "artwork",
	TableColumns:          "columns",
	TableHistory:          "history",
	TableUnknown:          "unknown",
}

func (t TableType) String() string {
	if name, ok := tableTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// known reports whether t is a table type this decoder recognizes; pages
// belonging to other tables are walked (to stay in sync with next_page
// links) but their rows are never decoded.
func (t TableType) known() bool {
	_, ok := tableTypeNames[t]
	return ok && t != TableUnknown
}

func normalizeTableType(raw uint8) TableType {
	t := TableType(raw)
	if t.known() {
		return t
	}
	return TableUnknown
}
