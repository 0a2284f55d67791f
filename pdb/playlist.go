package pdb

// playlistNodeHeaderSize is the size, in bytes, of a playlist node's fixed
// header, before its embedded name string.
const playlistNodeHeaderSize = 20

// PlaylistNodeRow is a row of the playlist tree: either a folder or a leaf
// playlist, disambiguated by IsFolder.
type PlaylistNodeRow struct {
	PlaylistID uint32
	ParentID   uint32
	SortOrder  uint32
	IsFolder   bool
	Name       string
}

// decodePlaylistNodeRow decodes a playlist-tree row.
//
//	type PLAYLIST_NODE_ROW struct {
//	   parent_id      uint32
//	   _              uint32
//	   sort_order     uint32
//	   playlist_id    uint32
//	   is_folder_flag uint32
//	}
func decodePlaylistNodeRow(page []byte, rowOffset int) (*PlaylistNodeRow, error) {
	parentID, err := readU32(page, rowOffset)
	if err != nil {
		return nil, err
	}
	sortOrder, err := readU32(page, rowOffset+8)
	if err != nil {
		return nil, err
	}
	playlistID, err := readU32(page, rowOffset+12)
	if err != nil {
		return nil, err
	}
	isFolderFlag, err := readU32(page, rowOffset+16)
	if err != nil {
		return nil, err
	}
	name, _, err := decodeString(page, rowOffset+playlistNodeHeaderSize)
	if err != nil {
		return nil, err
	}
	return &PlaylistNodeRow{
		PlaylistID: playlistID,
		ParentID:   parentID,
		SortOrder:  sortOrder,
		IsFolder:   isFolderFlag != 0,
		Name:       name,
	}, nil
}

// PlaylistEntryRow associates a track with a position within a playlist.
type PlaylistEntryRow struct {
	PlaylistID uint32
	EntryIndex uint32
	TrackID    uint32
}

// decodePlaylistEntryRow decodes a playlist-entries row.
//
//	type PLAYLIST_ENTRY_ROW struct {
//	   entry_index uint32
//	   track_id    uint32
//	   playlist_id uint32
//	}
func decodePlaylistEntryRow(page []byte, rowOffset int) (*PlaylistEntryRow, error) {
	entryIndex, err := readU32(page, rowOffset)
	if err != nil {
		return nil, err
	}
	trackID, err := readU32(page, rowOffset+4)
	if err != nil {
		return nil, err
	}
	playlistID, err := readU32(page, rowOffset+8)
	if err != nil {
		return nil, err
	}
	return &PlaylistEntryRow{
		PlaylistID: playlistID,
		EntryIndex: entryIndex,
		TrackID:    trackID,
	}, nil
}
