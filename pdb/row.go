package pdb

// decodeRow decodes one row at rowOffset within page, according to the
// page's table type. It returns (nil, nil) for table types the walker
// tracks structurally but does not materialize rows for.
func decodeRow(page []byte, tableType TableType, rowOffset int) (*Row, error) {
	switch tableType {
	case TableTracks:
		t, err := decodeTrackRow(page, rowOffset)
		if err != nil {
			return nil, err
		}
		return &Row{Type: tableType, Track: t}, nil
	case TableArtists:
		a, err := decodeArtistRow(page, rowOffset)
		if err != nil {
			return nil, err
		}
		return &Row{Type: tableType, Artist: a}, nil
	case TableAlbums:
		a, err := decodeAlbumRow(page, rowOffset)
		if err != nil {
			return nil, err
		}
		return &Row{Type: tableType, Album: a}, nil
	case TableGenres:
		n, err := decodeNamedRow(page, rowOffset, 0, 4)
		if err != nil {
			return nil, err
		}
		return &Row{Type: tableType, Genre: n}, nil
	case TableLabels:
		n, err := decodeNamedRow(page, rowOffset, 0, 4)
		if err != nil {
			return nil, err
		}
		return &Row{Type: tableType, Label: n}, nil
	case TableKeys:
		n, err := decodeNamedRow(page, rowOffset, 0, 8)
		if err != nil {
			return nil, err
		}
		return &Row{Type: tableType, Key: n}, nil
	case TableArtwork:
		n, err := decodeNamedRow(page, rowOffset, 0, 4)
		if err != nil {
			return nil, err
		}
		return &Row{Type: tableType, Artwork: n}, nil
	case TableColors:
		c, err := decodeColorRow(page, rowOffset)
		if err != nil {
			return nil, err
		}
		return &Row{Type: tableType, Color: c}, nil
	case TablePlaylistTree:
		p, err := decodePlaylistNodeRow(page, rowOffset)
		if err != nil {
			return nil, err
		}
		return &Row{Type: tableType, PlaylistNode: p}, nil
	case TablePlaylistEntries:
		p, err := decodePlaylistEntryRow(page, rowOffset)
		if err != nil {
			return nil, err
		}
		return &Row{Type: tableType, PlaylistEntry: p}, nil
	default:
		// History, columns, and any other recognized-but-unmodeled table:
		// walked for page-chain integrity, never decoded into a Row.
		return nil, nil
	}
}
