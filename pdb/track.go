package pdb

// trackBaseRowSize is the size, in bytes, of the fixed-field portion of a
// track row, before its 21 trailing string-offset words.
const trackBaseRowSize = 94

// trackStringOffsetCount is the number of trailing u16 string-offset words
// that follow a track's fixed fields.
const trackStringOffsetCount = 21

// TrackRow is the tracks table row: a 94-byte fixed header followed by 21
// string-offset words locating the track's variable-length text fields.
type TrackRow struct {
	TrackID      uint32
	ArtistID     uint32
	AlbumID      uint32
	GenreID      uint32
	LabelID      uint32
	KeyID        uint32
	ArtworkID    uint32
	OrigArtistID uint32
	RemixerID    uint32
	ComposerID   uint32
	Bitrate      uint32
	TrackNumber  uint32
	TempoX100    uint32
	SampleRate   uint32
	FileSize     uint32
	DiscNumber   uint16
	PlayCount    uint16
	Year         uint16
	SampleDepth  uint16
	DurationS    uint16
	ColorID      uint8
	Rating       uint8

	DateAdded   string
	ReleaseDate string
	MixName     string
	AnalyzePath string
	AnalyzeDate string
	Comment     string
	Title       string
	FileName    string
	FilePath    string
}

// Tempo returns the track's BPM as a floating-point value; on disk it is
// stored as an integer scaled by 100.
func (t *TrackRow) Tempo() float64 {
	return float64(t.TempoX100) / 100
}

// fixed-field offsets within a track row, named for the field that sits
// there; reserved and read-through fields have no entry.
const (
	offTrackBitmask      = 4
	offTrackSampleRate   = 8
	offTrackComposerID   = 12
	offTrackFileSize     = 16
	offTrackArtworkID    = 28
	offTrackKeyID        = 32
	offTrackOrigArtistID = 36
	offTrackLabelID      = 40
	offTrackRemixerID    = 44
	offTrackBitrate      = 48
	offTrackNumber       = 52
	offTrackTempoX100    = 56
	offTrackGenreID      = 60
	offTrackAlbumID      = 64
	offTrackArtistID     = 68
	offTrackID           = 72
	offTrackDiscNumber   = 76
	offTrackPlayCount    = 78
	offTrackYear         = 80
	offTrackSampleDepth  = 82
	offTrackDurationS    = 84
	offTrackColorID      = 88
	offTrackRating       = 89
)

// 1-based slot indices into the trailing string-offset table.
const (
	strSlotDateAdded   = 10
	strSlotReleaseDate = 11
	strSlotMixName     = 12
	strSlotAnalyzePath = 14
	strSlotAnalyzeDate = 15
	strSlotComment     = 16
	strSlotTitle       = 17
	strSlotFileName    = 19
	strSlotFilePath    = 20
)

func decodeTrackRow(page []byte, rowOffset int) (*TrackRow, error) {
	u32 := func(off int) (uint32, error) { return readU32(page, rowOffset+off) }
	u16 := func(off int) (uint16, error) { return readU16(page, rowOffset+off) }
	u8 := func(off int) (uint8, error) { return readU8(page, rowOffset+off) }

	t := &TrackRow{}
	var err error
	if t.SampleRate, err = u32(offTrackSampleRate); err != nil {
		return nil, err
	}
	if t.ComposerID, err = u32(offTrackComposerID); err != nil {
		return nil, err
	}
	if t.FileSize, err = u32(offTrackFileSize); err != nil {
		return nil, err
	}
	if t.ArtworkID, err = u32(offTrackArtworkID); err != nil {
		return nil, err
	}
	if t.KeyID, err = u32(offTrackKeyID); err != nil {
		return nil, err
	}
	if t.OrigArtistID, err = u32(offTrackOrigArtistID); err != nil {
		return nil, err
	}
	if t.LabelID, err = u32(offTrackLabelID); err != nil {
		return nil, err
	}
	if t.RemixerID, err = u32(offTrackRemixerID); err != nil {
		return nil, err
	}
	if t.Bitrate, err = u32(offTrackBitrate); err != nil {
		return nil, err
	}
	if t.TrackNumber, err = u32(offTrackNumber); err != nil {
		return nil, err
	}
	if t.TempoX100, err = u32(offTrackTempoX100); err != nil {
		return nil, err
	}
	if t.GenreID, err = u32(offTrackGenreID); err != nil {
		return nil, err
	}
	if t.AlbumID, err = u32(offTrackAlbumID); err != nil {
		return nil, err
	}
	if t.ArtistID, err = u32(offTrackArtistID); err != nil {
		return nil, err
	}
	if t.TrackID, err = u32(offTrackID); err != nil {
		return nil, err
	}
	if t.DiscNumber, err = u16(offTrackDiscNumber); err != nil {
		return nil, err
	}
	if t.PlayCount, err = u16(offTrackPlayCount); err != nil {
		return nil, err
	}
	if t.Year, err = u16(offTrackYear); err != nil {
		return nil, err
	}
	if t.SampleDepth, err = u16(offTrackSampleDepth); err != nil {
		return nil, err
	}
	if t.DurationS, err = u16(offTrackDurationS); err != nil {
		return nil, err
	}
	if t.ColorID, err = u8(offTrackColorID); err != nil {
		return nil, err
	}
	if t.Rating, err = u8(offTrackRating); err != nil {
		return nil, err
	}

	strs, err := decodeTrackStrings(page, rowOffset)
	if err != nil {
		return nil, err
	}
	t.DateAdded = strs[strSlotDateAdded]
	t.ReleaseDate = strs[strSlotReleaseDate]
	t.MixName = strs[strSlotMixName]
	t.AnalyzePath = strs[strSlotAnalyzePath]
	t.AnalyzeDate = strs[strSlotAnalyzeDate]
	t.Comment = strs[strSlotComment]
	t.Title = strs[strSlotTitle]
	t.FileName = strs[strSlotFileName]
	t.FilePath = strs[strSlotFilePath]

	return t, nil
}

// decodeTrackStrings reads the 21 trailing string-offset words and decodes
// every non-empty one, returning a slice indexed identically to the
// on-disk offset table (index 0 is always unused).
func decodeTrackStrings(page []byte, rowOffset int) ([]string, error) {
	out := make([]string, trackStringOffsetCount)
	for i := 0; i < trackStringOffsetCount; i++ {
		off, err := readU16(page, rowOffset+trackBaseRowSize+2*i)
		if err != nil {
			return nil, err
		}
		if off == 0 {
			continue
		}
		s, _, err := decodeString(page, rowOffset+int(off))
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
