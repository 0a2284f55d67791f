// Package library holds the normalized, in-memory representation of a
// rekordbox export: tracks, their related entities, playlists, and the
// per-track analysis (beats and cues) decoded from ANLZ files. It is the
// semantic model the pdb and anlz decoders feed and the nml emitter reads.
package library

import "github.com/traktorbox/traktorbox/anlz"

// NamedEntity is the shared shape of the simple lookup tables: genre,
// label, key, and artwork (whose Name is a path).
type NamedEntity struct {
	ID   uint32
	Name string
}

// Artist is a track's performing artist.
type Artist struct {
	ID   uint32
	Name string
}

// Album groups tracks under a named release.
type Album struct {
	ID       uint32
	ArtistID uint32
	Name     string
}

// Color is one of rekordbox's fixed color-tag names.
type Color struct {
	ID   uint32
	Name string
}

// Analysis is the beat grid and cue list decoded from a track's .DAT/.EXT
// analysis files, in file order.
type Analysis struct {
	Beats []anlz.Beat
	Cues  []anlz.Cue
}

// Track is a single piece of music in the library.
type Track struct {
	ID uint32

	Title    string
	FileName string
	FilePath string

	DurationS   uint16
	Tempo       float64
	Bitrate     uint32
	FileSize    uint32
	TrackNumber uint32
	DiscNumber  uint16
	Year        uint16
	PlayCount   uint16
	Rating      uint16
	SampleRate  uint32
	SampleDepth uint16
	ColorID     uint32

	DateAdded   string
	ReleaseDate string
	Comment     string
	AnalyzePath string

	ArtistID     uint32
	AlbumID      uint32
	GenreID      uint32
	LabelID      uint32
	KeyID        uint32
	ArtworkID    uint32
	OrigArtistID uint32
	RemixerID    uint32
	ComposerID   uint32

	Analysis Analysis
}

// Playlist is a node in the playlist tree: either a folder or a leaf
// playlist holding PlaylistEntry rows.
type Playlist struct {
	ID        uint32
	ParentID  uint32
	SortOrder uint32
	IsFolder  bool
	Name      string
}

// PlaylistEntry associates a track with a position within a playlist.
type PlaylistEntry struct {
	PlaylistID uint32
	EntryIndex uint32
	TrackID    uint32
}

// Library is the normalized store built from a decoded export.pdb, plus
// whatever ANLZ analysis has been attached to its tracks.
type Library struct {
	Tracks   map[uint32]*Track
	Artists  map[uint32]*Artist
	Albums   map[uint32]*Album
	Genres   map[uint32]*NamedEntity
	Labels   map[uint32]*NamedEntity
	Keys     map[uint32]*NamedEntity
	Colors   map[uint32]*Color
	Artworks map[uint32]*NamedEntity

	Playlists       map[uint32]*Playlist
	PlaylistEntries []*PlaylistEntry
}

// newLibrary returns an empty Library with every lookup table pre-seeded
// with an empty-string sentinel at id 0, so that an unset foreign key never
// needs a nil check at emission time.
func newLibrary() *Library {
	return &Library{
		Tracks:          make(map[uint32]*Track),
		Artists:         map[uint32]*Artist{0: {}},
		Albums:          map[uint32]*Album{0: {}},
		Genres:          map[uint32]*NamedEntity{0: {}},
		Labels:          map[uint32]*NamedEntity{0: {}},
		Keys:            map[uint32]*NamedEntity{0: {}},
		Colors:          map[uint32]*Color{0: {}},
		Artworks:        map[uint32]*NamedEntity{0: {}},
		Playlists:       make(map[uint32]*Playlist),
		PlaylistEntries: nil,
	}
}

// Artist looks up an artist by id, falling back to the empty-name sentinel
// for an id this library never saw (including 0).
func (l *Library) Artist(id uint32) *Artist {
	if a, ok := l.Artists[id]; ok {
		return a
	}
	return l.Artists[0]
}

// Album looks up an album by id, falling back to the empty-name sentinel.
func (l *Library) Album(id uint32) *Album {
	if a, ok := l.Albums[id]; ok {
		return a
	}
	return l.Albums[0]
}

// Genre looks up a genre by id, falling back to the empty-name sentinel.
func (l *Library) Genre(id uint32) *NamedEntity {
	if g, ok := l.Genres[id]; ok {
		return g
	}
	return l.Genres[0]
}

// Label looks up a label by id, falling back to the empty-name sentinel.
func (l *Library) Label(id uint32) *NamedEntity {
	if v, ok := l.Labels[id]; ok {
		return v
	}
	return l.Labels[0]
}

// Key looks up a musical key by id, falling back to the empty-name
// sentinel.
func (l *Library) Key(id uint32) *NamedEntity {
	if v, ok := l.Keys[id]; ok {
		return v
	}
	return l.Keys[0]
}
