package library

import (
	"github.com/traktorbox/traktorbox/anlz"
	"github.com/traktorbox/traktorbox/pdb"
)

// Build normalizes a flat slice of decoded PDB rows into a Library. Row
// order does not matter: every row is keyed by its own id, and playlist
// entries are simply appended in the order Walk returned them, which is the
// on-disk page-traversal order rekordbox itself wrote them in.
func Build(rows []pdb.Row) *Library {
	lib := newLibrary()

	for _, row := range rows {
		switch row.Type {
		case pdb.TableTracks:
			t := row.Track
			lib.Tracks[t.TrackID] = &Track{
				ID:           t.TrackID,
				Title:        t.Title,
				FileName:     t.FileName,
				FilePath:     t.FilePath,
				DurationS:    t.DurationS,
				Tempo:        t.Tempo(),
				Bitrate:      t.Bitrate,
				FileSize:     t.FileSize,
				TrackNumber:  t.TrackNumber,
				DiscNumber:   t.DiscNumber,
				Year:         t.Year,
				PlayCount:    t.PlayCount,
				Rating:       uint16(t.Rating),
				SampleRate:   t.SampleRate,
				SampleDepth:  t.SampleDepth,
				ColorID:      uint32(t.ColorID),
				DateAdded:    t.DateAdded,
				ReleaseDate:  t.ReleaseDate,
				Comment:      t.Comment,
				AnalyzePath:  t.AnalyzePath,
				ArtistID:     t.ArtistID,
				AlbumID:      t.AlbumID,
				GenreID:      t.GenreID,
				LabelID:      t.LabelID,
				KeyID:        t.KeyID,
				ArtworkID:    t.ArtworkID,
				OrigArtistID: t.OrigArtistID,
				RemixerID:    t.RemixerID,
				ComposerID:   t.ComposerID,
			}
		case pdb.TableArtists:
			a := row.Artist
			lib.Artists[a.ID] = &Artist{ID: a.ID, Name: a.Name}
		case pdb.TableAlbums:
			a := row.Album
			lib.Albums[a.ID] = &Album{ID: a.ID, ArtistID: a.ArtistID, Name: a.Name}
		case pdb.TableGenres:
			g := row.Genre
			lib.Genres[g.ID] = &NamedEntity{ID: g.ID, Name: g.Name}
		case pdb.TableLabels:
			l := row.Label
			lib.Labels[l.ID] = &NamedEntity{ID: l.ID, Name: l.Name}
		case pdb.TableKeys:
			k := row.Key
			lib.Keys[k.ID] = &NamedEntity{ID: k.ID, Name: k.Name}
		case pdb.TableArtwork:
			w := row.Artwork
			lib.Artworks[w.ID] = &NamedEntity{ID: w.ID, Name: w.Name}
		case pdb.TableColors:
			c := row.Color
			lib.Colors[uint32(c.ID)] = &Color{ID: uint32(c.ID), Name: c.Name}
		case pdb.TablePlaylistTree:
			p := row.PlaylistNode
			lib.Playlists[p.PlaylistID] = &Playlist{
				ID:        p.PlaylistID,
				ParentID:  p.ParentID,
				SortOrder: p.SortOrder,
				IsFolder:  p.IsFolder,
				Name:      p.Name,
			}
		case pdb.TablePlaylistEntries:
			e := row.PlaylistEntry
			lib.PlaylistEntries = append(lib.PlaylistEntries, &PlaylistEntry{
				PlaylistID: e.PlaylistID,
				EntryIndex: e.EntryIndex,
				TrackID:    e.TrackID,
			})
		}
	}

	return lib
}

// AttachAnalysis merges a decoded ANLZ result into the named track's
// Analysis. It is a no-op if the track id is unknown, since a dangling
// analyze_path reference is a warning, not a fatal error, at the caller.
func (l *Library) AttachAnalysis(trackID uint32, res *anlz.Result) {
	t, ok := l.Tracks[trackID]
	if !ok || res == nil {
		return
	}
	t.Analysis.Beats = append(t.Analysis.Beats, res.Beats...)
	t.Analysis.Cues = append(t.Analysis.Cues, res.Cues...)
}
