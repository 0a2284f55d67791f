package library

import (
	"testing"

	"github.com/traktorbox/traktorbox/pdb"
)

func TestBuildSentinelsAreEmpty(t *testing.T) {
	lib := Build(nil)
	if lib.Artist(0).Name != "" {
		t.Errorf("Artist(0).Name = %q, want empty", lib.Artist(0).Name)
	}
	if lib.Album(0).Name != "" {
		t.Errorf("Album(0).Name = %q, want empty", lib.Album(0).Name)
	}
	if lib.Genre(0).Name != "" {
		t.Errorf("Genre(0).Name = %q, want empty", lib.Genre(0).Name)
	}
	if lib.Label(0).Name != "" {
		t.Errorf("Label(0).Name = %q, want empty", lib.Label(0).Name)
	}
	if lib.Key(0).Name != "" {
		t.Errorf("Key(0).Name = %q, want empty", lib.Key(0).Name)
	}
}

func TestBuildUnknownForeignKeyFallsBackToSentinel(t *testing.T) {
	lib := Build(nil)
	if got := lib.Artist(999).Name; got != "" {
		t.Errorf("Artist(999).Name = %q, want empty sentinel", got)
	}
}

func TestBuildNormalizesRows(t *testing.T) {
	rows := []pdb.Row{
		{Type: pdb.TableArtists, Artist: &pdb.ArtistRow{ID: 1, Name: "Aphex Twin"}},
		{Type: pdb.TableAlbums, Album: &pdb.AlbumRow{ID: 2, ArtistID: 1, Name: "Selected Ambient Works"}},
		{Type: pdb.TableGenres, Genre: &pdb.NamedRow{ID: 3, Name: "IDM"}},
		{Type: pdb.TableTracks, Track: &pdb.TrackRow{
			TrackID:     10,
			ArtistID:    1,
			AlbumID:     2,
			GenreID:     3,
			TempoX100:   12800,
			Title:       "Xtal",
			FileName:    "xtal.mp3",
			AnalyzePath: "PIONEER/USBANLZ/P001/ANLZ0000.DAT",
		}},
		{Type: pdb.TablePlaylistTree, PlaylistNode: &pdb.PlaylistNodeRow{
			PlaylistID: 100, ParentID: 0, IsFolder: false, Name: "Favorites",
		}},
		{Type: pdb.TablePlaylistEntries, PlaylistEntry: &pdb.PlaylistEntryRow{
			PlaylistID: 100, EntryIndex: 0, TrackID: 10,
		}},
	}

	lib := Build(rows)

	track, ok := lib.Tracks[10]
	if !ok {
		t.Fatal("track 10 missing")
	}
	if track.Title != "Xtal" || track.Tempo != 128 {
		t.Errorf("track = %+v", track)
	}
	if lib.Artist(track.ArtistID).Name != "Aphex Twin" {
		t.Errorf("artist lookup = %q", lib.Artist(track.ArtistID).Name)
	}
	if lib.Album(track.AlbumID).Name != "Selected Ambient Works" {
		t.Errorf("album lookup = %q", lib.Album(track.AlbumID).Name)
	}
	if lib.Genre(track.GenreID).Name != "IDM" {
		t.Errorf("genre lookup = %q", lib.Genre(track.GenreID).Name)
	}

	pl, ok := lib.Playlists[100]
	if !ok || pl.Name != "Favorites" {
		t.Fatalf("playlist 100 = %+v, ok=%v", pl, ok)
	}
	if len(lib.PlaylistEntries) != 1 || lib.PlaylistEntries[0].TrackID != 10 {
		t.Fatalf("playlist entries = %+v", lib.PlaylistEntries)
	}
}
