// Package nml emits Traktor NML playlist files from a decoded library
// model: one collection of track entries (with cues and tempo grid) plus a
// single-playlist tree, per track-collection export.
package nml

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/traktorbox/traktorbox/library"
)

const nmlVersion = "20"
const locationDir = "/:TRAKTOR/:"

// Emit renders one NML document for a single non-folder playlist. fileName
// resolves a track's final, possibly disambiguated, file name; callers pass
// the symlink allocator's result here so LOCATION and PRIMARYKEY agree.
// now is the already 10-year-shifted wall clock used for every entry's
// MODIFIED_DATE/MODIFIED_TIME.
func Emit(lib *library.Library, p *library.Playlist, usbVolume string, fileName func(trackID uint32) string, now time.Time) ([]byte, []string, error) {
	if p.IsFolder {
		return nil, nil, fmt.Errorf("nml: playlist %d (%s) is a folder, cannot be emitted", p.ID, p.Name)
	}

	var warnings []string
	entries := entriesForPlaylist(lib, p)

	doc := document{
		Version: nmlVersion,
		Head:    head{Company: "www.native-instruments.com", Program: "Traktor Pro 4"},
		Sets:    sets{Entries: 0},
	}

	modDate, modTime := entryClock(now)

	plKind := plist{
		Entries: len(entries),
		Type:    "LIST",
		UUID:    newUUID(),
	}

	for _, pe := range entries {
		t, ok := lib.Tracks[pe.TrackID]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("dangling foreign key: playlist %d entry %d references missing track %d", p.ID, pe.EntryIndex, pe.TrackID))
			continue
		}
		name := fileName(t.ID)

		autoGrid, gridWarn := buildAutoGrid(t.Analysis.Beats, t.Tempo)
		if gridWarn != "" {
			warnings = append(warnings, fmt.Sprintf("track %d: %s", t.ID, gridWarn))
		}
		memCues, cueWarn := buildMemoryCues(t.Analysis.Cues)
		if cueWarn != "" {
			warnings = append(warnings, fmt.Sprintf("track %d: %s", t.ID, cueWarn))
		}

		e := entry{
			ModifiedDate: modDate,
			ModifiedTime: modTime,
			Title:        t.Title,
			Artist:       lib.Artist(t.ArtistID).Name,
			Location: location{
				Dir:      locationDir,
				File:     name,
				Volume:   usbVolume,
				VolumeID: usbVolume,
			},
			Album: album{
				Track: int(t.TrackNumber),
				Title: lib.Album(t.AlbumID).Name,
			},
			Info: info{
				Genre:       lib.Genre(t.GenreID).Name,
				Comment:     t.Comment,
				PlayCount:   int(t.PlayCount),
				Label:       lib.Label(t.LabelID).Name,
				Key:         lib.Key(t.KeyID).Name,
				PlayTime:    int(t.DurationS),
				PlayTimeF:   fixedFloat(t.DurationS),
				ImportDate:  reformatDate(t.DateAdded),
				ReleaseDate: reformatDate(t.ReleaseDate),
			},
			Tempo: tempo{
				BPM:        fixedFloat(t.Tempo),
				BPMQuality: "100.000000",
			},
			AutoGrid:   autoGrid,
			MemoryCues: memCues,
		}
		if color, ok := traktorColor(t.ColorID); ok {
			e.Info.Color = setInt(color)
		}
		if t.FileSize != 0 {
			e.Info.FileSize = setInt(int(t.FileSize / 1024))
		}
		if t.Bitrate != 0 {
			e.Info.Bitrate = setInt(int(t.Bitrate) * 1000)
		}
		if t.Rating != 0 {
			e.Info.Ranking = setInt(int(t.Rating) * 51)
		}
		doc.Collection.Entry = append(doc.Collection.Entry, e)

		plKind.Entry = append(plKind.Entry, plEntry{
			PrimaryKey: primaryKey{
				Type: "TRACK",
				Key:  fmt.Sprintf("%s/:TRAKTOR/:%s", usbVolume, name),
			},
		})
	}
	doc.Collection.Entries = len(doc.Collection.Entry)

	doc.Playlists = playlists{
		Root: node{
			Type: "FOLDER",
			Name: "$ROOT",
			Subnodes: &subnodes{
				Count: 1,
				Node: []node{{
					Type:     "PLAYLIST",
					Name:     p.Name,
					Playlist: &plKind,
				}},
			},
		},
	}

	body, err := xml.MarshalIndent(&doc, "", "\t")
	if err != nil {
		return nil, warnings, err
	}
	out := make([]byte, 0, len(header)+len(body)+1)
	out = append(out, header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, warnings, nil
}

// entriesForPlaylist returns a playlist's entries in ascending entry_index
// order.
func entriesForPlaylist(lib *library.Library, p *library.Playlist) []*library.PlaylistEntry {
	var entries []*library.PlaylistEntry
	for _, e := range lib.PlaylistEntries {
		if e.PlaylistID == p.ID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].EntryIndex < entries[j].EntryIndex })
	return entries
}

// entryClock splits a timestamp into the unpadded Y/M/D date string and the
// integer seconds-since-midnight MODIFIED_TIME attribute.
func entryClock(now time.Time) (string, int) {
	y, m, d := now.Date()
	date := fmt.Sprintf("%d/%d/%d", y, int(m), d)
	secs := now.Hour()*3600 + now.Minute()*60 + now.Second()
	return date, secs
}

// reformatDate converts a source "YYYY-MM-DD" date into unpadded Y/M/D,
// leaving anything it can't parse untouched (including the empty string,
// which must round-trip to an empty attribute, not an absent one).
func reformatDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return s
	}
	y, m, d := t.Date()
	return fmt.Sprintf("%d/%d/%d", y, int(m), d)
}

// newUUID returns 32 lowercase hex characters with no dashes, as required
// by the PLAYLIST element's UUID attribute.
func newUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")
}
