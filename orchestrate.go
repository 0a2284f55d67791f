// Package traktorbox converts a rekordbox USB export into a Traktor-
// compatible library: one NML playlist file per non-folder playlist,
// alongside a flat directory of symlinks Traktor uses as its media root.
package traktorbox

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/traktorbox/traktorbox/anlz"
	"github.com/traktorbox/traktorbox/fsio"
	"github.com/traktorbox/traktorbox/library"
	"github.com/traktorbox/traktorbox/nml"
	"github.com/traktorbox/traktorbox/pdb"
)

// defaultTimeShift is applied to the wall clock used for every entry's
// MODIFIED_DATE/MODIFIED_TIME, so that symlinks created moments later never
// carry a newer mtime than the collection that references them.
const defaultTimeShift = 10 * 365 * 24 * time.Hour

// Options tunes a single Convert run. The zero value is production
// defaults; tests override Clock and TimeShift to get a deterministic
// MODIFIED_DATE/MODIFIED_TIME.
type Options struct {
	// Clock returns the wall-clock time Convert treats as "now", before
	// TimeShift is applied. Defaults to time.Now.
	Clock func() time.Time
	// TimeShift is added to Clock() before stamping entries. Defaults to
	// defaultTimeShift.
	TimeShift time.Duration
}

func (o Options) clock() time.Time {
	if o.Clock != nil {
		return o.Clock()
	}
	return time.Now()
}

func (o Options) timeShift() time.Duration {
	if o.TimeShift != 0 {
		return o.TimeShift
	}
	return defaultTimeShift
}

// Result summarizes a completed conversion.
type Result struct {
	TrackCount    int
	PlaylistCount int
	Warnings      []string
}

// Convert reads the rekordbox export rooted at usbPath and writes a
// Traktor-compatible library back under usbPath/TRAKTOR.
func Convert(fsys fsio.FS, usbPath string, opts Options) (*Result, error) {
	pdbPath := path.Join(usbPath, "PIONEER", "rekordbox", "export.pdb")
	buf, err := fsys.ReadFile(pdbPath)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", pdbPath)
	}
	rows, err := pdb.Walk(buf)
	if err != nil {
		return nil, errors.Wrap(err, "decode export.pdb")
	}
	lib := library.Build(rows)

	res := &Result{TrackCount: len(lib.Tracks)}
	attachAnalysis(fsys, usbPath, lib, res)

	traktorDir := path.Join(usbPath, "TRAKTOR")
	if err := fsys.RemoveAll(traktorDir); err != nil {
		return nil, errors.Wrapf(err, "remove %s", traktorDir)
	}
	if err := fsys.MkdirAll(traktorDir); err != nil {
		return nil, errors.Wrapf(err, "create %s", traktorDir)
	}

	finalNames, err := allocateSymlinks(fsys, traktorDir, lib)
	if err != nil {
		return nil, err
	}

	usbVolume := path.Base(strings.TrimRight(usbPath, "/"))
	now := opts.clock().Add(opts.timeShift())

	playlists := make([]*library.Playlist, 0, len(lib.Playlists))
	for _, p := range lib.Playlists {
		if !p.IsFolder {
			playlists = append(playlists, p)
		}
	}
	sort.Slice(playlists, func(i, j int) bool { return playlists[i].ID < playlists[j].ID })

	for _, p := range playlists {
		name, err := nml.Filename(lib, p)
		if err != nil {
			return nil, errors.Wrapf(err, "playlist %d", p.ID)
		}
		data, warnings, err := nml.Emit(lib, p, usbVolume, func(trackID uint32) string {
			if n, ok := finalNames[trackID]; ok {
				return n
			}
			return ""
		}, now)
		if err != nil {
			return nil, errors.Wrapf(err, "emit %s", name)
		}
		res.Warnings = append(res.Warnings, warnings...)
		if err := fsys.WriteFile(path.Join(traktorDir, name), data); err != nil {
			return nil, errors.Wrapf(err, "write %s", name)
		}
		res.PlaylistCount++
	}

	return res, nil
}

// attachAnalysis reads and decodes each track's .DAT/.EXT analysis siblings
// and merges the results into lib. A missing or corrupt .DAT is fatal only
// for that track's own analysis, recorded as a warning, not aborting the
// run; a missing .EXT is unremarkable and silent.
func attachAnalysis(fsys fsio.FS, usbPath string, lib *library.Library, res *Result) {
	ids := make([]uint32, 0, len(lib.Tracks))
	for id := range lib.Tracks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		t := lib.Tracks[id]
		if t.AnalyzePath == "" {
			continue
		}
		datPath := path.Join(usbPath, stemSwapExt(t.AnalyzePath, ".DAT"))
		datBuf, err := fsys.ReadFile(datPath)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("track %d: missing analysis file %s: %v", t.ID, datPath, err))
			continue
		}
		datResult, err := anlz.Parse(datBuf)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("track %d: corrupt analysis file %s: %v", t.ID, datPath, err))
			continue
		}
		lib.AttachAnalysis(t.ID, datResult)

		extPath := path.Join(usbPath, stemSwapExt(t.AnalyzePath, ".EXT"))
		if extBuf, err := fsys.ReadFile(extPath); err == nil {
			if extResult, err := anlz.Parse(extBuf); err == nil {
				lib.AttachAnalysis(t.ID, extResult)
			} else {
				res.Warnings = append(res.Warnings, fmt.Sprintf("track %d: corrupt analysis file %s: %v", t.ID, extPath, err))
			}
		}
	}
}

// stemSwapExt replaces p's extension with ext, e.g.
// "PIONEER/USBANLZ/P001/ANLZ0000.DAT" with ext ".EXT" becomes
// "PIONEER/USBANLZ/P001/ANLZ0000.EXT".
func stemSwapExt(p, ext string) string {
	if i := strings.LastIndexByte(p, '.'); i >= 0 {
		return p[:i] + ext
	}
	return p + ext
}

// allocateSymlinks creates one symlink per track under traktorDir, pointing
// back to its file_path relative to the USB root, disambiguating
// file_name collisions by prefixing "{n}-" starting at n=2. It returns the
// track id to final file name mapping the emitter must use for both
// LOCATION and PRIMARYKEY.
func allocateSymlinks(fsys fsio.FS, traktorDir string, lib *library.Library) (map[uint32]string, error) {
	ids := make([]uint32, 0, len(lib.Tracks))
	for id := range lib.Tracks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	used := make(map[string]bool)
	final := make(map[uint32]string, len(ids))
	for _, id := range ids {
		t := lib.Tracks[id]
		name := t.FileName
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%d-%s", n, t.FileName)
		}
		used[name] = true
		final[id] = name

		target := path.Join("..", t.FilePath)
		link := path.Join(traktorDir, name)
		if err := fsys.Symlink(target, link); err != nil {
			return nil, errors.Wrapf(err, "symlink %s", link)
		}
	}
	return final, nil
}
