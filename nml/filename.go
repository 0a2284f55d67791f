package nml

import (
	"fmt"
	"strings"

	"github.com/traktorbox/traktorbox/library"
)

// Filename returns the output file name for a non-folder playlist: its
// ancestor folder names (root to parent) joined with the playlist's own
// name by underscores, with any "/" in a name also flattened to "_".
func Filename(lib *library.Library, p *library.Playlist) (string, error) {
	var names []string
	cur := p
	for cur.ParentID != 0 {
		parent, ok := lib.Playlists[cur.ParentID]
		if !ok {
			return "", fmt.Errorf("nml: playlist %d has unknown parent %d", cur.ID, cur.ParentID)
		}
		if !parent.IsFolder {
			return "", fmt.Errorf("nml: playlist %d's ancestor %d is not a folder", cur.ID, parent.ID)
		}
		names = append(names, parent.Name)
		cur = parent
	}
	// names was built parent-to-root; reverse it to root-to-parent.
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	names = append(names, p.Name)

	joined := strings.Join(names, "_")
	joined = strings.ReplaceAll(joined, "/", "_")
	return joined + ".nml", nil
}
