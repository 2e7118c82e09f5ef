package gamedata

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/samdwyer/thefloor/internal/board"
)

// CreateImageFolders makes one folder under root for every distinct category
// in records, so a host knows where to drop each category's images. Existing
// folders are left alone.
func CreateImageFolders(root string, records []board.Record) error {
	seen := make(map[string]bool)
	for _, r := range records {
		if r.Category == "" || seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		if !fs.ValidPath(r.Category) || r.Category == "." {
			return fmt.Errorf("create image folder %q: invalid category name", r.Category)
		}
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(r.Category)), 0o755); err != nil {
			return fmt.Errorf("create image folder %q: %w", r.Category, err)
		}
	}
	return nil
}
