package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tansyhq/tansy/internal/shared/logger"
)

// ResolvedFile is a per-entity document found in the attachment directory.
// OriginalName is the filename with the entity-id prefix stripped, which is
// what the recipient sees.
type ResolvedFile struct {
	Path         string
	OriginalName string
}

// DirAttachmentResolver locates per-entity documents stored on disk under the
// naming convention "{entityID}_{originalFilename}".
type DirAttachmentResolver struct {
	dir    string
	logger logger.Interface
}

func NewDirAttachmentResolver(dir string, logger logger.Interface) *DirAttachmentResolver {
	return &DirAttachmentResolver{
		dir:    dir,
		logger: logger,
	}
}

// Resolve returns the files stored for the given entity. A missing directory
// or no matching files both yield an empty slice, not an error.
func (r *DirAttachmentResolver) Resolve(entityID uint) ([]ResolvedFile, error) {
	if r.dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Debugw("attachment directory does not exist", "dir", r.dir)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read attachment directory: %w", err)
	}

	prefix := fmt.Sprintf("%d_", entityID)
	var resolved []ResolvedFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		original := strings.TrimPrefix(name, prefix)
		if original == "" {
			continue
		}
		resolved = append(resolved, ResolvedFile{
			Path:         filepath.Join(r.dir, name),
			OriginalName: original,
		})
	}

	return resolved, nil
}
