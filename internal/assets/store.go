package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"image-gateway/internal/logging"
	"image-gateway/internal/mediatypes"
)

// ErrNotFound means no origin file matches the requested identifier.
var ErrNotFound = errors.New("image not found")

// ErrBadOrigin means an origin file exists but cannot be served, typically
// because its extension is outside the supported format set.
var ErrBadOrigin = errors.New("failed to load image")

// Asset is one origin file plus the physical format implied by its
// extension.
type Asset struct {
	Path   string
	Format mediatypes.Format
}

// Store reads origin images from a flat directory.
type Store struct {
	dir string
}

// NewStore creates a store over dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Locate finds the origin file for id among <id> and <id>.*, taking the
// first match in lexical order when several exist. Zero matches is
// ErrNotFound; a match whose extension is not a supported format is
// ErrBadOrigin.
func (s *Store) Locate(id string) (*Asset, error) {
	var matches []string

	bare := filepath.Join(s.dir, id)
	if info, err := os.Stat(bare); err == nil && !info.IsDir() {
		matches = append(matches, bare)
	}

	globbed, err := filepath.Glob(bare + ".*")
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", id, err)
	}
	matches = append(matches, globbed...)
	sort.Strings(matches)

	if len(matches) == 0 {
		return nil, ErrNotFound
	}
	if len(matches) > 1 {
		logging.Debug("Locate: %d matches for %s, using %s", len(matches), id, matches[0])
	}

	path := matches[0]
	format, err := mediatypes.ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%w: unsupported origin extension %q", ErrBadOrigin, filepath.Ext(path))
	}
	return &Asset{Path: path, Format: format}, nil
}

// SiblingExists reports whether a precomputed variant <id><ext> of format f
// is present next to the origin file.
func (s *Store) SiblingExists(id string, f mediatypes.Format) bool {
	info, err := os.Stat(filepath.Join(s.dir, id+f.Ext()))
	return err == nil && !info.IsDir()
}
