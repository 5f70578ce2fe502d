package layouts

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// ErrNotFound is returned when no layout has the requested id.
var ErrNotFound = errors.New("layout not found")

// Builtin returns the layouts shipped with the binary, sorted by id.
// Built-in files are validated by tests, so a parse failure here is a
// programming error and panics.
func Builtin() []Layout {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("layouts: reading embedded layouts: %v", err))
	}

	var result []Layout
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("layouts: reading %s: %v", e.Name(), err))
		}
		l, err := ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("layouts: %s: %v", e.Name(), err))
		}
		result = append(result, l)
	}

	sortByID(result)
	return result
}

// Loader handles loading layouts from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new layout loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all layout files under Root.
// Invalid files are skipped. Returns layouts sorted by id.
func (l *Loader) LoadAll() ([]Layout, error) {
	var result []Layout

	err := filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(p)) {
			return nil
		}

		layout, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		result = append(result, layout)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("layouts: walking directory %s: %w", l.Root, err)
	}

	sortByID(result)
	return result, nil
}

// LoadFile loads a single layout file.
func (l *Loader) LoadFile(p string) (Layout, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Layout{}, fmt.Errorf("layouts: reading file %s: %w", p, err)
	}
	layout, err := ParseYAML(data)
	if err != nil {
		return Layout{}, fmt.Errorf("layouts: parsing file %s: %w", p, err)
	}
	layout.FilePath = p
	return layout, nil
}

// All returns the built-in layouts followed by those found in dir.
// A user layout with the same id as a built-in one replaces it.
// An empty or missing dir yields just the built-ins.
func All(dir string) ([]Layout, error) {
	byID := make(map[string]Layout)
	for _, l := range Builtin() {
		byID[l.ID] = l
	}

	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			user, err := NewLoader(dir).LoadAll()
			if err != nil {
				return nil, err
			}
			for _, l := range user {
				byID[l.ID] = l
			}
		}
	}

	result := make([]Layout, 0, len(byID))
	for _, l := range byID {
		result = append(result, l)
	}
	sortByID(result)
	return result, nil
}

// Find returns the layout with the given id from All(dir).
func Find(dir, id string) (Layout, error) {
	all, err := All(dir)
	if err != nil {
		return Layout{}, err
	}
	for _, l := range all {
		if l.ID == id {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf("layouts: %q: %w", id, ErrNotFound)
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func sortByID(ls []Layout) {
	sort.Slice(ls, func(i, j int) bool {
		return ls[i].ID < ls[j].ID
	})
}
