package locale

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strings"
)

// Adapter loads a locale bundle: a mapping from locale code to Definition.
type Adapter interface {
	Load(ctx context.Context) (map[string]Definition, error)
}

// MapAdapter serves an in-memory bundle. Useful for tests and for callers
// that author locale data in Go.
type MapAdapter struct {
	Data map[string]Definition
}

// Load implements the Adapter interface.
func (a *MapAdapter) Load(_ context.Context) (map[string]Definition, error) {
	if a.Data == nil {
		return make(map[string]Definition), nil
	}
	return a.Data, nil
}

// FileAdapter reads one file holding a full bundle (top-level keys are
// locale codes) through the given parser.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a FileAdapter. Returns nil if parser is nil or
// path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the Adapter interface.
func (a *FileAdapter) Load(ctx context.Context) (map[string]Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("locale file %q is empty", a.path)
	}

	return a.parser.Parse(ctx, content)
}

// FSAdapter walks a filesystem (typically an embed.FS) and merges every
// *.yaml, *.yml, and *.json file it finds into one bundle. Later files
// extend earlier ones; on a locale-code collision the categories are merged
// with later files winning per category.
type FSAdapter struct {
	fsys fs.FS
	root string
}

// NewFSAdapter creates an FSAdapter rooted at dir within fsys.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	return &FSAdapter{fsys: fsys, root: dir}
}

// Load implements the Adapter interface.
func (a *FSAdapter) Load(ctx context.Context) (map[string]Definition, error) {
	bundle := make(map[string]Definition)

	err := fs.WalkDir(a.fsys, a.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return errors.Join(ErrLoadCancelled, cerr)
		}
		if d.IsDir() {
			return nil
		}

		var parser Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			parser = &YAMLParser{}
		case ".json":
			parser = &JSONParser{}
		default:
			return nil
		}

		content, err := fs.ReadFile(a.fsys, path)
		if err != nil {
			return errors.Join(ErrFailedToReadFile, err)
		}

		part, err := parser.Parse(ctx, content)
		if err != nil {
			return fmt.Errorf("locale file %q: %w", path, err)
		}

		for code, def := range part {
			existing, ok := bundle[code]
			if !ok {
				bundle[code] = def
				continue
			}
			maps.Copy(existing, def)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bundle, nil
}
