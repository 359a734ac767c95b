/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filestore

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/suparena/settingstore/errors"
	"github.com/suparena/settingstore/registry"
)

// Store implements assetstore.Store over a resource directory.
// An asset path such as "Setting/ColorSetting" resolves to the first existing
// file among "<root>/Setting/ColorSetting<ext>" for every registered extension.
// A path that already carries a registered extension is read as-is.
type Store struct {
	fsys fs.FS
	root string
}

// New returns a Store reading from the directory root.
func New(root string) *Store {
	return &Store{fsys: os.DirFS(root), root: root}
}

// NewFS returns a Store reading from an fs.FS, e.g. an embed.FS or fstest.MapFS.
func NewFS(fsys fs.FS) *Store {
	return &Store{fsys: fsys, root: "."}
}

// Root returns the directory the store was created with.
func (s *Store) Root() string {
	return s.root
}

// Load reads and decodes the asset at assetPath into out.
func (s *Store) Load(ctx context.Context, assetPath string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, err := cleanPath(assetPath)
	if err != nil {
		return err
	}

	file, ext, err := s.resolve(name)
	if err != nil {
		return err
	}

	data, err := fs.ReadFile(s.fsys, file)
	if err != nil {
		return fmt.Errorf("read asset %q: %w", file, err)
	}

	decode, err := registry.GetDecodeFunc(ext)
	if err != nil {
		return err
	}
	if err := decode(data, out); err != nil {
		return fmt.Errorf("decode asset %q: %w", file, err)
	}
	return nil
}

// resolve finds the file backing name and the extension used to decode it.
func (s *Store) resolve(name string) (string, string, error) {
	if ext := strings.ToLower(path.Ext(name)); ext != "" {
		if _, err := registry.GetDecodeFunc(ext); err == nil {
			if _, err := fs.Stat(s.fsys, name); err == nil {
				return name, ext, nil
			}
			return "", "", errors.NewNotFoundError("filestore", name)
		}
	}

	for _, ext := range registry.Formats() {
		candidate := name + ext
		if _, err := fs.Stat(s.fsys, candidate); err == nil {
			return candidate, ext, nil
		}
	}
	return "", "", errors.NewNotFoundError("filestore", name)
}

// cleanPath converts an asset path to a slash-separated fs.FS name.
func cleanPath(assetPath string) (string, error) {
	name := path.Clean(filepath.ToSlash(strings.TrimSpace(assetPath)))
	name = strings.TrimPrefix(name, "/")
	if name == "" || name == "." || !fs.ValidPath(name) {
		return "", errors.NewValidationError("path", fmt.Sprintf("invalid asset path %q", assetPath))
	}
	return name, nil
}
