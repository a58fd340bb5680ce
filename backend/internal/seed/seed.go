// Package seed loads synonym groups from YAML or JSON files into a store.
package seed

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
	"synonym-search/backend/internal/synonym"
	apperrors "synonym-search/backend/pkg/errors"
)

// Group is one seed entry: a word and the synonyms linked to it
type Group struct {
	Word     string   `yaml:"word"`
	Synonyms []string `yaml:"synonyms"`
}

// File is the document format of a seed file. JSON documents parse as well,
// since JSON is a subset of YAML.
type File struct {
	Path   string  `yaml:"-"`
	Groups []Group `yaml:"groups"`
}

// Linker is the part of the store a seed is applied to
type Linker interface {
	Link(word string, synonyms []string) error
}

// Parse decodes a seed document
func Parse(path string, data []byte) (*File, error) {
	f := &File{Path: path}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, apperrors.NewSeedLoadFailed(path, -1, err)
	}
	return f, nil
}

// LoadFiles reads and parses the given paths concurrently. Results keep the
// order of paths; the first failure cancels the rest.
func LoadFiles(ctx context.Context, paths []string) ([]*File, error) {
	files := make([]*File, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return apperrors.NewSeedLoadFailed(path, -1, err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return apperrors.NewSeedLoadFailed(path, -1, err)
			}
			f, err := Parse(path, data)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// Apply links every group of every file in order. It stops at the first
// rejected group; groups applied before it stay linked.
func Apply(store Linker, files []*File) (int, error) {
	applied := 0
	for _, f := range files {
		for i, grp := range f.Groups {
			if err := store.Link(grp.Word, grp.Synonyms); err != nil {
				return applied, apperrors.NewSeedLoadFailed(f.Path, i, err)
			}
			applied++
		}
	}
	return applied, nil
}

// Load reads paths and applies them to store, returning the number of groups linked
func Load(ctx context.Context, store *synonym.Store, paths []string) (int, error) {
	if len(paths) == 0 {
		return 0, nil
	}
	files, err := LoadFiles(ctx, paths)
	if err != nil {
		return 0, err
	}
	n, err := Apply(store, files)
	if err != nil {
		return n, fmt.Errorf("apply seed: %w", err)
	}
	return n, nil
}
