// Package menufile loads the menu catalog from a YAML file.
//
// File format:
//
//	items:
//	  - id: c1
//	    name: café au lait
//	    durationSeconds: 4
//
// The catalog is validated as a whole when loaded: a missing id or name, a
// non-positive duration, a duplicate id or an unknown field fails the load.
package menufile

import (
	"context"
	"fmt"
	"io"
	"os"

	"barista/internal/core/domain/model/menu"

	"gopkg.in/yaml.v3"
)

type fileDTO struct {
	Items []itemDTO `yaml:"items"`
}

type itemDTO struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	DurationSeconds int    `yaml:"durationSeconds"`
}

// FileMenuRepository serves a catalog read once at startup.
type FileMenuRepository struct {
	catalog *menu.Catalog
}

// Open reads and validates the catalog at path.
func Open(path string) (*FileMenuRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open menu file: %w", err)
	}
	defer f.Close()

	repo, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load menu file %s: %w", path, err)
	}
	return repo, nil
}

// Load reads and validates a catalog from r.
func Load(r io.Reader) (*FileMenuRepository, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var dto fileDTO
	if err := dec.Decode(&dto); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("menu is empty")
		}
		return nil, fmt.Errorf("decode menu: %w", err)
	}

	items := make([]*menu.Item, 0, len(dto.Items))
	for i, raw := range dto.Items {
		item, err := menu.NewItem(raw.ID, raw.Name, raw.DurationSeconds)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}

	catalog, err := menu.NewCatalog(items)
	if err != nil {
		return nil, err
	}

	return &FileMenuRepository{catalog: catalog}, nil
}

// GetAll returns the items in file order.
func (r *FileMenuRepository) GetAll(_ context.Context) ([]*menu.Item, error) {
	return r.catalog.Items(), nil
}

// Get returns one item or an errs.ObjectNotFoundError.
func (r *FileMenuRepository) Get(_ context.Context, id string) (*menu.Item, error) {
	return r.catalog.Get(id)
}
