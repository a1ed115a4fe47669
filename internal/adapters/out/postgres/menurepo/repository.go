package menurepo

import (
	"context"
	"errors"
	"fmt"

	"barista/internal/core/domain/model/menu"
	"barista/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements ports.MenuRepository using GORM.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a repository over db.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// Migrate creates or updates the menu_items table.
func (r *GormMenuRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&MenuItemDTO{})
}

// Add appends item to the end of the catalog.
func (r *GormMenuRepository) Add(ctx context.Context, item *menu.Item) error {
	return r.AddAll(ctx, []*menu.Item{item})
}

// AddAll appends items in order within a single transaction. Either every item is
// stored or none is.
func (r *GormMenuRepository) AddAll(ctx context.Context, items []*menu.Item) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(&MenuItemDTO{}).
			Select("COALESCE(MAX(position) + 1, 0)").
			Scan(&next).Error; err != nil {
			return err
		}

		for i, item := range items {
			dto := fromDomain(item, next+i)
			if err := tx.Create(&dto).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return errs.NewValueIsInvalidErrorWithCause("menu item id",
						fmt.Errorf("%q is declared more than once", item.ID()))
				}
				return err
			}
		}

		return nil
	})
}

// GetAll returns the catalog in insertion order.
func (r *GormMenuRepository) GetAll(ctx context.Context) ([]*menu.Item, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("position, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("menu item %q: %w", dto.ID, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// Get returns one item or an errs.ObjectNotFoundError.
func (r *GormMenuRepository) Get(ctx context.Context, id string) (*menu.Item, error) {
	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItemId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Count returns the number of catalog items.
func (r *GormMenuRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&MenuItemDTO{}).Count(&n).Error
	return n, err
}
