// Package menurepo stores the menu catalog in PostgreSQL through GORM.
//
// The engine itself keeps no persistent state; only the catalog it orders from lives
// in the database.
package menurepo

import (
	"barista/internal/core/domain/model/menu"
)

// MenuItemDTO is the row of the menu_items table. Position keeps catalog order.
type MenuItemDTO struct {
	ID              string `gorm:"primaryKey;size:64"`
	Name            string `gorm:"not null"`
	DurationSeconds int    `gorm:"not null;check:duration_seconds > 0"`
	Position        int    `gorm:"not null;index"`
}

// TableName overrides GORM's default naming.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.Item, position int) MenuItemDTO {
	return MenuItemDTO{
		ID:              item.ID(),
		Name:            item.Name(),
		DurationSeconds: item.DurationSeconds(),
		Position:        position,
	}
}

// toDomain goes through menu.NewItem, so a row edited by hand into an invalid state is
// reported instead of reaching the engine.
func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	return menu.NewItem(dto.ID, dto.Name, dto.DurationSeconds)
}
