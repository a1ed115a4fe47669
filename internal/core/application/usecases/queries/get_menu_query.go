package queries

import (
	"context"
	"errors"

	"barista/internal/core/ports"
	"barista/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery lists the items that can be ordered.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

type GetMenuQueryResponse struct {
	ID              string
	Name            string
	DurationSeconds int
}

// GetMenuQueryHandler reads the catalog from the menu repository.
type GetMenuQueryHandler struct {
	menuRepo ports.MenuRepository
}

func NewGetMenuQueryHandler(menuRepo ports.MenuRepository) GetMenuQueryHandler {
	return GetMenuQueryHandler{menuRepo: menuRepo}
}

// Handle returns the items in catalog order.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.menuRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]GetMenuQueryResponse, 0, len(items))
	for _, item := range items {
		response = append(response, GetMenuQueryResponse{
			ID:              item.ID(),
			Name:            item.Name(),
			DurationSeconds: item.DurationSeconds(),
		})
	}

	return response, nil
}
