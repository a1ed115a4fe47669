package commands_test

import (
	"context"
	"time"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/model/menu"
	"barista/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) GetAll(ctx context.Context) ([]*menu.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*menu.Item)
	return items, args.Error(1)
}

func (m *MockMenuRepository) Get(ctx context.Context, id string) (*menu.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*menu.Item)
	return item, args.Error(1)
}

type MockEngine struct{ mock.Mock }

func (m *MockEngine) PlaceOrder(item *menu.Item) (*order.Order, error) {
	args := m.Called(item)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockEngine) PickUp(id kernel.UUID) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockEngine) Start(interval time.Duration) error {
	args := m.Called(interval)
	return args.Error(0)
}

func (m *MockEngine) Stop() {
	m.Called()
}
