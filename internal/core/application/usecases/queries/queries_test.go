package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"barista/internal/core/application/usecases/queries"
	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/model/menu"
	"barista/internal/core/domain/model/order"
	"barista/internal/core/domain/model/station"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

// stationBoard serves queries from a real station.
type stationBoard struct{ s *station.Station }

func (b stationBoard) Snapshot() station.Snapshot { return b.s.Snapshot() }
func (b stationBoard) Counts() station.Counts     { return b.s.Counts() }

// newBoard builds a station with one ready, one preparing and one queued order.
func newBoard(t *testing.T) (stationBoard, []*order.Order) {
	t.Helper()
	s := station.NewStation()
	var placed []*order.Order
	for _, name := range []string{"espresso", "latte", "mocha"} {
		item, err := menu.NewItem(name, name, 4)
		require.NoError(t, err)
		o, err := order.NewOrder(kernel.NewUUID(), item, time.Now())
		require.NoError(t, err)
		require.NoError(t, s.Enqueue(o))
		placed = append(placed, o)
	}
	s.PromoteNext()
	s.CompleteCurrent()
	s.PromoteNext()
	s.Advance(time.Second, 0.25)
	return stationBoard{s: s}, placed
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	board, _ := newBoard(t)
	ctx := t.Context()

	_, err := queries.NewGetQueueQueryHandler(board).Handle(ctx, queries.GetQueueQuery{})
	assert.ErrorIs(t, err, queries.ErrGetQueueQueryIsNotConstructed)

	_, err = queries.NewGetReadyOrdersQueryHandler(board).Handle(ctx, queries.GetReadyOrdersQuery{})
	assert.ErrorIs(t, err, queries.ErrGetReadyOrdersQueryIsNotConstructed)

	_, err = queries.NewGetCountsQueryHandler(board).Handle(ctx, queries.GetCountsQuery{})
	assert.ErrorIs(t, err, queries.ErrGetCountsQueryIsNotConstructed)

	_, err = queries.NewGetMenuQueryHandler(new(MockMenuRepository)).Handle(ctx, queries.GetMenuQuery{})
	assert.ErrorIs(t, err, queries.ErrGetMenuQueryIsNotConstructed)
}

func TestGetQueueQueryHandler_Handle(t *testing.T) {
	t.Run("should return queued, preparing and progress", func(t *testing.T) {
		board, placed := newBoard(t)

		got, err := queries.NewGetQueueQueryHandler(board).Handle(t.Context(), queries.NewGetQueueQuery())

		require.NoError(t, err)
		require.Len(t, got.Queued, 1)
		assert.Equal(t, placed[2].ID(), got.Queued[0].ID)
		assert.Equal(t, "Queued", got.Queued[0].Status)
		require.NotNil(t, got.Preparing)
		assert.Equal(t, placed[1].ID(), got.Preparing.ID)
		assert.Equal(t, "latte", got.Preparing.Name)
		assert.Equal(t, "Preparing", got.Preparing.Status)
		assert.InDelta(t, 0.25, got.Progress, 1e-9)
	})

	t.Run("should report no preparing order on an idle station", func(t *testing.T) {
		board := stationBoard{s: station.NewStation()}

		got, err := queries.NewGetQueueQueryHandler(board).Handle(t.Context(), queries.NewGetQueueQuery())

		require.NoError(t, err)
		assert.Nil(t, got.Preparing)
		assert.Empty(t, got.Queued)
		assert.Zero(t, got.Progress)
	})
}

func TestGetReadyOrdersQueryHandler_Handle(t *testing.T) {
	board, placed := newBoard(t)

	got, err := queries.NewGetReadyOrdersQueryHandler(board).Handle(t.Context(), queries.NewGetReadyOrdersQuery())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, placed[0].ID(), got[0].ID)
	assert.Equal(t, "espresso", got[0].MenuItemID)
	assert.Equal(t, 4, got[0].DurationSeconds)
	assert.Equal(t, "Ready", got[0].Status)
}

func TestGetCountsQueryHandler_Handle(t *testing.T) {
	board, _ := newBoard(t)

	got, err := queries.NewGetCountsQueryHandler(board).Handle(t.Context(), queries.NewGetCountsQuery())

	require.NoError(t, err)
	assert.Equal(t, queries.GetCountsQueryResponse{Pending: 2, Pickup: 1}, got)
}

func TestGetMenuQueryHandler_Handle(t *testing.T) {
	t.Run("should map catalog items", func(t *testing.T) {
		ctx := t.Context()
		latte, _ := menu.NewItem("c1", "café au lait", 4)
		mocha, _ := menu.NewItem("c2", "mocha", 6)
		repo := new(MockMenuRepository)
		repo.On("GetAll", ctx).Return([]*menu.Item{latte, mocha}, nil).Once()

		got, err := queries.NewGetMenuQueryHandler(repo).Handle(ctx, queries.NewGetMenuQuery())

		require.NoError(t, err)
		assert.Equal(t, []queries.GetMenuQueryResponse{
			{ID: "c1", Name: "café au lait", DurationSeconds: 4},
			{ID: "c2", Name: "mocha", DurationSeconds: 6},
		}, got)
		repo.AssertExpectations(t)
	})

	t.Run("should return repository errors", func(t *testing.T) {
		ctx := t.Context()
		boom := errors.New("connection refused")
		repo := new(MockMenuRepository)
		repo.On("GetAll", ctx).Return(nil, boom).Once()

		_, err := queries.NewGetMenuQueryHandler(repo).Handle(ctx, queries.NewGetMenuQuery())

		require.ErrorIs(t, err, boom)
	})
}
