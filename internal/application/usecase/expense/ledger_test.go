package expense

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finance-tracker/budget/internal/application/adapter/mock"
	"github.com/finance-tracker/budget/internal/domain/entity"
	"github.com/finance-tracker/budget/internal/integration/persistence"
)

type sequenceIDs struct{ next int }

func (s *sequenceIDs) NewID() string {
	s.next++
	return fmt.Sprintf("exp-%d", s.next)
}

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	ledger, err := NewLedger(context.Background(), persistence.NewMemoryStorage(), &sequenceIDs{})
	require.NoError(t, err)
	return ledger
}

func mustAdd(t *testing.T, l *Ledger, amount, category, description, date string) *entity.Expense {
	t.Helper()
	e, err := l.Add(context.Background(), AddExpenseInput{
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
		Description: description,
		Date:        date,
	})
	require.NoError(t, err)
	return e
}

func TestLedger_TotalsAndCategories(t *testing.T) {
	ledger := newTestLedger(t)
	mustAdd(t, ledger, "100", "Food", "market", "2024-03-01")
	mustAdd(t, ledger, "200", "Food", "restaurant", "2024-03-15")
	mustAdd(t, ledger, "300", "Transport", "bus pass", "2024-03-20")

	assert.True(t, decimal.NewFromInt(600).Equal(ledger.TotalByPeriod(entity.Period("2024-03"))))
	assert.True(t, decimal.NewFromInt(600).Equal(ledger.TotalByPeriod(entity.AllTime)))
	assert.True(t, ledger.TotalByPeriod(entity.Period("2024-04")).IsZero())

	byCategory := ledger.ByCategory(entity.Period("2024-03"))
	require.Len(t, byCategory, 2)
	assert.True(t, decimal.NewFromInt(300).Equal(byCategory["Food"]))
	assert.True(t, decimal.NewFromInt(300).Equal(byCategory["Transport"]))

	assert.Empty(t, ledger.ByCategory(entity.Period("2023-12")))
}

func TestLedger_ByPeriodUsesDatePrefix(t *testing.T) {
	ledger := newTestLedger(t)
	mustAdd(t, ledger, "10", "Food", "", "2024-03-31")
	mustAdd(t, ledger, "20", "Food", "", "2024-04-01")
	mustAdd(t, ledger, "30", "Food", "", "2023-03-05")

	march := ledger.ByPeriod(entity.Period("2024-03"))
	require.Len(t, march, 1)
	assert.Equal(t, "2024-03-31", march[0].Date)

	assert.Len(t, ledger.ByPeriod(entity.Period("2024")), 2)
	assert.Len(t, ledger.ByPeriod(entity.AllTime), 3)
}

func TestLedger_AddAssignsDistinctIDs(t *testing.T) {
	ledger := newTestLedger(t)
	first := mustAdd(t, ledger, "1", "Food", "", "2024-01-01")
	second := mustAdd(t, ledger, "1", "Food", "", "2024-01-01")

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	found, ok := ledger.ByID(second.ID)
	require.True(t, ok)
	assert.Equal(t, *second, found)

	_, ok = ledger.ByID("missing")
	assert.False(t, ok)
}

func TestLedger_ReloadsFromStorage(t *testing.T) {
	ctx := context.Background()
	gateway := persistence.NewMemoryStorage()

	ledger, err := NewLedger(ctx, gateway, &sequenceIDs{})
	require.NoError(t, err)
	added := mustAdd(t, ledger, "42.50", "Health", "pharmacy", "2024-05-02")

	reloaded, err := NewLedger(ctx, gateway, &sequenceIDs{next: 100})
	require.NoError(t, err)

	all := reloaded.All()
	require.Len(t, all, 1)
	assert.Equal(t, added.ID, all[0].ID)
	assert.True(t, added.Amount.Equal(all[0].Amount))
	assert.Equal(t, "Health", all[0].Category)
	assert.Equal(t, "pharmacy", all[0].Description)
	assert.Equal(t, "2024-05-02", all[0].Date)
}

func TestLedger_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes only the matching expense", func(t *testing.T) {
		ledger := newTestLedger(t)
		keep := mustAdd(t, ledger, "5", "Food", "", "2024-01-01")
		drop := mustAdd(t, ledger, "7", "Food", "", "2024-01-02")

		require.NoError(t, ledger.Remove(ctx, drop.ID))

		all := ledger.All()
		require.Len(t, all, 1)
		assert.Equal(t, keep.ID, all[0].ID)
	})

	t.Run("unknown id still persists the unchanged ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock.NewMockStorageGateway(ctrl)
		gateway.EXPECT().Get(ctx, StorageKey).
			Return([]byte(`[{"id":"1","amount":"10","category":"Food","description":"","date":"2024-01-01"}]`), true, nil)
		gateway.EXPECT().Set(ctx, StorageKey, gomock.Any()).Return(nil).Times(1)

		ledger, err := NewLedger(ctx, gateway, &sequenceIDs{})
		require.NoError(t, err)

		require.NoError(t, ledger.Remove(ctx, "nope"))
		assert.Len(t, ledger.All(), 1)
	})

	t.Run("storage failure keeps the expense", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := mock.NewMockStorageGateway(ctrl)
		gateway.EXPECT().Get(ctx, StorageKey).
			Return([]byte(`[{"id":"1","amount":"10","category":"Food","description":"","date":"2024-01-01"}]`), true, nil)
		gateway.EXPECT().Set(ctx, StorageKey, gomock.Any()).Return(errors.New("disk full"))

		ledger, err := NewLedger(ctx, gateway, &sequenceIDs{})
		require.NoError(t, err)

		assert.Error(t, ledger.Remove(ctx, "1"))
		assert.Len(t, ledger.All(), 1)
	})
}

func TestLedger_AddStorageFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockStorageGateway(ctrl)
	gateway.EXPECT().Get(ctx, StorageKey).Return(nil, false, nil)
	gateway.EXPECT().Set(ctx, StorageKey, gomock.Any()).Return(errors.New("unreachable"))

	ledger, err := NewLedger(ctx, gateway, &sequenceIDs{})
	require.NoError(t, err)

	_, err = ledger.Add(ctx, AddExpenseInput{Amount: decimal.NewFromInt(1), Category: "Food", Date: "2024-01-01"})
	assert.Error(t, err)
	assert.Empty(t, ledger.All())
}

func TestLedger_NewLedgerGatewayError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockStorageGateway(ctrl)
	gateway.EXPECT().Get(ctx, StorageKey).Return(nil, false, errors.New("connection refused"))

	_, err := NewLedger(ctx, gateway, &sequenceIDs{})
	assert.Error(t, err)
}

func TestLedger_Filter(t *testing.T) {
	ledger := newTestLedger(t)
	mustAdd(t, ledger, "12", "Food", "Weekly MARKET run", "2024-02-03")
	mustAdd(t, ledger, "40", "Leisure", "cinema", "2024-02-10")
	mustAdd(t, ledger, "8", "Food", "bakery", "2024-03-01")

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{name: "no filter", filter: Filter{}, want: 3},
		{name: "period", filter: Filter{Period: "2024-02"}, want: 2},
		{name: "category", filter: Filter{Category: "Food"}, want: 2},
		{name: "search is case-insensitive", filter: Filter{Search: "market"}, want: 1},
		{name: "search matches category", filter: Filter{Search: "leis"}, want: 1},
		{name: "combined", filter: Filter{Period: "2024-02", Category: "Food", Search: "run"}, want: 1},
		{name: "no match", filter: Filter{Category: "Travel"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.Filter(tt.filter)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestLedger_SnapshotsAreIsolated(t *testing.T) {
	ledger := newTestLedger(t)
	mustAdd(t, ledger, "3", "Food", "", "2024-01-01")

	snapshot := ledger.All()
	snapshot[0].Category = "Changed"
	mustAdd(t, ledger, "4", "Food", "", "2024-01-02")

	assert.Len(t, snapshot, 1)
	assert.Equal(t, "Food", ledger.All()[0].Category)
}

func TestLedger_PersistsAmountsAsNumbers(t *testing.T) {
	ctx := context.Background()
	gateway := persistence.NewMemoryStorage()
	ledger, err := NewLedger(ctx, gateway, &sequenceIDs{})
	require.NoError(t, err)

	_, err = ledger.Add(ctx, AddExpenseInput{
		Amount:   decimal.RequireFromString("100.5"),
		Category: "Food",
		Date:     "2024-03-01",
	})
	require.NoError(t, err)

	data, found, err := gateway.Get(ctx, StorageKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, string(data), `"amount":100.5`)

	reloaded, err := NewLedger(ctx, gateway, &sequenceIDs{})
	require.NoError(t, err)
	e, ok := reloaded.ByID("exp-1")
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("100.5").Equal(e.Amount))
}
