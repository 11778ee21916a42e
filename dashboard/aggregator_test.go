package dashboard_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorepair/config"
	"autorepair/dashboard"
	"autorepair/store"
)

func newTestAggregator(t *testing.T) (*dashboard.Aggregator, *store.Store) {
	t.Helper()
	db, err := config.Open(config.Config{DBPath: ":memory:"})
	require.NoError(t, err)
	st := store.New(db, store.PlainVerifier{})
	return dashboard.New(st), st
}

func addParts(t *testing.T, st *store.Store, quantities ...int) {
	t.Helper()
	for i, qty := range quantities {
		_, err := st.CreatePart(store.NewPart{
			Name:     fmt.Sprintf("part-%d", i),
			SKU:      fmt.Sprintf("P-%03d", i),
			Quantity: qty,
		})
		require.NoError(t, err)
	}
}

func TestOverviewEmptyStore(t *testing.T) {
	agg, _ := newTestAggregator(t)

	ov, err := agg.Overview()
	require.NoError(t, err)
	assert.Zero(t, ov.Users)
	assert.Zero(t, ov.Parts)
	assert.Zero(t, ov.Tools)
	assert.Empty(t, ov.LowStock)
	assert.Equal(t, "no parts registered", ov.StockNote)
}

func TestOverviewLowStock(t *testing.T) {
	agg, st := newTestAggregator(t)
	addParts(t, st, 2, 3, 10, 5, 0, 100)

	ov, err := agg.Overview()
	require.NoError(t, err)
	assert.EqualValues(t, 6, ov.Parts)
	require.Len(t, ov.LowStock, 5)

	quantities := make([]int, 0, 5)
	flagged := make([]bool, 0, 5)
	for _, a := range ov.LowStock {
		quantities = append(quantities, a.Quantity)
		flagged = append(flagged, a.NeedsReorder)
	}
	assert.Equal(t, []int{0, 2, 3, 5, 10}, quantities)
	assert.Equal(t, []bool{true, true, true, true, false}, flagged)
	assert.Empty(t, ov.StockNote)
}

func TestOverviewHealthyStock(t *testing.T) {
	agg, st := newTestAggregator(t)
	addParts(t, st, 10, 100)

	ov, err := agg.Overview()
	require.NoError(t, err)
	require.Len(t, ov.LowStock, 2)
	for _, a := range ov.LowStock {
		assert.False(t, a.NeedsReorder)
	}
	assert.Equal(t, "stock healthy", ov.StockNote)
}

func TestOverviewCountsSeed(t *testing.T) {
	agg, st := newTestAggregator(t)
	require.NoError(t, st.Seed())

	ov, err := agg.Overview()
	require.NoError(t, err)
	assert.EqualValues(t, 4, ov.Users)
	assert.EqualValues(t, 2, ov.Parts)
	assert.EqualValues(t, 2, ov.Tools)
}

func TestRevenueEmptyStore(t *testing.T) {
	agg, _ := newTestAggregator(t)

	rv, err := agg.Revenue()
	require.NoError(t, err)
	assert.Zero(t, rv.ServiceCount)
	assert.Zero(t, rv.InvoiceCount)
	assert.True(t, rv.ServiceTotal.IsZero())
	assert.True(t, rv.InvoiceTotal.IsZero())
}

func TestRevenueSums(t *testing.T) {
	agg, st := newTestAggregator(t)
	require.NoError(t, st.Seed())

	svcID, err := st.CreateService(store.NewService{ClientUsername: "cliente1", Price: decimal.NewFromInt(300)})
	require.NoError(t, err)
	_, err = st.CreateService(store.NewService{ClientUsername: "cliente2", Price: decimal.NewFromFloat(150.5)})
	require.NoError(t, err)
	_, err = st.CreateInvoice(store.NewInvoice{ServiceID: svcID, Total: decimal.NewFromInt(300), Paid: true})
	require.NoError(t, err)

	rv, err := agg.Revenue()
	require.NoError(t, err)
	assert.EqualValues(t, 2, rv.ServiceCount)
	assert.True(t, rv.ServiceTotal.Equal(decimal.NewFromFloat(450.5)), "got %s", rv.ServiceTotal)
	assert.EqualValues(t, 1, rv.InvoiceCount)
	assert.True(t, rv.InvoiceTotal.Equal(decimal.NewFromInt(300)), "got %s", rv.InvoiceTotal)
}
