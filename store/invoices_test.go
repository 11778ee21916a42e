package store_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorepair/store"
)

func TestCreateInvoiceUnknownService(t *testing.T) {
	st := newTestStore(t)

	_, err := st.CreateInvoice(store.NewInvoice{ServiceID: 99, Total: decimal.NewFromInt(200)})
	require.ErrorIs(t, err, store.ErrNotFound)

	invoices, err := st.ListInvoices()
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestCreateInvoiceNegativeTotal(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Seed())

	svcID, err := st.CreateService(store.NewService{ClientUsername: "cliente1"})
	require.NoError(t, err)

	_, err = st.CreateInvoice(store.NewInvoice{ServiceID: svcID, Total: decimal.NewFromInt(-1)})
	require.ErrorIs(t, err, store.ErrValidation)
}

func TestCreateInvoiceAndRevenue(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Seed())

	count, total, err := st.InvoiceRevenue()
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.True(t, total.IsZero())

	svcID, err := st.CreateService(store.NewService{ClientUsername: "cliente1", Price: decimal.NewFromInt(200)})
	require.NoError(t, err)

	id, err := st.CreateInvoice(store.NewInvoice{ServiceID: svcID, Total: decimal.NewFromFloat(199.9), Paid: true})
	require.NoError(t, err)
	assert.NotZero(t, id)

	invoices, err := st.ListInvoices()
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, svcID, invoices[0].ServiceID)
	assert.True(t, invoices[0].Paid)

	count, total, err = st.InvoiceRevenue()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	assert.True(t, total.Equal(decimal.NewFromFloat(199.9)), "got %s", total)
}
