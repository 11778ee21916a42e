package store_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorepair/store"
)

func TestCreatePartDuplicateSKU(t *testing.T) {
	st := newTestStore(t)

	part := store.NewPart{Name: "Filtro de Ar", SKU: "P-AIR-001", Quantity: 3, UnitPrice: decimal.NewFromInt(25)}
	_, err := st.CreatePart(part)
	require.NoError(t, err)

	_, err = st.CreatePart(part)
	require.ErrorIs(t, err, store.ErrDuplicateKey)

	n, err := st.CountParts()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestCreatePartValidation(t *testing.T) {
	st := newTestStore(t)

	_, err := st.CreatePart(store.NewPart{Name: "", SKU: "P-X"})
	require.ErrorIs(t, err, store.ErrValidation)

	_, err = st.CreatePart(store.NewPart{Name: "Correia", SKU: "P-BLT-001", Quantity: -1})
	require.ErrorIs(t, err, store.ErrValidation)

	_, err = st.CreatePart(store.NewPart{Name: "Correia", SKU: "P-BLT-001", UnitPrice: decimal.NewFromInt(-5)})
	require.ErrorIs(t, err, store.ErrValidation)

	n, err := st.CountParts()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListPartsInsertionOrder(t *testing.T) {
	st := newTestStore(t)

	for i, name := range []string{"Vela", "Correia", "Filtro"} {
		_, err := st.CreatePart(store.NewPart{Name: name, SKU: fmt.Sprintf("P-%03d", i), Quantity: 1})
		require.NoError(t, err)
	}

	parts, err := st.ListParts()
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, "Vela", parts[0].Name)
	assert.Equal(t, "Filtro", parts[2].Name)
}

func TestLowestStockParts(t *testing.T) {
	st := newTestStore(t)

	for i, qty := range []int{2, 3, 10, 5, 0, 100} {
		_, err := st.CreatePart(store.NewPart{
			Name:     fmt.Sprintf("part-%d", qty),
			SKU:      fmt.Sprintf("P-%03d", i),
			Quantity: qty,
		})
		require.NoError(t, err)
	}

	lowest, err := st.LowestStockParts(5)
	require.NoError(t, err)
	require.Len(t, lowest, 5)

	got := make([]int, 0, len(lowest))
	for _, p := range lowest {
		got = append(got, p.Quantity)
	}
	assert.Equal(t, []int{0, 2, 3, 5, 10}, got)
}
