// Package dashboard computes the derived indicators shown on the dashboard
// and the reports screen. It reads the store and owns no state of its own;
// every render recomputes from scratch.
package dashboard

import (
	"github.com/shopspring/decimal"

	"autorepair/store"
)

const (
	// reorderThreshold is the stock level at or below which a part is
	// flagged for replenishment.
	reorderThreshold = 5
	lowStockLimit    = 5
)

// StockAlert is one line of the low-stock list.
type StockAlert struct {
	Name         string
	Quantity     int
	NeedsReorder bool
}

// Overview holds the quick stats rendered at the top of the dashboard.
type Overview struct {
	Users    int64
	Parts    int64
	Tools    int64
	LowStock []StockAlert
	// StockNote is set when there is nothing to reorder: "stock healthy"
	// when parts exist but none are low, "no parts registered" otherwise.
	StockNote string
}

// Revenue holds the report figures: counts and sums over service prices
// (potential revenue) and invoice totals (billed revenue). Empty collections
// sum to zero.
type Revenue struct {
	ServiceCount int64
	ServiceTotal decimal.Decimal
	InvoiceCount int64
	InvoiceTotal decimal.Decimal
}

type Aggregator struct {
	store *store.Store
}

func New(st *store.Store) *Aggregator {
	return &Aggregator{store: st}
}

// Overview computes the entity counts and the low-stock alert list.
func (a *Aggregator) Overview() (Overview, error) {
	var (
		ov  Overview
		err error
	)
	if ov.Users, err = a.store.CountUsers(); err != nil {
		return Overview{}, err
	}
	if ov.Parts, err = a.store.CountParts(); err != nil {
		return Overview{}, err
	}
	if ov.Tools, err = a.store.CountTools(); err != nil {
		return Overview{}, err
	}

	parts, err := a.store.LowestStockParts(lowStockLimit)
	if err != nil {
		return Overview{}, err
	}
	if len(parts) == 0 {
		ov.StockNote = "no parts registered"
		return ov, nil
	}

	anyLow := false
	for _, p := range parts {
		alert := StockAlert{
			Name:         p.Name,
			Quantity:     p.Quantity,
			NeedsReorder: p.Quantity <= reorderThreshold,
		}
		anyLow = anyLow || alert.NeedsReorder
		ov.LowStock = append(ov.LowStock, alert)
	}
	if !anyLow {
		ov.StockNote = "stock healthy"
	}
	return ov, nil
}

// Revenue computes the report aggregates.
func (a *Aggregator) Revenue() (Revenue, error) {
	var (
		rv  Revenue
		err error
	)
	if rv.ServiceCount, rv.ServiceTotal, err = a.store.ServiceRevenue(); err != nil {
		return Revenue{}, err
	}
	if rv.InvoiceCount, rv.InvoiceTotal, err = a.store.InvoiceRevenue(); err != nil {
		return Revenue{}, err
	}
	return rv, nil
}
