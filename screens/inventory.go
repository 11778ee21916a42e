package screens

import (
	"fmt"
	"strconv"
	"strings"

	"autorepair/navigator"
	"autorepair/store"
	"autorepair/utils"
)

// Parts adds inventory parts. The screen stays open after each add so the
// operator can keep going.
func Parts(st *store.Store) navigator.Handler {
	return func(f navigator.Form) navigator.Outcome {
		if f["action"] == "close" {
			return navigator.Outcome{Event: navigator.EvClose}
		}

		qty, err := strconv.Atoi(strings.TrimSpace(f["quantity"]))
		if err != nil {
			return stay("Quantity must be a whole number.")
		}
		price, err := utils.ParseAmount(f["price"])
		if err != nil {
			return stay("Price must be a valid amount.")
		}

		id, err := st.CreatePart(store.NewPart{
			Name:        strings.TrimSpace(f["name"]),
			SKU:         strings.TrimSpace(f["sku"]),
			Quantity:    qty,
			UnitPrice:   price,
			Description: strings.TrimSpace(f["description"]),
		})
		if err != nil {
			return stay(describe(err))
		}
		return stay(fmt.Sprintf("Part #%d added.", id))
	}
}

// Tools adds workshop tools, same shape as Parts but keyed on code.
func Tools(st *store.Store) navigator.Handler {
	return func(f navigator.Form) navigator.Outcome {
		if f["action"] == "close" {
			return navigator.Outcome{Event: navigator.EvClose}
		}

		avail, err := strconv.Atoi(strings.TrimSpace(f["available"]))
		if err != nil {
			return stay("Available count must be a whole number.")
		}

		id, err := st.CreateTool(store.NewTool{
			Name:        strings.TrimSpace(f["name"]),
			Code:        strings.TrimSpace(f["code"]),
			Available:   avail,
			Description: strings.TrimSpace(f["description"]),
		})
		if err != nil {
			return stay(describe(err))
		}
		return stay(fmt.Sprintf("Tool #%d added.", id))
	}
}
