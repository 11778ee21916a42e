package screens

import (
	"fmt"
	"strconv"
	"strings"

	"autorepair/navigator"
	"autorepair/store"
	"autorepair/utils"
)

// Services opens repair orders against an existing client username.
func Services(st *store.Store) navigator.Handler {
	return func(f navigator.Form) navigator.Outcome {
		if f["action"] == "close" {
			return navigator.Outcome{Event: navigator.EvClose}
		}

		price, err := utils.ParseAmount(f["price"])
		if err != nil {
			return stay("Price must be a valid amount.")
		}
		date, err := utils.ParseDate(f["date"])
		if err != nil {
			return stay("Date must be YYYY-MM-DD.")
		}

		id, err := st.CreateService(store.NewService{
			ClientUsername: strings.TrimSpace(f["client"]),
			Description:    strings.TrimSpace(f["description"]),
			Price:          price,
			Date:           date,
		})
		if err != nil {
			return stay(describe(err))
		}
		return stay(fmt.Sprintf("Service order #%d opened.", id))
	}
}

// Invoices bills existing service orders.
func Invoices(st *store.Store) navigator.Handler {
	return func(f navigator.Form) navigator.Outcome {
		if f["action"] == "close" {
			return navigator.Outcome{Event: navigator.EvClose}
		}

		sid, err := strconv.Atoi(strings.TrimSpace(f["service"]))
		if err != nil || sid < 1 {
			return stay("Service ID must be a positive number.")
		}
		total, err := utils.ParseAmount(f["total"])
		if err != nil {
			return stay("Total must be a valid amount.")
		}
		date, err := utils.ParseDate(f["date"])
		if err != nil {
			return stay("Date must be YYYY-MM-DD.")
		}

		id, err := st.CreateInvoice(store.NewInvoice{
			ServiceID: uint(sid),
			Total:     total,
			Date:      date,
			Paid:      utils.ParseBool(f["paid"]),
		})
		if err != nil {
			return stay(describe(err))
		}
		return stay(fmt.Sprintf("Invoice #%d generated.", id))
	}
}
