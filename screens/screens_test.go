package screens_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autorepair/auth"
	"autorepair/config"
	"autorepair/models"
	"autorepair/navigator"
	"autorepair/screens"
	"autorepair/store"
)

type fixture struct {
	store *store.Store
	gate  *auth.Gate
	nav   *navigator.Navigator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := config.Open(config.Config{DBPath: ":memory:"})
	require.NoError(t, err)
	st := store.New(db, store.PlainVerifier{})
	require.NoError(t, st.Seed())

	gate := auth.NewGate(st)
	nav := navigator.New(gate, zerolog.Nop())
	screens.RegisterAll(nav, st, gate, "logo.png")
	return &fixture{store: st, gate: gate, nav: nav}
}

func (fx *fixture) open(t *testing.T, ev navigator.Event) {
	t.Helper()
	_, err := fx.nav.Trigger(ev)
	require.NoError(t, err)
}

// logs in as admin and lands on the dashboard.
func (fx *fixture) loginAdmin(t *testing.T) {
	t.Helper()
	fx.open(t, navigator.EvGoLogin)
	out, err := fx.nav.Dispatch(navigator.Form{"username": "admin", "password": "admin123"})
	require.NoError(t, err)
	require.Equal(t, navigator.EvLoggedIn, out.Event)
	require.Equal(t, navigator.Dashboard, fx.nav.Current())
}

func TestLoginRetriesOnBadCredentials(t *testing.T) {
	fx := newFixture(t)
	fx.open(t, navigator.EvGoLogin)

	out, err := fx.nav.Dispatch(navigator.Form{"username": "admin", "password": "wrong"})
	require.NoError(t, err)
	assert.Equal(t, navigator.EvRetry, out.Event)
	assert.Equal(t, "Invalid username or password.", out.Message)
	assert.Equal(t, navigator.Login, fx.nav.Current())
	assert.Nil(t, fx.gate.Current())
}

func TestLoginSucceeds(t *testing.T) {
	fx := newFixture(t)
	fx.loginAdmin(t)

	require.NotNil(t, fx.gate.Current())
	assert.True(t, fx.gate.Current().IsAdmin())
}

func TestLoginBackReturnsToWelcome(t *testing.T) {
	fx := newFixture(t)
	fx.open(t, navigator.EvGoLogin)

	_, err := fx.nav.Dispatch(navigator.Form{"action": "back"})
	require.NoError(t, err)
	assert.Equal(t, navigator.Welcome, fx.nav.Current())
}

func TestRegisterClientFlow(t *testing.T) {
	fx := newFixture(t)
	fx.open(t, navigator.EvGoRegister)

	out, err := fx.nav.Dispatch(navigator.Form{
		"username": "cliente4",
		"password": "cli456",
		"fullname": "Ana Lima",
		"email":    "ana@mail.com",
		"phone":    "11922223333",
	})
	require.NoError(t, err)
	assert.Equal(t, navigator.EvRegistered, out.Event)
	assert.Equal(t, navigator.Login, fx.nav.Current())

	user, err := fx.store.Authenticate("cliente4", "cli456")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleClient, user.Role)
}

func TestRegisterDuplicateStays(t *testing.T) {
	fx := newFixture(t)
	fx.open(t, navigator.EvGoRegister)

	out, err := fx.nav.Dispatch(navigator.Form{
		"username": "cliente1",
		"password": "x",
		"fullname": "Someone",
		"email":    "x@mail.com",
		"phone":    "119",
	})
	require.NoError(t, err)
	assert.Equal(t, navigator.EvNone, out.Event)
	assert.Contains(t, out.Message, "already in use")
	assert.Equal(t, navigator.Register, fx.nav.Current())
}

func TestPartsScreenAddAndClose(t *testing.T) {
	fx := newFixture(t)
	fx.loginAdmin(t)
	fx.open(t, navigator.EvOpenParts)

	out, err := fx.nav.Dispatch(navigator.Form{
		"name":     "Filtro de Ar",
		"sku":      "P-AIR-003",
		"quantity": "7",
		"price":    "25,90",
	})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "added")
	assert.Equal(t, navigator.Parts, fx.nav.Current())

	out, err = fx.nav.Dispatch(navigator.Form{
		"name":     "Correia",
		"sku":      "P-BLT-001",
		"quantity": "abc",
		"price":    "10",
	})
	require.NoError(t, err)
	assert.Equal(t, "Quantity must be a whole number.", out.Message)

	_, err = fx.nav.Dispatch(navigator.Form{"action": "close"})
	require.NoError(t, err)
	assert.Equal(t, navigator.Dashboard, fx.nav.Current())
}

func TestToolsScreenAdd(t *testing.T) {
	fx := newFixture(t)
	fx.loginAdmin(t)
	fx.open(t, navigator.EvOpenTools)

	out, err := fx.nav.Dispatch(navigator.Form{
		"name":      "Torquímetro",
		"code":      "T-TRQ-003",
		"available": "2",
	})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "added")

	n, err := fx.store.CountTools()
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestUsersScreenRemovals(t *testing.T) {
	fx := newFixture(t)
	fx.loginAdmin(t)
	fx.open(t, navigator.EvOpenUsers)

	// removing yourself is refused
	out, err := fx.nav.Dispatch(navigator.Form{"username": "admin"})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "Not allowed")

	out, err = fx.nav.Dispatch(navigator.Form{"username": "cliente1"})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "removed")

	user, err := fx.store.Authenticate("cliente1", "cli123")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestServicesScreenUnknownClient(t *testing.T) {
	fx := newFixture(t)
	fx.loginAdmin(t)
	fx.open(t, navigator.EvOpenServices)

	out, err := fx.nav.Dispatch(navigator.Form{
		"client": "ghost",
		"price":  "100",
	})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "Not found")
}

func TestInvoiceScreenValidation(t *testing.T) {
	fx := newFixture(t)
	fx.loginAdmin(t)
	fx.open(t, navigator.EvOpenInvoices)

	out, err := fx.nav.Dispatch(navigator.Form{"service": "zero", "total": "10"})
	require.NoError(t, err)
	assert.Equal(t, "Service ID must be a positive number.", out.Message)

	out, err = fx.nav.Dispatch(navigator.Form{"service": "99", "total": "10"})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "Not found")
}

func TestServiceThenInvoice(t *testing.T) {
	fx := newFixture(t)
	fx.loginAdmin(t)

	fx.open(t, navigator.EvOpenServices)
	out, err := fx.nav.Dispatch(navigator.Form{
		"client":      "cliente2",
		"description": "alinhamento",
		"price":       "180,00",
		"date":        "2026-08-30",
	})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "opened")

	_, err = fx.nav.Dispatch(navigator.Form{"action": "close"})
	require.NoError(t, err)

	fx.open(t, navigator.EvOpenInvoices)
	out, err = fx.nav.Dispatch(navigator.Form{
		"service": "1",
		"total":   "180,00",
		"paid":    "sim",
	})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "generated")

	invoices, err := fx.store.ListInvoices()
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.True(t, invoices[0].Paid)
}

func TestSettingsScreen(t *testing.T) {
	fx := newFixture(t)
	fx.loginAdmin(t)
	fx.open(t, navigator.EvOpenSettings)

	out, err := fx.nav.Dispatch(navigator.Form{})
	require.NoError(t, err)
	assert.Equal(t, "Nothing changed.", out.Message)

	out, err = fx.nav.Dispatch(navigator.Form{"logo": "does-not-exist.png"})
	require.NoError(t, err)
	assert.Contains(t, out.Message, "Could not replace logo")

	_, err = fx.nav.Dispatch(navigator.Form{"action": "close"})
	require.NoError(t, err)
	assert.Equal(t, navigator.Dashboard, fx.nav.Current())
}
