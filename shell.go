package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"autorepair/assets"
	"autorepair/auth"
	"autorepair/config"
	"autorepair/currency"
	"autorepair/dashboard"
	"autorepair/navigator"
	"autorepair/screens"
	"autorepair/store"
)

// shell is the thin terminal renderer in front of the navigator. All the
// behavior lives behind it; this file only draws screens and collects input.
type shell struct {
	nav   *navigator.Navigator
	store *store.Store
	gate  *auth.Gate
	agg   *dashboard.Aggregator
	cfg   config.Config
	log   zerolog.Logger
	in    *bufio.Scanner
	out   io.Writer
	quit  bool
}

func newShell(nav *navigator.Navigator, st *store.Store, gate *auth.Gate,
	agg *dashboard.Aggregator, cfg config.Config, log zerolog.Logger,
	in io.Reader, out io.Writer) *shell {
	return &shell{
		nav:   nav,
		store: st,
		gate:  gate,
		agg:   agg,
		cfg:   cfg,
		log:   log,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

func (s *shell) run() {
	for !s.quit {
		switch s.nav.Current() {
		case navigator.Welcome:
			s.welcome()
		case navigator.Login:
			s.login()
		case navigator.Register:
			s.register()
		case navigator.Dashboard:
			s.dashboard()
		case navigator.Parts:
			s.parts()
		case navigator.Tools:
			s.tools()
		case navigator.Users:
			s.users()
		case navigator.Services:
			s.services()
		case navigator.Invoices:
			s.invoices()
		case navigator.Reports:
			s.reports()
		case navigator.Flowchart:
			s.static("Flowchart", screens.FlowchartText)
		case navigator.Wireframe:
			s.static("Wireframe", screens.WireframeText)
		case navigator.About:
			s.static("About", screens.AboutText)
		case navigator.Help:
			s.static("Help", screens.HelpText)
		case navigator.Settings:
			s.settings()
		}
	}
}

func (s *shell) prompt(label string) string {
	fmt.Fprintf(s.out, "%s: ", label)
	if !s.in.Scan() {
		s.quit = true
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

// dispatch feeds a form into the current screen's handler and prints the
// resulting message.
func (s *shell) dispatch(form navigator.Form) {
	out, err := s.nav.Dispatch(form)
	if out.Message != "" {
		fmt.Fprintln(s.out, out.Message)
	}
	if err != nil && !errors.Is(err, store.ErrForbidden) {
		s.log.Error().Err(err).Msg("navigation failed")
	}
}

// trigger fires a plain navigation event and surfaces guard refusals as
// warnings.
func (s *shell) trigger(ev navigator.Event) {
	if _, err := s.nav.Trigger(ev); err != nil {
		if errors.Is(err, store.ErrForbidden) {
			fmt.Fprintln(s.out, "! Only administrators can open user management.")
			return
		}
		s.log.Error().Err(err).Msg("navigation failed")
	}
}

func (s *shell) header(title string) {
	fmt.Fprintf(s.out, "\n=== Auto Repair — %s ===\n", title)
}

func (s *shell) welcome() {
	s.header("Welcome")
	logo := assets.Load(s.cfg.LogoPath, 360, 150)
	b := logo.Bounds()
	fmt.Fprintf(s.out, "[logo %dx%d]\n%s\n", b.Dx(), b.Dy(), screens.WelcomeText)
	fmt.Fprintln(s.out, " 1. Login\n 2. Register client\n 0. Quit")

	switch s.prompt("Choice") {
	case "1":
		s.trigger(navigator.EvGoLogin)
	case "2":
		s.trigger(navigator.EvGoRegister)
	case "0":
		s.quit = true
	}
}

func (s *shell) login() {
	s.header("Login")
	username := s.prompt("Username (blank to go back)")
	if s.quit {
		return
	}
	if username == "" {
		s.dispatch(navigator.Form{"action": "back"})
		return
	}
	password := s.prompt("Password")
	s.dispatch(navigator.Form{"username": username, "password": password})
}

func (s *shell) register() {
	s.header("Register client")
	username := s.prompt("Username (blank to go back)")
	if s.quit {
		return
	}
	if username == "" {
		s.dispatch(navigator.Form{"action": "back"})
		return
	}
	s.dispatch(navigator.Form{
		"username": username,
		"password": s.prompt("Password"),
		"fullname": s.prompt("Full name"),
		"email":    s.prompt("Email"),
		"phone":    s.prompt("Phone"),
		"photo":    s.prompt("Photo path (optional)"),
	})
}

func (s *shell) dashboard() {
	s.header("Dashboard")
	if sess := s.gate.Current(); sess != nil {
		fmt.Fprintf(s.out, "User: %s (%s)\n", sess.User.FullName, sess.User.Role)
	} else {
		fmt.Fprintln(s.out, "User: guest")
	}

	ov, err := s.agg.Overview()
	if err != nil {
		s.log.Error().Err(err).Msg("dashboard aggregation failed")
	} else {
		fmt.Fprintf(s.out, "Parts: %d | Tools: %d | Users: %d\n", ov.Parts, ov.Tools, ov.Users)
		fmt.Fprintln(s.out, "Suggestions and alerts:")
		for _, a := range ov.LowStock {
			if a.NeedsReorder {
				fmt.Fprintf(s.out, "  Reorder part %q (stock: %d)\n", a.Name, a.Quantity)
			}
		}
		if ov.StockNote != "" {
			fmt.Fprintf(s.out, "  %s\n", ov.StockNote)
		}
	}

	fmt.Fprintln(s.out, ` 1. Parts management      5. Invoicing       9. About / contact
 2. Tools management     6. Reports        10. Settings
 3. User management      7. Flowchart      11. Help
 4. Service orders       8. Wireframe      12. Logout`)

	menu := map[string]navigator.Event{
		"1": navigator.EvOpenParts, "2": navigator.EvOpenTools,
		"3": navigator.EvOpenUsers, "4": navigator.EvOpenServices,
		"5": navigator.EvOpenInvoices, "6": navigator.EvOpenReports,
		"7": navigator.EvOpenFlowchart, "8": navigator.EvOpenWireframe,
		"9": navigator.EvOpenAbout, "10": navigator.EvOpenSettings,
		"11": navigator.EvOpenHelp, "12": navigator.EvLogout,
	}
	if ev, ok := menu[s.prompt("Choice")]; ok {
		s.trigger(ev)
	}
}

func (s *shell) parts() {
	s.header("Parts management")
	parts, err := s.store.ListParts()
	if err != nil {
		s.log.Error().Err(err).Msg("listing parts failed")
	}
	fmt.Fprintf(s.out, "%-24s %-12s %6s %14s\n", "NAME", "SKU", "QTY", "PRICE")
	for _, p := range parts {
		fmt.Fprintf(s.out, "%-24s %-12s %6d %14s\n", p.Name, p.SKU, p.Quantity, currency.Format(p.UnitPrice))
	}

	if s.prompt("[a]dd part or [c]lose") != "a" {
		s.dispatch(navigator.Form{"action": "close"})
		return
	}
	s.dispatch(navigator.Form{
		"name":        s.prompt("Name"),
		"sku":         s.prompt("SKU"),
		"quantity":    s.prompt("Quantity"),
		"price":       s.prompt("Unit price"),
		"description": s.prompt("Description"),
	})
}

func (s *shell) tools() {
	s.header("Tools management")
	tools, err := s.store.ListTools()
	if err != nil {
		s.log.Error().Err(err).Msg("listing tools failed")
	}
	fmt.Fprintf(s.out, "%-24s %-12s %9s\n", "NAME", "CODE", "AVAILABLE")
	for _, t := range tools {
		fmt.Fprintf(s.out, "%-24s %-12s %9d\n", t.Name, t.Code, t.Available)
	}

	if s.prompt("[a]dd tool or [c]lose") != "a" {
		s.dispatch(navigator.Form{"action": "close"})
		return
	}
	s.dispatch(navigator.Form{
		"name":        s.prompt("Name"),
		"code":        s.prompt("Code"),
		"available":   s.prompt("Available count"),
		"description": s.prompt("Description"),
	})
}

func (s *shell) users() {
	s.header("User management")
	users, err := s.store.ListUsers()
	if err != nil {
		s.log.Error().Err(err).Msg("listing users failed")
	}
	fmt.Fprintf(s.out, "%-16s %-28s %-14s %-8s\n", "USERNAME", "EMAIL", "PHONE", "ROLE")
	for _, u := range users {
		fmt.Fprintf(s.out, "%-16s %-28s %-14s %-8s\n", u.Username, u.Email, u.Phone, u.Role)
	}

	if s.prompt("[r]emove user or [c]lose") != "r" {
		s.dispatch(navigator.Form{"action": "close"})
		return
	}
	s.dispatch(navigator.Form{"username": s.prompt("Username to remove")})
}

func (s *shell) services() {
	s.header("Service orders")
	rows, err := s.store.ListServices()
	if err != nil {
		s.log.Error().Err(err).Msg("listing services failed")
	}
	fmt.Fprintf(s.out, "%4s %-16s %14s %-12s %-8s\n", "ID", "CLIENT", "PRICE", "DATE", "STATUS")
	for _, r := range rows {
		fmt.Fprintf(s.out, "%4d %-16s %14s %-12s %-8s\n",
			r.ID, r.ClientUsername, currency.Format(r.Price), r.Date.Format("2006-01-02"), r.Status)
	}

	if s.prompt("[a]dd order or [c]lose") != "a" {
		s.dispatch(navigator.Form{"action": "close"})
		return
	}
	s.dispatch(navigator.Form{
		"client":      s.prompt("Client (username)"),
		"description": s.prompt("Description"),
		"price":       s.prompt("Price"),
		"date":        s.prompt("Date (YYYY-MM-DD, blank for today)"),
	})
}

func (s *shell) invoices() {
	s.header("Invoicing")
	invs, err := s.store.ListInvoices()
	if err != nil {
		s.log.Error().Err(err).Msg("listing invoices failed")
	}
	fmt.Fprintf(s.out, "%4s %8s %14s %-12s %-4s\n", "ID", "SERVICE", "TOTAL", "DATE", "PAID")
	for _, inv := range invs {
		paid := "no"
		if inv.Paid {
			paid = "yes"
		}
		fmt.Fprintf(s.out, "%4d %8d %14s %-12s %-4s\n",
			inv.ID, inv.ServiceID, currency.Format(inv.Total), inv.Date.Format("2006-01-02"), paid)
	}

	if s.prompt("[a]dd invoice or [c]lose") != "a" {
		s.dispatch(navigator.Form{"action": "close"})
		return
	}
	s.dispatch(navigator.Form{
		"service": s.prompt("Service ID"),
		"total":   s.prompt("Total"),
		"date":    s.prompt("Date (YYYY-MM-DD, blank for today)"),
		"paid":    s.prompt("Paid? (y/n)"),
	})
}

func (s *shell) reports() {
	s.header("Reports")
	rv, err := s.agg.Revenue()
	if err != nil {
		s.log.Error().Err(err).Msg("report aggregation failed")
	} else {
		fmt.Fprintf(s.out, "Service orders: %d\n", rv.ServiceCount)
		fmt.Fprintf(s.out, "Potential revenue (sum of order prices): %s\n", currency.Format(rv.ServiceTotal))
		fmt.Fprintf(s.out, "Invoices generated: %d\n", rv.InvoiceCount)
		fmt.Fprintf(s.out, "Billed revenue: %s\n", currency.Format(rv.InvoiceTotal))
	}
	s.prompt("Press Enter to return")
	s.trigger(navigator.EvClose)
}

func (s *shell) static(title, text string) {
	s.header(title)
	fmt.Fprintln(s.out, text)
	s.prompt("Press Enter to return")
	s.trigger(navigator.EvClose)
}

func (s *shell) settings() {
	s.header("Settings")
	fmt.Fprintf(s.out, "Logo file: %s\n", s.cfg.LogoPath)

	if s.prompt("[l] replace logo or [c]lose") != "l" {
		s.dispatch(navigator.Form{"action": "close"})
		return
	}
	s.dispatch(navigator.Form{"logo": s.prompt("Path to new logo")})
}
