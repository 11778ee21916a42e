package screens

import (
	"strings"

	"autorepair/assets"
	"autorepair/navigator"
)

// Fixed copy rendered by the informational screens. The shell prints these
// verbatim.
const (
	WelcomeText = `Welcome to Auto Repair
Simplified management system for an automotive workshop.`

	AboutText = `Auto Repair
Management system for an automotive workshop.
Contact: contato@autorepair.com
Phone: (11) 9876-5432
Address: Rua Eusebio Stevaux, 823 - Santo Amaro, São Paulo`

	HelpText = `Quick manual:
- Log in with user 'admin' / password 'admin123' (sample admin).
- Register clients on the 'Register' screen.
- Add parts and tools on their management screens.
- Open service orders against a client's username.
- Generate invoices for service orders.
- Only administrators can remove users.

Tip: replace 'logo.png' with your own shop logo (Settings).`

	FlowchartText = `Process flow:
  [Customer intake / booking]
            |
            v
  [Diagnosis / vehicle analysis]
            |
            v
  [Service execution / repair]
            |
            v
  [Delivery / invoicing / follow-up]`

	WireframeText = `Screens and purposes:
 1. Welcome
 2. Login
 3. Register client
 4. Dashboard
 5. Parts management
 6. Tools management
 7. User management (admin)
 8. Service orders
 9. Invoicing
10. Reports
11. Flowchart
12. Wireframe
13. About / contact
14. Settings
15. Help`
)

// Settings lets the operator swap the shop logo. The chosen file is copied
// over the configured logo path.
func Settings(logoPath string) navigator.Handler {
	return func(f navigator.Form) navigator.Outcome {
		if f["action"] == "close" {
			return navigator.Outcome{Event: navigator.EvClose}
		}

		src := strings.TrimSpace(f["logo"])
		if src == "" {
			return stay("Nothing changed.")
		}
		if err := assets.Replace(src, logoPath); err != nil {
			return stay("Could not replace logo: " + err.Error())
		}
		return stay("Logo updated.")
	}
}
