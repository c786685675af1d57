package listing

import "lending-admin/internal/domain/borrower"

// Scheme is the style token attached to a table row.
type Scheme struct {
	Name            string `json:"name,omitempty"`
	Background      string `json:"background,omitempty"`
	HoverBackground string `json:"hoverBackground,omitempty"`
	BorderAccent    string `json:"borderAccent,omitempty"`
}

var (
	NoScheme = Scheme{}

	Scheme0 = Scheme{Name: "amber", Background: "#fff8e1", HoverBackground: "#ffecb3", BorderAccent: "#ffb300"}
	Scheme1 = Scheme{Name: "blue", Background: "#e3f2fd", HoverBackground: "#bbdefb", BorderAccent: "#1e88e5"}

	// Highlight marks repeat customers on the all tab. It never alternates.
	Highlight = Scheme{Name: "highlight", Background: "#fff8e1", HoverBackground: "#ffecb3", BorderAccent: "#ff8f00"}
)

// AssignBands returns one scheme per row of window.
//
// On the repeat tab each run of equal CustomerID flips between Scheme0 and
// Scheme1, starting with Scheme0. The scan starts fresh for every window, so
// bands are page-local. On the all tab repeat customers get Highlight.
// Rows of first-time borrowers get NoScheme on both tabs.
func AssignBands(tab Tab, window []*borrower.Borrower) []Scheme {
	schemes := make([]Scheme, len(window))

	if tab != TabRepeat {
		for i, b := range window {
			if b.IsRepeatCustomer {
				schemes[i] = Highlight
			}
		}
		return schemes
	}

	var (
		lastCustomerID string
		seen           bool
		toggle         int
	)
	for i, b := range window {
		if !b.IsRepeatCustomer {
			schemes[i] = NoScheme
			continue
		}
		if !seen || b.CustomerID != lastCustomerID {
			toggle = 1 - toggle
			lastCustomerID = b.CustomerID
			seen = true
		}
		if toggle == 1 {
			schemes[i] = Scheme0
		} else {
			schemes[i] = Scheme1
		}
	}
	return schemes
}
