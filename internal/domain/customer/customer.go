package customer

import "strings"

// Customer is the person behind one or more borrower records. It is read-only
// reference data used to populate borrower forms.
type Customer struct {
	CustomerID string `json:"customerId"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
}

// Normalize trims every text field in place.
func (c *Customer) Normalize() {
	c.CustomerID = strings.TrimSpace(c.CustomerID)
	c.FullName = strings.TrimSpace(c.FullName)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.Address = strings.TrimSpace(c.Address)
}

// Matches reports whether the customer's name, ID or phone contains query.
// Name matching ignores case.
func (c *Customer) Matches(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.FullName), strings.ToLower(query)) ||
		strings.Contains(c.CustomerID, query) ||
		strings.Contains(c.Phone, query)
}
