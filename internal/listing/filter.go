package listing

import (
	"lending-admin/internal/domain/borrower"
	"strings"
)

// Filter keeps the borrowers whose full name or reference number contains
// query ignoring case, or whose customer ID or contact number contains it
// verbatim. An empty query returns records itself. Order is preserved.
//
// Records must have been normalized on ingestion.
func Filter(records []*borrower.Borrower, query string) []*borrower.Borrower {
	if query == "" {
		return records
	}
	lower := strings.ToLower(query)

	out := make([]*borrower.Borrower, 0, len(records))
	for _, b := range records {
		if strings.Contains(strings.ToLower(b.FullName), lower) ||
			strings.Contains(b.CustomerID, query) ||
			strings.Contains(b.ContactNo, query) ||
			strings.Contains(strings.ToLower(b.RefNo), lower) {
			out = append(out, b)
		}
	}
	return out
}
