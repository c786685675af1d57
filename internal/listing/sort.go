package listing

import (
	"cmp"
	"lending-admin/internal/domain/borrower"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GroupSort returns a sorted copy of records in which all borrowers of one
// customer are contiguous. Customers are ordered by locale-aware comparison
// of their IDs and each customer's borrowers by ascending BorrowerID.
func GroupSort(records []*borrower.Borrower) []*borrower.Borrower {
	out := slices.Clone(records)
	col := collate.New(language.English)

	slices.SortStableFunc(out, func(a, b *borrower.Borrower) int {
		if a.CustomerID == b.CustomerID {
			return cmp.Compare(a.BorrowerID, b.BorrowerID)
		}
		if c := col.CompareString(a.CustomerID, b.CustomerID); c != 0 {
			return c
		}
		// distinct IDs the collator treats as equal must still not interleave
		return strings.Compare(a.CustomerID, b.CustomerID)
	})
	return out
}
