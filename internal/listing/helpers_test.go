package listing

import "lending-admin/internal/domain/borrower"

func rec(id int64, customerID string, repeat bool) *borrower.Borrower {
	count := 1
	if repeat {
		count = 2
	}
	return &borrower.Borrower{
		BorrowerID:       id,
		CustomerID:       customerID,
		RefNo:            "BRW-" + customerID,
		FullName:         "Borrower " + customerID,
		ContactNo:        "0917000000",
		IsRepeatCustomer: repeat,
		LoanCount:        count,
	}
}

func ids(records []*borrower.Borrower) []int64 {
	out := make([]int64, len(records))
	for i, b := range records {
		out[i] = b.BorrowerID
	}
	return out
}

func schemeNames(schemes []Scheme) []string {
	out := make([]string, len(schemes))
	for i, s := range schemes {
		out[i] = s.Name
	}
	return out
}

// bandingExample is the four-borrower repeat fixture: customer C1 owns
// borrowers 1, 2 and 4, customer C2 owns borrower 3.
func bandingExample() []*borrower.Borrower {
	return []*borrower.Borrower{
		rec(1, "C1", true),
		rec(2, "C1", true),
		rec(3, "C2", true),
		rec(4, "C1", true),
	}
}
