package listing

import (
	"fmt"
	"lending-admin/internal/domain/borrower"
	"lending-admin/internal/pkg/apperrors"
)

type Tab string

const (
	TabAll    Tab = "all"
	TabRepeat Tab = "repeat"
)

func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case "", TabAll:
		return TabAll, nil
	case TabRepeat:
		return TabRepeat, nil
	default:
		return "", fmt.Errorf("%w: unknown tab %q", apperrors.ErrInvalidArgument, s)
	}
}

// Classify narrows the filtered set to the given tab. The all tab passes
// records through untouched; the repeat tab keeps repeat customers and
// groups them with GroupSort.
func Classify(records []*borrower.Borrower, tab Tab) []*borrower.Borrower {
	if tab != TabRepeat {
		return records
	}
	repeat := make([]*borrower.Borrower, 0, len(records))
	for _, b := range records {
		if b.IsRepeatCustomer {
			repeat = append(repeat, b)
		}
	}
	return GroupSort(repeat)
}

func countRepeat(records []*borrower.Borrower) int {
	n := 0
	for _, b := range records {
		if b.IsRepeatCustomer {
			n++
		}
	}
	return n
}
