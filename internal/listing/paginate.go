package listing

import (
	"fmt"
	"lending-admin/internal/pkg/apperrors"
	"slices"
)

var allowedPageSizes = [...]int{5, 10, 25, 50}

// PageSizes returns the page sizes the borrower table offers.
func PageSizes() []int {
	return slices.Clone(allowedPageSizes[:])
}

func ValidPageSize(size int) bool {
	return slices.Contains(allowedPageSizes[:], size)
}

// Paginate returns seq[page*size : page*size+size], clipped to the end of
// seq. A page past the end is empty. The result shares seq's backing array
// and has no spare capacity.
func Paginate[T any](seq []T, page, size int) ([]T, error) {
	if page < 0 {
		return nil, fmt.Errorf("%w: page must not be negative, got %d", apperrors.ErrInvalidArgument, page)
	}
	if !ValidPageSize(size) {
		return nil, fmt.Errorf("%w: page size must be one of %v, got %d", apperrors.ErrInvalidArgument, allowedPageSizes, size)
	}

	start := page * size
	if start >= len(seq) {
		return []T{}, nil
	}
	end := min(start+size, len(seq))
	return seq[start:end:end], nil
}

func TotalPages(total, size int) int {
	if total == 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
