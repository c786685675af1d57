package listing

import (
	"fmt"
	"lending-admin/internal/domain/borrower"
	"lending-admin/internal/pkg/apperrors"
)

// ViewState is everything the borrower table depends on besides the
// snapshot itself.
type ViewState struct {
	Search   string
	Tab      Tab
	Page     int
	PageSize int
}

func NewViewState(pageSize int) ViewState {
	return ViewState{Tab: TabAll, PageSize: pageSize}
}

// WithSearch, WithTab and WithPageSize return to the first page whenever the
// value actually changes.
func (s ViewState) WithSearch(search string) ViewState {
	if s.Search != search {
		s.Search = search
		s.Page = 0
	}
	return s
}

func (s ViewState) WithTab(tab Tab) ViewState {
	if s.Tab != tab {
		s.Tab = tab
		s.Page = 0
	}
	return s
}

func (s ViewState) WithPageSize(size int) ViewState {
	if s.PageSize != size {
		s.PageSize = size
		s.Page = 0
	}
	return s
}

func (s ViewState) WithPage(page int) ViewState {
	s.Page = page
	return s
}

func (s ViewState) Validate() error {
	if s.Tab != TabAll && s.Tab != TabRepeat {
		return fmt.Errorf("%w: unknown tab %q", apperrors.ErrInvalidArgument, s.Tab)
	}
	if s.Page < 0 {
		return fmt.Errorf("%w: page must not be negative, got %d", apperrors.ErrInvalidArgument, s.Page)
	}
	if !ValidPageSize(s.PageSize) {
		return fmt.Errorf("%w: unsupported page size %d", apperrors.ErrInvalidArgument, s.PageSize)
	}
	return nil
}

type Row struct {
	Borrower *borrower.Borrower
	Scheme   Scheme
	Label    string
}

type View struct {
	State       ViewState
	Rows        []Row
	Total       int
	TotalPages  int
	AllCount    int
	RepeatCount int
}

type bandFunc func(Tab, []*borrower.Borrower) []Scheme

// Build derives the visible table for state from records.
func Build(records []*borrower.Borrower, state ViewState) (View, error) {
	return build(records, state, AssignBands)
}

func build(records []*borrower.Borrower, state ViewState, bands bandFunc) (View, error) {
	if err := state.Validate(); err != nil {
		return View{}, err
	}

	filtered := Filter(records, state.Search)
	sequence := Classify(filtered, state.Tab)

	window, err := Paginate(sequence, state.Page, state.PageSize)
	if err != nil {
		return View{}, err
	}
	schemes := bands(state.Tab, window)

	rows := make([]Row, len(window))
	for i, b := range window {
		rows[i] = Row{Borrower: b, Scheme: schemes[i], Label: b.RepeatLabel()}
	}

	return View{
		State:       state,
		Rows:        rows,
		Total:       len(sequence),
		TotalPages:  TotalPages(len(sequence), state.PageSize),
		AllCount:    len(filtered),
		RepeatCount: countRepeat(filtered),
	}, nil
}
