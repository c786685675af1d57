// Package listing derives the borrower table from a record snapshot.
//
// Every step is a pure function of the snapshot and a ViewState:
//
//	snapshot -> Filter -> Classify -> GroupSort (repeat tab) -> Paginate -> AssignBands -> View
//
// Colour bands are computed over the visible page window only, so the scan
// state restarts on every page. A customer whose run crosses a page boundary
// therefore starts the next page with a fresh band.
package listing
