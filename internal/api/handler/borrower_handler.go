package handler

import (
	"context"
	"fmt"
	"lending-admin/internal/api/handler/dto"
	"lending-admin/internal/domain/borrower"
	"lending-admin/internal/domain/customer"
	"lending-admin/internal/listing"
	"lending-admin/internal/pkg/apperrors"
	"lending-admin/internal/snapshot"
	"log/slog"
	"net/http"
)

// ListingService serves read-only derivations of the current snapshot.
type ListingService interface {
	BorrowerView(ctx context.Context, state listing.ViewState) (listing.View, error)
	Customers(ctx context.Context, query string) ([]*customer.Customer, error)
	Summary() snapshot.Snapshot
}

type SnapshotRefresher interface {
	Refresh(ctx context.Context) error
}

type BorrowerHandler struct {
	borrowers       borrower.BorrowerService
	listing         ListingService
	refresher       SnapshotRefresher
	defaultPageSize int
	logger          *slog.Logger
}

func NewBorrowerHandler(b borrower.BorrowerService, ls ListingService, refresher SnapshotRefresher, defaultPageSize int, l *slog.Logger) *BorrowerHandler {
	if b == nil || ls == nil || refresher == nil {
		panic("borrower handler dependencies cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	if !listing.ValidPageSize(defaultPageSize) {
		panic(fmt.Sprintf("unsupported default page size %d", defaultPageSize))
	}
	return &BorrowerHandler{
		borrowers:       b,
		listing:         ls,
		refresher:       refresher,
		defaultPageSize: defaultPageSize,
		logger:          l.With("component", "BorrowerHandler"),
	}
}

func (h *BorrowerHandler) viewStateFromQuery(r *http.Request) (listing.ViewState, error) {
	q := r.URL.Query()
	tab, err := listing.ParseTab(q.Get("tab"))
	if err != nil {
		return listing.ViewState{}, err
	}
	pageSize, err := queryInt(r, "pageSize", h.defaultPageSize)
	if err != nil {
		return listing.ViewState{}, err
	}
	page, err := queryInt(r, "page", 0)
	if err != nil {
		return listing.ViewState{}, err
	}

	state := listing.NewViewState(h.defaultPageSize).
		WithTab(tab).
		WithSearch(q.Get("q")).
		WithPageSize(pageSize).
		WithPage(page)
	return state, state.Validate()
}

// ListBorrowers handles GET /borrowers
// @Summary List borrowers
// @Description Returns one page of the borrower table. The repeat tab keeps only repeat customers, grouped by customer, with alternating colour bands per customer run on the page.
// @Tags Borrowers
// @Produce json
// @Param tab query string false "Tab" Enums(all, repeat) default(all)
// @Param q query string false "Free-text search over name, customer ID, contact number and reference number"
// @Param page query int false "Zero-based page index" Minimum(0) default(0)
// @Param pageSize query int false "Rows per page" Enums(5, 10, 25, 50)
// @Success 200 {object} dto.BorrowerViewResponse "Borrower table page"
// @Failure 400 {object} dto.ErrorResponse "Invalid tab, page or page size"
// @Failure 503 {object} dto.ErrorResponse "Borrower records could not be loaded"
// @Router /borrowers [get]
// @Security BearerAuth
func (h *BorrowerHandler) ListBorrowers(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received list borrowers request")

	state, err := h.viewStateFromQuery(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Invalid borrower view parameters", slog.Any("error", err))
		respondError(w, err)
		return
	}

	view, err := h.listing.BorrowerView(r.Context(), state)
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Failed to build borrower view", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewBorrowerViewResponse(view))
}

// CreateBorrower handles POST /borrowers
// @Summary Create a borrower
// @Description Validates and stores a new borrower for an existing customer, then reloads the borrower list.
// @Tags Borrowers
// @Accept json
// @Produce json
// @Param request body dto.BorrowerRequest true "Borrower fields"
// @Success 201 {object} dto.BorrowerResponse "Borrower created"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or field validation errors"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 409 {object} dto.ErrorResponse "Reference number already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /borrowers [post]
// @Security BearerAuth
func (h *BorrowerHandler) CreateBorrower(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create borrower request")

	var req dto.BorrowerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	created, err := h.borrowers.CreateBorrower(r.Context(), req.Fields())
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to create borrower", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewBorrowerResponse(created)
	h.logger.InfoContext(r.Context(), "Borrower created successfully", slog.Int64("borrowerID", resp.BorrowerID))
	respondJSON(w, http.StatusCreated, resp)
}

// UpdateBorrower handles PUT /borrowers/{borrowerID}
// @Summary Update a borrower
// @Description Replaces the editable fields of a borrower, then reloads the borrower list.
// @Tags Borrowers
// @Accept json
// @Produce json
// @Param borrowerID path int true "Borrower ID" Minimum(1)
// @Param request body dto.BorrowerRequest true "Borrower fields"
// @Success 204 "Borrower updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID, payload or field validation errors"
// @Failure 404 {object} dto.ErrorResponse "Borrower not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /borrowers/{borrowerID} [put]
// @Security BearerAuth
func (h *BorrowerHandler) UpdateBorrower(w http.ResponseWriter, r *http.Request) {
	borrowerID, err := getBorrowerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get borrower ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	var req dto.BorrowerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	if err := h.borrowers.UpdateBorrower(r.Context(), borrowerID, req.Fields()); err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to update borrower", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Borrower updated successfully", slog.Int64("borrowerID", borrowerID))
	respondJSON(w, http.StatusNoContent, nil)
}

// DeleteBorrower handles DELETE /borrowers/{borrowerID}
// @Summary Delete a borrower
// @Description Removes a borrower record, then reloads the borrower list.
// @Tags Borrowers
// @Produce json
// @Param borrowerID path int true "Borrower ID" Minimum(1)
// @Success 204 "Borrower deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid borrower ID"
// @Failure 404 {object} dto.ErrorResponse "Borrower not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /borrowers/{borrowerID} [delete]
// @Security BearerAuth
func (h *BorrowerHandler) DeleteBorrower(w http.ResponseWriter, r *http.Request) {
	borrowerID, err := getBorrowerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get borrower ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	if err := h.borrowers.DeleteBorrower(r.Context(), borrowerID); err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to delete borrower", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Borrower deleted successfully", slog.Int64("borrowerID", borrowerID))
	respondJSON(w, http.StatusNoContent, nil)
}

// RefreshBorrowers handles POST /borrowers/refresh
// @Summary Reload borrower records
// @Description Discards the in-memory snapshot and fetches borrowers and customers again.
// @Tags Borrowers
// @Produce json
// @Success 200 {object} dto.SnapshotSummaryResponse "Snapshot reloaded"
// @Failure 503 {object} dto.ErrorResponse "Borrower records could not be loaded"
// @Router /borrowers/refresh [post]
// @Security BearerAuth
func (h *BorrowerHandler) RefreshBorrowers(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received refresh borrowers request")

	if err := h.refresher.Refresh(r.Context()); err != nil {
		h.logger.ErrorContext(r.Context(), "Snapshot refresh failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewSnapshotSummaryResponse(h.listing.Summary())
	h.logger.InfoContext(r.Context(), "Snapshot refreshed", slog.Uint64("version", resp.Version), slog.Int("borrowers", resp.Borrowers))
	respondJSON(w, http.StatusOK, resp)
}
