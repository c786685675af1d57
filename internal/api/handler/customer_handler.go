package handler

import (
	"lending-admin/internal/api/handler/dto"
	"log/slog"
	"net/http"
)

type CustomerHandler struct {
	listing ListingService
	logger  *slog.Logger
}

func NewCustomerHandler(ls ListingService, l *slog.Logger) *CustomerHandler {
	if ls == nil {
		panic("listing service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		listing: ls,
		logger:  l.With("component", "CustomerHandler"),
	}
}

// ListCustomers handles GET /customers
// @Summary List customers
// @Description Returns customers from the loaded snapshot, optionally filtered by name, customer ID or phone. Used to populate borrower forms.
// @Tags Customers
// @Produce json
// @Param q query string false "Filter on name, customer ID or phone"
// @Success 200 {array} dto.CustomerResponse "Customers"
// @Failure 503 {object} dto.ErrorResponse "Customer records could not be loaded"
// @Router /customers [get]
// @Security BearerAuth
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received list customers request")

	customers, err := h.listing.Customers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list customers", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerListResponse(customers))
}
