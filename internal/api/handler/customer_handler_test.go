package handler

import (
	"encoding/json"
	"fmt"
	"lending-admin/internal/api/handler/dto"
	"lending-admin/internal/domain/customer"
	"lending-admin/internal/pkg/apperrors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListCustomers(t *testing.T) {
	t.Run("returns filtered customers", func(t *testing.T) {
		ls := new(MockListingService)
		ls.On("Customers", mock.Anything, "santos").Return([]*customer.Customer{
			{CustomerID: "CUST-001", FullName: "Maria Santos", Phone: "0917123456"},
		}, nil)
		h := NewCustomerHandler(ls, logger)

		rec := httptest.NewRecorder()
		h.ListCustomers(rec, httptest.NewRequest(http.MethodGet, "/customers?q=santos", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.CustomerResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "CUST-001", resp[0].CustomerID)
		ls.AssertExpectations(t)
	})

	t.Run("returns empty array when nothing matches", func(t *testing.T) {
		ls := new(MockListingService)
		ls.On("Customers", mock.Anything, "").Return([]*customer.Customer{}, nil)
		h := NewCustomerHandler(ls, logger)

		rec := httptest.NewRecorder()
		h.ListCustomers(rec, httptest.NewRequest(http.MethodGet, "/customers", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("reports unavailable snapshot", func(t *testing.T) {
		ls := new(MockListingService)
		ls.On("Customers", mock.Anything, "").Return(nil, fmt.Errorf("%w: db down", apperrors.ErrSnapshotUnavailable))
		h := NewCustomerHandler(ls, logger)

		rec := httptest.NewRecorder()
		h.ListCustomers(rec, httptest.NewRequest(http.MethodGet, "/customers", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestNewCustomerHandlerPanics(t *testing.T) {
	assert.Panics(t, func() { NewCustomerHandler(nil, logger) })
	assert.Panics(t, func() { NewCustomerHandler(new(MockListingService), nil) })
}
