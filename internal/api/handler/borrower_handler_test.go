package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"lending-admin/internal/api/handler/dto"
	"lending-admin/internal/domain/borrower"
	"lending-admin/internal/listing"
	"lending-admin/internal/pkg/apperrors"
	"lending-admin/internal/snapshot"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type borrowerHandlerFixture struct {
	borrowers *MockBorrowerService
	listing   *MockListingService
	refresher *MockRefresher
	handler   *BorrowerHandler
}

func newBorrowerHandlerFixture() borrowerHandlerFixture {
	f := borrowerHandlerFixture{
		borrowers: new(MockBorrowerService),
		listing:   new(MockListingService),
		refresher: new(MockRefresher),
	}
	f.handler = NewBorrowerHandler(f.borrowers, f.listing, f.refresher, 10, logger)
	return f
}

func (f borrowerHandlerFixture) assertExpectations(t *testing.T) {
	f.borrowers.AssertExpectations(t)
	f.listing.AssertExpectations(t)
	f.refresher.AssertExpectations(t)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorDetail {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

var requestBody = dto.BorrowerRequest{
	CustomerID: "CUST-001",
	FullName:   "Maria Santos",
	ContactNo:  "0917123456",
	Address:    "12 Mabini St",
	Email:      "maria@example.com",
}

func TestNewBorrowerHandlerPanics(t *testing.T) {
	assert.Panics(t, func() { NewBorrowerHandler(nil, new(MockListingService), new(MockRefresher), 10, logger) })
	assert.Panics(t, func() { NewBorrowerHandler(new(MockBorrowerService), new(MockListingService), new(MockRefresher), 10, nil) })
	assert.Panics(t, func() {
		NewBorrowerHandler(new(MockBorrowerService), new(MockListingService), new(MockRefresher), 7, logger)
	})
}

func TestListBorrowers(t *testing.T) {
	t.Run("uses defaults when no query is given", func(t *testing.T) {
		f := newBorrowerHandlerFixture()
		want := listing.ViewState{Tab: listing.TabAll, PageSize: 10}
		f.listing.On("BorrowerView", mock.Anything, want).Return(listing.View{State: want, Rows: []listing.Row{}}, nil)

		rec := httptest.NewRecorder()
		f.handler.ListBorrowers(rec, httptest.NewRequest(http.MethodGet, "/borrowers", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.BorrowerViewResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "all", resp.Tab)
		assert.Equal(t, 10, resp.PageSize)
		assert.NotNil(t, resp.Rows)
		f.assertExpectations(t)
	})

	t.Run("passes tab search and paging through", func(t *testing.T) {
		f := newBorrowerHandlerFixture()
		want := listing.ViewState{Search: "santos", Tab: listing.TabRepeat, Page: 2, PageSize: 25}
		b := &borrower.Borrower{BorrowerID: 4, CustomerID: "C1", IsRepeatCustomer: true, LoanCount: 3}
		view := listing.View{
			State:       want,
			Rows:        []listing.Row{{Borrower: b, Scheme: listing.Scheme0, Label: b.RepeatLabel()}},
			Total:       51,
			TotalPages:  3,
			AllCount:    80,
			RepeatCount: 51,
		}
		f.listing.On("BorrowerView", mock.Anything, want).Return(view, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/borrowers?tab=repeat&q=santos&page=2&pageSize=25", nil)
		f.handler.ListBorrowers(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.BorrowerViewResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, dto.TabCounts{All: 80, Repeat: 51}, resp.Counts)
		require.Len(t, resp.Rows, 1)
		assert.Equal(t, "amber", resp.Rows[0].Style.Name)
		assert.Equal(t, "Repeat Customer (3 borrowers)", resp.Rows[0].Label)
		f.assertExpectations(t)
	})

	for _, query := range []string{"tab=frequent", "pageSize=7", "page=-1", "page=abc", "pageSize=ten"} {
		t.Run("rejects "+query, func(t *testing.T) {
			f := newBorrowerHandlerFixture()

			rec := httptest.NewRecorder()
			f.handler.ListBorrowers(rec, httptest.NewRequest(http.MethodGet, "/borrowers?"+query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "INVALID_ARGUMENT", decodeError(t, rec).Code)
			f.listing.AssertNotCalled(t, "BorrowerView", mock.Anything, mock.Anything)
		})
	}

	t.Run("reports unavailable snapshot", func(t *testing.T) {
		f := newBorrowerHandlerFixture()
		err := fmt.Errorf("%w: db down", apperrors.ErrSnapshotUnavailable)
		f.listing.On("BorrowerView", mock.Anything, mock.Anything).Return(listing.View{Rows: []listing.Row{}}, err)

		rec := httptest.NewRecorder()
		f.handler.ListBorrowers(rec, httptest.NewRequest(http.MethodGet, "/borrowers", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "SNAPSHOT_UNAVAILABLE", decodeError(t, rec).Code)
		f.assertExpectations(t)
	})
}

func TestCreateBorrower(t *testing.T) {
	t.Run("returns created borrower", func(t *testing.T) {
		f := newBorrowerHandlerFixture()
		created := &borrower.Borrower{BorrowerID: 9, CustomerID: "CUST-001", RefNo: "BRW-1A2B3C4D", FullName: "Maria Santos"}
		f.borrowers.On("CreateBorrower", mock.Anything, requestBody.Fields()).Return(created, nil)

		body, _ := json.Marshal(requestBody)
		rec := httptest.NewRecorder()
		f.handler.CreateBorrower(rec, httptest.NewRequest(http.MethodPost, "/borrowers", bytes.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.BorrowerResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(9), resp.BorrowerID)
		assert.Equal(t, "BRW-1A2B3C4D", resp.RefNo)
		f.assertExpectations(t)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		f := newBorrowerHandlerFixture()

		rec := httptest.NewRecorder()
		f.handler.CreateBorrower(rec, httptest.NewRequest(http.MethodPost, "/borrowers", bytes.NewBufferString(`{"unknown":1}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.borrowers.AssertNotCalled(t, "CreateBorrower", mock.Anything, mock.Anything)
	})

	t.Run("reports every invalid field", func(t *testing.T) {
		f := newBorrowerHandlerFixture()
		var fieldErrs apperrors.FieldErrors
		fieldErrs = fieldErrs.Add("contactNo", "contact number must be exactly 10 digits").Add("email", "email address is invalid")
		f.borrowers.On("CreateBorrower", mock.Anything, mock.Anything).Return(nil, fieldErrs.Err())

		body, _ := json.Marshal(requestBody)
		rec := httptest.NewRecorder()
		f.handler.CreateBorrower(rec, httptest.NewRequest(http.MethodPost, "/borrowers", bytes.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		detail := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", detail.Code)
		assert.Equal(t, []dto.FieldErrorDetail{
			{Field: "contactNo", Message: "contact number must be exactly 10 digits"},
			{Field: "email", Message: "email address is invalid"},
		}, detail.Fields)
	})

	t.Run("maps missing customer to 404", func(t *testing.T) {
		f := newBorrowerHandlerFixture()
		f.borrowers.On("CreateBorrower", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: customer CUST-404", apperrors.ErrNotFound))

		body, _ := json.Marshal(requestBody)
		rec := httptest.NewRecorder()
		f.handler.CreateBorrower(rec, httptest.NewRequest(http.MethodPost, "/borrowers", bytes.NewReader(body)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "CUST-404")
	})

	t.Run("maps duplicate ref no to 409", func(t *testing.T) {
		f := newBorrowerHandlerFixture()
		f.borrowers.On("CreateBorrower", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: borrowers_ref_no_key", apperrors.ErrAlreadyExists))

		body, _ := json.Marshal(requestBody)
		rec := httptest.NewRecorder()
		f.handler.CreateBorrower(rec, httptest.NewRequest(http.MethodPost, "/borrowers", bytes.NewReader(body)))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestUpdateBorrower(t *testing.T) {
	t.Run("returns no content", func(t *testing.T) {
		f := newBorrowerHandlerFixture()
		f.borrowers.On("UpdateBorrower", mock.Anything, int64(5), requestBody.Fields()).Return(nil)

		body, _ := json.Marshal(requestBody)
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/borrowers/5", bytes.NewReader(body)), "borrowerID", "5")
		rec := httptest.NewRecorder()
		f.handler.UpdateBorrower(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		f.assertExpectations(t)
	})

	t.Run("rejects bad id", func(t *testing.T) {
		f := newBorrowerHandlerFixture()

		body, _ := json.Marshal(requestBody)
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/borrowers/abc", bytes.NewReader(body)), "borrowerID", "abc")
		rec := httptest.NewRecorder()
		f.handler.UpdateBorrower(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.borrowers.AssertNotCalled(t, "UpdateBorrower", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("maps unknown borrower to 404", func(t *testing.T) {
		f := newBorrowerHandlerFixture()
		f.borrowers.On("UpdateBorrower", mock.Anything, int64(77), mock.Anything).
			Return(fmt.Errorf("%w: borrower 77", apperrors.ErrNotFound))

		body, _ := json.Marshal(requestBody)
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/borrowers/77", bytes.NewReader(body)), "borrowerID", "77")
		rec := httptest.NewRecorder()
		f.handler.UpdateBorrower(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteBorrower(t *testing.T) {
	t.Run("returns no content", func(t *testing.T) {
		f := newBorrowerHandlerFixture()
		f.borrowers.On("DeleteBorrower", mock.Anything, int64(5)).Return(nil)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/borrowers/5", nil), "borrowerID", "5")
		rec := httptest.NewRecorder()
		f.handler.DeleteBorrower(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		f.assertExpectations(t)
	})

	t.Run("rejects zero id", func(t *testing.T) {
		f := newBorrowerHandlerFixture()

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/borrowers/0", nil), "borrowerID", "0")
		rec := httptest.NewRecorder()
		f.handler.DeleteBorrower(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("hides unexpected errors", func(t *testing.T) {
		f := newBorrowerHandlerFixture()
		f.borrowers.On("DeleteBorrower", mock.Anything, int64(5)).Return(errors.New("boom"))

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/borrowers/5", nil), "borrowerID", "5")
		rec := httptest.NewRecorder()
		f.handler.DeleteBorrower(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "An unexpected error occurred.", decodeError(t, rec).Message)
	})
}

func TestRefreshBorrowers(t *testing.T) {
	t.Run("returns snapshot summary", func(t *testing.T) {
		f := newBorrowerHandlerFixture()
		loadedAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
		f.refresher.On("Refresh", mock.Anything).Return(nil)
		f.listing.On("Summary").Return(snapshot.Snapshot{
			Version:   3,
			Borrowers: []*borrower.Borrower{{BorrowerID: 1}},
			LoadedAt:  loadedAt,
		})

		rec := httptest.NewRecorder()
		f.handler.RefreshBorrowers(rec, httptest.NewRequest(http.MethodPost, "/borrowers/refresh", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.SnapshotSummaryResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, uint64(3), resp.Version)
		assert.Equal(t, 1, resp.Borrowers)
		assert.True(t, loadedAt.Equal(resp.LoadedAt))
		f.assertExpectations(t)
	})

	t.Run("reports failed reload", func(t *testing.T) {
		f := newBorrowerHandlerFixture()
		f.refresher.On("Refresh", mock.Anything).Return(fmt.Errorf("%w: failed to list borrowers", apperrors.ErrSnapshotUnavailable))

		rec := httptest.NewRecorder()
		f.handler.RefreshBorrowers(rec, httptest.NewRequest(http.MethodPost, "/borrowers/refresh", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		f.listing.AssertNotCalled(t, "Summary")
	})
}
