package handler

import (
	"context"
	"io"
	"lending-admin/internal/domain/borrower"
	"lending-admin/internal/domain/customer"
	"lending-admin/internal/listing"
	"lending-admin/internal/snapshot"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

type MockBorrowerService struct {
	mock.Mock
}

func (m *MockBorrowerService) CreateBorrower(ctx context.Context, fields borrower.Fields) (*borrower.Borrower, error) {
	args := m.Called(ctx, fields)
	var b *borrower.Borrower
	if args.Get(0) != nil {
		b = args.Get(0).(*borrower.Borrower)
	}
	return b, args.Error(1)
}

func (m *MockBorrowerService) UpdateBorrower(ctx context.Context, borrowerID int64, fields borrower.Fields) error {
	return m.Called(ctx, borrowerID, fields).Error(0)
}

func (m *MockBorrowerService) DeleteBorrower(ctx context.Context, borrowerID int64) error {
	return m.Called(ctx, borrowerID).Error(0)
}

type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) BorrowerView(ctx context.Context, state listing.ViewState) (listing.View, error) {
	args := m.Called(ctx, state)
	return args.Get(0).(listing.View), args.Error(1)
}

func (m *MockListingService) Customers(ctx context.Context, query string) ([]*customer.Customer, error) {
	args := m.Called(ctx, query)
	var list []*customer.Customer
	if args.Get(0) != nil {
		list = args.Get(0).([]*customer.Customer)
	}
	return list, args.Error(1)
}

func (m *MockListingService) Summary() snapshot.Snapshot {
	return m.Called().Get(0).(snapshot.Snapshot)
}

type MockRefresher struct {
	mock.Mock
}

func (m *MockRefresher) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
