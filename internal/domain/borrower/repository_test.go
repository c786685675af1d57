package borrower

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockBorrowerRepository struct {
	mock.Mock
}

func (_m *MockBorrowerRepository) FindAll(ctx context.Context) ([]*Borrower, error) {
	ret := _m.Called(ctx)

	var r0 []*Borrower
	if rf, ok := ret.Get(0).(func(context.Context) []*Borrower); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Borrower)
	}

	return r0, ret.Error(1)
}

func (_m *MockBorrowerRepository) Create(ctx context.Context, b *Borrower) error {
	ret := _m.Called(ctx, b)

	if rf, ok := ret.Get(0).(func(context.Context, *Borrower) error); ok {
		return rf(ctx, b)
	}
	return ret.Error(0)
}

func (_m *MockBorrowerRepository) Update(ctx context.Context, borrowerID int64, fields Fields) error {
	ret := _m.Called(ctx, borrowerID, fields)
	return ret.Error(0)
}

func (_m *MockBorrowerRepository) Delete(ctx context.Context, borrowerID int64) error {
	ret := _m.Called(ctx, borrowerID)
	return ret.Error(0)
}

var _ Repository = (*MockBorrowerRepository)(nil)

type MockInvalidator struct {
	mock.Mock
}

func (_m *MockInvalidator) Invalidate(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

var _ Invalidator = (*MockInvalidator)(nil)
