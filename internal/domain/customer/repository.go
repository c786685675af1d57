package customer

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("customer not found")

type Repository interface {
	FindAll(ctx context.Context) ([]*Customer, error)

	FindByID(ctx context.Context, customerID string) (*Customer, error)
}
