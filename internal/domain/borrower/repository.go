package borrower

import "context"

type Repository interface {
	// FindAll returns every borrower with IsRepeatCustomer and LoanCount
	// populated, ordered by BorrowerID.
	FindAll(ctx context.Context) ([]*Borrower, error)

	// Create inserts b and sets its BorrowerID.
	Create(ctx context.Context, b *Borrower) error

	Update(ctx context.Context, borrowerID int64, fields Fields) error

	Delete(ctx context.Context, borrowerID int64) error
}
