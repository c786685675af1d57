package postgres

import (
	"context"
	"errors"
	"fmt"
	"lending-admin/internal/domain/customer"
	"lending-admin/internal/infrastructure/monitoring"
	"lending-admin/internal/pkg/apperrors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	customerColumns = `customer_id, COALESCE(full_name, ''), COALESCE(phone, ''), COALESCE(email, ''), COALESCE(address, '')`

	listCustomersSQL = `SELECT ` + customerColumns + ` FROM customers ORDER BY customer_id`

	findCustomerSQL = `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1`
)

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.Repository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	return &CustomerRepository{db: db, logger: logger.With("component", "CustomerRepository")}
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var c customer.Customer
	if err := row.Scan(&c.CustomerID, &c.FullName, &c.Phone, &c.Email, &c.Address); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) (_ []*customer.Customer, err error) {
	logCtx := r.logger.With(slog.String("operation", "FindAll"))
	start := time.Now()
	defer func() { monitoring.RecordDBQuery("list_customers", err, time.Since(start)) }()

	rows, err := r.db.Query(ctx, listCustomersSQL)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customers: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		c, scanErr := scanCustomer(rows)
		if scanErr != nil {
			err = scanErr
			logCtx.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan customer: %w", apperrors.ErrDatabase, err)
		}
		customers = append(customers, c)
	}
	if err = rows.Err(); err != nil {
		logCtx.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating customers: %w", apperrors.ErrDatabase, err)
	}

	logCtx.DebugContext(ctx, "Customers fetched", slog.Int("count", len(customers)))
	return customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID string) (_ *customer.Customer, err error) {
	logCtx := r.logger.With(slog.String("operation", "FindByID"), slog.String("customerID", customerID))
	start := time.Now()
	defer func() {
		// A missing customer is an answer, not a failed query.
		queryErr := err
		if errors.Is(err, customer.ErrNotFound) {
			queryErr = nil
		}
		monitoring.RecordDBQuery("find_customer", queryErr, time.Since(start))
	}()

	c, err := scanCustomer(r.db.QueryRow(ctx, findCustomerSQL, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logCtx.DebugContext(ctx, "Customer not found")
			return nil, customer.ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Failed to fetch customer", slog.Any("error", err))
		return nil, translateDBError(err, logCtx)
	}
	return c, nil
}
