package postgres

import (
	"context"
	"fmt"
	"lending-admin/internal/domain/borrower"
	"lending-admin/internal/infrastructure/monitoring"
	"lending-admin/internal/pkg/apperrors"
	"log/slog"
	"time"
)

const (
	// The repeat partition uses the trimmed customer ID, the same key the
	// listing groups by.
	listBorrowersSQL = `
	SELECT b.id, BTRIM(b.customer_id), b.ref_no,
		COALESCE(b.full_name, ''), COALESCE(b.contact_no, ''), COALESCE(b.address, ''), COALESCE(b.email, ''),
		COUNT(*) OVER (PARTITION BY BTRIM(b.customer_id)) > 1 AS is_repeat_customer,
		COUNT(*) OVER (PARTITION BY BTRIM(b.customer_id)) AS loan_count
	FROM borrowers b
	ORDER BY b.id`

	insertBorrowerSQL = `
	INSERT INTO borrowers (customer_id, ref_no, full_name, contact_no, address, email, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	RETURNING id`

	updateBorrowerSQL = `
	UPDATE borrowers
	SET customer_id = $1, full_name = $2, contact_no = $3, address = $4, email = $5, updated_at = NOW()
	WHERE id = $6`

	deleteBorrowerSQL = `DELETE FROM borrowers WHERE id = $1`
)

type BorrowerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ borrower.Repository = (*BorrowerRepository)(nil)

func NewBorrowerRepository(db DBPool, logger *slog.Logger) *BorrowerRepository {
	return &BorrowerRepository{db: db, logger: logger.With("component", "BorrowerRepository")}
}

func (r *BorrowerRepository) FindAll(ctx context.Context) (_ []*borrower.Borrower, err error) {
	logCtx := r.logger.With(slog.String("operation", "FindAll"))
	start := time.Now()
	defer func() { monitoring.RecordDBQuery("list_borrowers", err, time.Since(start)) }()

	rows, err := r.db.Query(ctx, listBorrowersSQL)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to query borrowers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query borrowers: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	borrowers := make([]*borrower.Borrower, 0)
	for rows.Next() {
		var b borrower.Borrower
		if err = rows.Scan(
			&b.BorrowerID, &b.CustomerID, &b.RefNo,
			&b.FullName, &b.ContactNo, &b.Address, &b.Email,
			&b.IsRepeatCustomer, &b.LoanCount,
		); err != nil {
			logCtx.ErrorContext(ctx, "Failed to scan borrower row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan borrower: %w", apperrors.ErrDatabase, err)
		}
		borrowers = append(borrowers, &b)
	}
	if err = rows.Err(); err != nil {
		logCtx.ErrorContext(ctx, "Error iterating borrower rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating borrowers: %w", apperrors.ErrDatabase, err)
	}

	logCtx.DebugContext(ctx, "Borrowers fetched", slog.Int("count", len(borrowers)))
	return borrowers, nil
}

func (r *BorrowerRepository) Create(ctx context.Context, b *borrower.Borrower) (err error) {
	logCtx := r.logger.With(slog.String("operation", "Create"), slog.String("refNo", b.RefNo))
	start := time.Now()
	defer func() { monitoring.RecordDBQuery("insert_borrower", err, time.Since(start)) }()

	err = r.db.QueryRow(ctx, insertBorrowerSQL,
		b.CustomerID, b.RefNo, b.FullName, b.ContactNo, b.Address, b.Email,
	).Scan(&b.BorrowerID)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to insert borrower", slog.Any("error", err))
		return translateDBError(err, logCtx)
	}

	logCtx.InfoContext(ctx, "Borrower inserted", slog.Int64("borrowerID", b.BorrowerID))
	return nil
}

func (r *BorrowerRepository) Update(ctx context.Context, borrowerID int64, fields borrower.Fields) (err error) {
	logCtx := r.logger.With(slog.String("operation", "Update"), slog.Int64("borrowerID", borrowerID))
	start := time.Now()
	defer func() { monitoring.RecordDBQuery("update_borrower", err, time.Since(start)) }()

	tag, err := r.db.Exec(ctx, updateBorrowerSQL,
		fields.CustomerID, fields.FullName, fields.ContactNo, fields.Address, fields.Email, borrowerID,
	)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to update borrower", slog.Any("error", err))
		return translateDBError(err, logCtx)
	}
	if tag.RowsAffected() == 0 {
		logCtx.WarnContext(ctx, "Borrower not found for update")
		return fmt.Errorf("%w: borrower %d", apperrors.ErrNotFound, borrowerID)
	}

	logCtx.InfoContext(ctx, "Borrower updated")
	return nil
}

func (r *BorrowerRepository) Delete(ctx context.Context, borrowerID int64) (err error) {
	logCtx := r.logger.With(slog.String("operation", "Delete"), slog.Int64("borrowerID", borrowerID))
	start := time.Now()
	defer func() { monitoring.RecordDBQuery("delete_borrower", err, time.Since(start)) }()

	tag, err := r.db.Exec(ctx, deleteBorrowerSQL, borrowerID)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to delete borrower", slog.Any("error", err))
		return translateDBError(err, logCtx)
	}
	if tag.RowsAffected() == 0 {
		logCtx.WarnContext(ctx, "Borrower not found for delete")
		return fmt.Errorf("%w: borrower %d", apperrors.ErrNotFound, borrowerID)
	}

	logCtx.InfoContext(ctx, "Borrower deleted")
	return nil
}
