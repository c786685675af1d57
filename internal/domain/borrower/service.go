package borrower

import (
	"context"
	"errors"
	"fmt"
	"lending-admin/internal/domain/customer"
	"lending-admin/internal/event"
	"lending-admin/internal/infrastructure/monitoring"
	"lending-admin/internal/pkg/apperrors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"

	publishTimeout = 5 * time.Second
)

// Invalidator discards the in-memory borrower snapshot and reloads it. It is
// called after every successful mutation; the snapshot is never patched.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type BorrowerService interface {
	CreateBorrower(ctx context.Context, fields Fields) (*Borrower, error)
	UpdateBorrower(ctx context.Context, borrowerID int64, fields Fields) error
	DeleteBorrower(ctx context.Context, borrowerID int64) error
}

var _ BorrowerService = (*borrowerService)(nil)

type borrowerService struct {
	repo        Repository
	customers   customer.Repository
	invalidator Invalidator
	pub         event.Publisher
	logger      *slog.Logger
}

func NewBorrowerService(repo Repository, customers customer.Repository, invalidator Invalidator, pub event.Publisher, logger *slog.Logger) BorrowerService {
	if repo == nil || customers == nil || invalidator == nil {
		panic("borrower service dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewBorrowerService, using default stderr handler")
	}
	if pub == nil {
		pub = event.NoopPublisher{}
	}
	return &borrowerService{
		repo:        repo,
		customers:   customers,
		invalidator: invalidator,
		pub:         pub,
		logger:      logger.With(slog.String("component", "borrowerService")),
	}
}

func newRefNo() string {
	return "BRW-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *borrowerService) CreateBorrower(ctx context.Context, fields Fields) (*Borrower, error) {
	s.logger.InfoContext(ctx, "Attempting to create borrower", slog.String("customerID", fields.CustomerID))

	fields = fields.normalized()
	if err := fields.Validate(); err != nil {
		s.logger.WarnContext(ctx, "Validation failed", slog.Any("error", err))
		return nil, err
	}

	if _, err := s.customers.FindByID(ctx, fields.CustomerID); err != nil {
		if errors.Is(err, customer.ErrNotFound) || errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Referenced customer does not exist", slog.String("customerID", fields.CustomerID))
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, fields.CustomerID)
		}
		s.logger.ErrorContext(ctx, "Failed to look up customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	b := &Borrower{
		CustomerID: fields.CustomerID,
		RefNo:      newRefNo(),
		FullName:   fields.FullName,
		ContactNo:  fields.ContactNo,
		Address:    fields.Address,
		Email:      fields.Email,
	}

	err := s.repo.Create(ctx, b)
	monitoring.RecordMutation(opCreate, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to create borrower", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create borrower: %w", err)
	}

	s.logger.InfoContext(ctx, "Borrower created", slog.Int64("borrowerID", b.BorrowerID), slog.String("refNo", b.RefNo))
	s.afterMutation(ctx, event.BorrowerCreated, event.BorrowerEventPayload{
		BorrowerID: b.BorrowerID,
		CustomerID: b.CustomerID,
		RefNo:      b.RefNo,
		FullName:   b.FullName,
	})
	return b, nil
}

func (s *borrowerService) UpdateBorrower(ctx context.Context, borrowerID int64, fields Fields) error {
	logger := s.logger.With(slog.Int64("borrowerID", borrowerID))
	logger.InfoContext(ctx, "Attempting to update borrower")

	if borrowerID <= 0 {
		return fmt.Errorf("%w: borrower ID must be positive", apperrors.ErrInvalidArgument)
	}
	fields = fields.normalized()
	if err := fields.Validate(); err != nil {
		logger.WarnContext(ctx, "Validation failed", slog.Any("error", err))
		return err
	}

	err := s.repo.Update(ctx, borrowerID, fields)
	monitoring.RecordMutation(opUpdate, err)
	if err != nil {
		logger.ErrorContext(ctx, "Repository failed to update borrower", slog.Any("error", err))
		return fmt.Errorf("failed to update borrower: %w", err)
	}

	logger.InfoContext(ctx, "Borrower updated")
	s.afterMutation(ctx, event.BorrowerUpdated, event.BorrowerEventPayload{
		BorrowerID: borrowerID,
		CustomerID: fields.CustomerID,
		FullName:   fields.FullName,
	})
	return nil
}

func (s *borrowerService) DeleteBorrower(ctx context.Context, borrowerID int64) error {
	logger := s.logger.With(slog.Int64("borrowerID", borrowerID))
	logger.InfoContext(ctx, "Attempting to delete borrower")

	if borrowerID <= 0 {
		return fmt.Errorf("%w: borrower ID must be positive", apperrors.ErrInvalidArgument)
	}

	err := s.repo.Delete(ctx, borrowerID)
	monitoring.RecordMutation(opDelete, err)
	if err != nil {
		logger.ErrorContext(ctx, "Repository failed to delete borrower", slog.Any("error", err))
		return fmt.Errorf("failed to delete borrower: %w", err)
	}

	logger.InfoContext(ctx, "Borrower deleted")
	s.afterMutation(ctx, event.BorrowerDeleted, event.BorrowerEventPayload{BorrowerID: borrowerID})
	return nil
}

// afterMutation publishes the change and reloads the snapshot. Neither step
// can undo the committed mutation, so failures are only logged; a failed
// reload leaves the snapshot in its error state until the next refresh.
// Both steps run even if the request that caused the mutation goes away.
func (s *borrowerService) afterMutation(ctx context.Context, t event.BorrowerEventType, payload event.BorrowerEventPayload) {
	ctx = context.WithoutCancel(ctx)

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := s.pub.PublishBorrowerEvent(pubCtx, event.NewBorrowerEvent(t, payload)); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish borrower event", slog.String("type", string(t)), slog.Any("error", err))
	}
	if err := s.invalidator.Invalidate(ctx); err != nil {
		s.logger.ErrorContext(ctx, "Snapshot reload after mutation failed", slog.Any("error", err))
	}
}
