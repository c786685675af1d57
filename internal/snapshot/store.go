package snapshot

import (
	"context"
	"fmt"
	"lending-admin/internal/domain/borrower"
	"lending-admin/internal/domain/customer"
	"lending-admin/internal/infrastructure/monitoring"
	"lending-admin/internal/pkg/apperrors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultReloadTimeout = 30 * time.Second

// Snapshot is an immutable copy of the record store at one point in time.
// When the last reload failed, Err is set and both lists are empty.
type Snapshot struct {
	Version   uint64
	Borrowers []*borrower.Borrower
	Customers []*customer.Customer
	LoadedAt  time.Time
	Err       error
}

func (s Snapshot) Failed() bool {
	return s.Err != nil
}

// Store holds the current snapshot. It is only ever replaced wholesale by a
// full reload of both lists; it is never patched.
type Store struct {
	borrowers borrower.Repository
	customers customer.Repository
	logger    *slog.Logger
	now       func() time.Time

	reloadTimeout time.Duration

	mu       sync.RWMutex
	current  Snapshot
	issued   uint64
	applied  uint64
	versions uint64
}

var _ borrower.Invalidator = (*Store)(nil)

func NewStore(borrowers borrower.Repository, customers customer.Repository, logger *slog.Logger) *Store {
	if borrowers == nil || customers == nil {
		panic("snapshot store repositories cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Store{
		borrowers: borrowers,
		customers: customers,
		logger:    logger.With(slog.String("component", "snapshotStore")),
		now:       time.Now,

		reloadTimeout: defaultReloadTimeout,
	}
}

func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Invalidate discards the current snapshot and reloads it.
func (s *Store) Invalidate(ctx context.Context) error {
	s.logger.DebugContext(ctx, "Snapshot invalidated, reloading")
	return s.Refresh(ctx)
}

// Refresh fetches borrowers and customers concurrently and swaps in the
// result. If either fetch fails the snapshot becomes empty with Err set.
// Fetches are not cancelled when a newer one starts or when the caller's
// context is cancelled; they are bounded by the store's reload timeout. A
// fetch that completes after a newer one has already been applied is
// discarded.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.reloadTimeout)
	defer cancel()

	start := s.now()
	borrowers, customers, err := s.fetch(fetchCtx)
	monitoring.RecordSnapshotRefresh(err, len(borrowers), len(customers), s.now().Sub(start))

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.applied {
		s.logger.InfoContext(ctx, "Discarding superseded snapshot reload", slog.Uint64("seq", seq), slog.Uint64("applied", s.applied))
		return err
	}
	s.applied = seq
	s.versions++

	if err != nil {
		s.logger.ErrorContext(ctx, "Snapshot reload failed, clearing records", slog.Any("error", err))
		s.current = Snapshot{
			Version:   s.versions,
			Borrowers: []*borrower.Borrower{},
			Customers: []*customer.Customer{},
			LoadedAt:  s.now(),
			Err:       err,
		}
		return err
	}

	s.current = Snapshot{
		Version:   s.versions,
		Borrowers: borrowers,
		Customers: customers,
		LoadedAt:  s.now(),
	}
	s.logger.InfoContext(ctx, "Snapshot reloaded",
		slog.Uint64("version", s.versions),
		slog.Int("borrowers", len(borrowers)),
		slog.Int("customers", len(customers)),
	)
	return nil
}

func (s *Store) fetch(ctx context.Context) ([]*borrower.Borrower, []*customer.Customer, error) {
	var (
		borrowers []*borrower.Borrower
		customers []*customer.Customer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.borrowers.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to list borrowers: %w", err)
		}
		borrowers = normalizeBorrowers(list)
		return nil
	})
	g.Go(func() error {
		list, err := s.customers.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to list customers: %w", err)
		}
		customers = normalizeCustomers(list)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", apperrors.ErrSnapshotUnavailable, err)
	}
	return borrowers, customers, nil
}

// normalizeBorrowers copies every record so the snapshot owns its data, and
// drops nil entries.
func normalizeBorrowers(list []*borrower.Borrower) []*borrower.Borrower {
	out := make([]*borrower.Borrower, 0, len(list))
	for _, b := range list {
		if b == nil {
			continue
		}
		cp := *b
		cp.Normalize()
		out = append(out, &cp)
	}
	return out
}

func normalizeCustomers(list []*customer.Customer) []*customer.Customer {
	out := make([]*customer.Customer, 0, len(list))
	for _, c := range list {
		if c == nil {
			continue
		}
		cp := *c
		cp.Normalize()
		out = append(out, &cp)
	}
	return out
}
