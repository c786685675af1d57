package listing

import (
	"context"
	"errors"
	"fmt"
	"lending-admin/internal/domain/customer"
	"lending-admin/internal/pkg/apperrors"
	"lending-admin/internal/snapshot"
	"log/slog"
)

type SnapshotSource interface {
	Current() snapshot.Snapshot
}

// Service serves borrower views and the customer list from the current
// snapshot.
type Service struct {
	source SnapshotSource
	cache  *ViewCache
	logger *slog.Logger
}

func NewService(source SnapshotSource, cache *ViewCache, logger *slog.Logger) *Service {
	if source == nil {
		panic("snapshot source cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if cache == nil {
		cache = NewViewCache(0)
	}
	return &Service{
		source: source,
		cache:  cache,
		logger: logger.With(slog.String("component", "listingService")),
	}
}

// BorrowerView returns the table for state. A failed snapshot yields
// ErrSnapshotUnavailable and no rows.
func (s *Service) BorrowerView(ctx context.Context, state ViewState) (View, error) {
	snap := s.source.Current()
	if snap.Failed() {
		s.logger.WarnContext(ctx, "Borrower view requested while snapshot is unavailable", slog.Any("error", snap.Err))
		return View{State: state, Rows: []Row{}}, unavailable(snap.Err)
	}

	v, err := s.cache.View(snap.Version, snap.Borrowers, state)
	if err != nil {
		return View{}, err
	}
	s.logger.DebugContext(ctx, "Borrower view built",
		slog.String("tab", string(state.Tab)),
		slog.Int("page", state.Page),
		slog.Int("rows", len(v.Rows)),
		slog.Uint64("version", snap.Version),
	)
	return v, nil
}

func (s *Service) Customers(ctx context.Context, query string) ([]*customer.Customer, error) {
	snap := s.source.Current()
	if snap.Failed() {
		return []*customer.Customer{}, unavailable(snap.Err)
	}
	out := make([]*customer.Customer, 0, len(snap.Customers))
	for _, c := range snap.Customers {
		if c.Matches(query) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Summary describes the current snapshot.
func (s *Service) Summary() snapshot.Snapshot {
	return s.source.Current()
}

func unavailable(err error) error {
	if errors.Is(err, apperrors.ErrSnapshotUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", apperrors.ErrSnapshotUnavailable, err)
}
