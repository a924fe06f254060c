package presence

import (
	"context"
	"errors"
	"fmt"

	"github.com/genricoloni/mprisence/internal/domain"
	"go.uber.org/zap"
)

// CandidateObserver is told the outcome of every candidate evaluated by a Selector.
// err is nil for accepted candidates.
type CandidateObserver interface {
	ObserveCandidate(service string, err error)
}

// Selector picks the player whose snapshot should be reported
type Selector struct {
	logger    *zap.Logger
	source    domain.PropertySource
	extractor *Extractor
	filter    *Filter
	observer  CandidateObserver
}

// NewSelector creates a selector. observer may be nil.
func NewSelector(logger *zap.Logger, source domain.PropertySource, filter *Filter, observer CandidateObserver) *Selector {
	return &Selector{
		logger:    logger,
		source:    source,
		extractor: NewExtractor(logger, source),
		filter:    filter,
		observer:  observer,
	}
}

// Select lists the running players and returns the snapshot to report.
//
// Candidates are evaluated in bus order. The first accepted Playing snapshot
// is returned straight away and later players are not queried. Otherwise the
// last accepted snapshot wins. Candidates that fail extraction or filtering
// are skipped. domain.ErrNoMediaAvailable is returned when nothing is accepted.
func (s *Selector) Select(ctx context.Context) (domain.Snapshot, error) {
	players, err := s.source.ListPlayers(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %w", domain.ErrNoMediaAvailable, err)
	}

	var (
		fallback domain.Snapshot
		found    bool
	)
	for _, service := range players {
		snap, err := s.evaluate(ctx, service)
		s.observe(service, err)
		if err != nil {
			continue
		}

		if snap.Status == domain.StatusPlaying {
			return snap, nil
		}
		fallback = snap
		found = true
	}

	if !found {
		return domain.Snapshot{}, domain.ErrNoMediaAvailable
	}
	return fallback, nil
}

// evaluate extracts and filters a single candidate
func (s *Selector) evaluate(ctx context.Context, service string) (domain.Snapshot, error) {
	snap, err := s.extractor.Extract(ctx, service)
	if err != nil {
		s.logger.Warn("Failed to read player", zap.String("player", service), zap.Error(err))
		return domain.Snapshot{}, err
	}

	if err := s.filter.Check(snap); err != nil {
		s.logger.Debug("Output not allowed", zap.String("player", service), zap.Error(err))
		return domain.Snapshot{}, err
	}

	return snap, nil
}

func (s *Selector) observe(service string, err error) {
	if s.observer != nil {
		s.observer.ObserveCandidate(service, err)
	}
}

// RejectReasonOf returns the rejection reason carried by err, or "fetch_error"
// for anything else. It is meant for labelling metrics.
func RejectReasonOf(err error) string {
	var rejected *domain.FilterRejectedError
	if errors.As(err, &rejected) {
		return string(rejected.Reason)
	}
	return "fetch_error"
}
