// Package reporting serves the read-only views derived from the scan audit
// log. It never writes.
package reporting

import (
	"context"
	"errors"

	"medicinna/internal/scanlog"
	dErrors "medicinna/pkg/domain-errors"
)

// HistoryLimit caps how many recent scans the history view returns.
const HistoryLimit = 50

// Service answers stats and history queries over the scan log.
type Service struct {
	log scanlog.Store
}

// NewService wires the reporting read model.
func NewService(log scanlog.Store) (*Service, error) {
	if log == nil {
		return nil, errors.New("scan log store is required")
	}
	return &Service{log: log}, nil
}

// Stats counts the full log partitioned by FAKE verdicts.
func (s *Service) Stats(ctx context.Context) (scanlog.Summary, error) {
	summary, err := s.log.Aggregate(ctx)
	if err != nil {
		return scanlog.Summary{}, dErrors.Wrap(dErrors.CodeInternal, "could not aggregate scan log", err)
	}
	return summary, nil
}

// History returns up to HistoryLimit most recent scans, newest first.
func (s *Service) History(ctx context.Context) ([]scanlog.Entry, error) {
	entries, err := s.log.ListRecent(ctx, HistoryLimit)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "could not list scan history", err)
	}
	return entries, nil
}
