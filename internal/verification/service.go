package verification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"medicinna/internal/registry"
	"medicinna/internal/scanlog"
	verifmetrics "medicinna/internal/verification/metrics"
	dErrors "medicinna/pkg/domain-errors"
	"medicinna/pkg/requestcontext"
)

// AnonymousActor marks scans performed without an authenticated identity
// (IoT devices, public web verifiers).
const AnonymousActor = "api_user"

// Result is what a verification returns to the caller. Batch is nil for FAKE
// verdicts; its absence is part of the answer, not an error.
type Result struct {
	Status  Verdict
	Details string
	Batch   *registry.Batch
}

// Service is the verification engine. It owns the only non-trivial branching
// in the system: registry lookup plus the rule cascade, with an unconditional
// audit append. Collaborators arrive via the constructor so unit tests run
// without a live database.
type Service struct {
	registry  Registry
	audit     AuditLog
	announcer Announcer
	rules     []Rule
	logger    *slog.Logger
	metrics   *verifmetrics.Metrics
}

// NewService wires the engine. announcer and metrics may be nil.
func NewService(reg Registry, audit AuditLog, announcer Announcer, rules []Rule, logger *slog.Logger, metrics *verifmetrics.Metrics) (*Service, error) {
	if reg == nil {
		return nil, errors.New("registry is required")
	}
	if audit == nil {
		return nil, errors.New("audit log is required")
	}
	if len(rules) == 0 {
		return nil, errors.New("at least one rule is required")
	}
	return &Service{
		registry:  reg,
		audit:     audit,
		announcer: announcer,
		rules:     rules,
		logger:    logger,
		metrics:   metrics,
	}, nil
}

// Verify classifies a batch code and records the attempt. The audit append is
// part of the call's contract: if it fails, the whole call fails, because a
// verdict the caller cannot prove was recorded is not trustworthy. A missing
// registry record is the FAKE classification, never an error.
func (s *Service) Verify(ctx context.Context, batchCode string) (*Result, error) {
	start := time.Now()
	now := requestcontext.Now(ctx)

	status := VerdictFake
	details := DetailFake
	var found *registry.Batch

	batch, err := s.registry.FindByCode(ctx, batchCode)
	switch {
	case err == nil:
		found = batch
		status, details = Classify(s.rules, *batch, now)
	case errors.Is(err, registry.ErrNotFound):
		// Forged or unknown code; the FAKE verdict below is itself an
		// auditable security event.
	default:
		return nil, dErrors.Wrap(dErrors.CodeInternal, "batch lookup failed", err)
	}

	actor := requestcontext.Login(ctx)
	if actor == "" {
		actor = AnonymousActor
	}

	entry := &scanlog.Entry{
		BatchCode: batchCode,
		Status:    string(status),
		ScannedBy: actor,
	}
	if _, err := s.audit.Append(ctx, entry); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "scan audit write failed", err)
	}

	if s.announcer != nil {
		s.announcer.Publish(ctx, *entry)
	}

	s.metrics.IncrementVerdict(string(status))
	s.metrics.ObserveVerifyLatency(time.Since(start))
	s.logger.InfoContext(ctx, "batch verified",
		"request_id", requestcontext.RequestID(ctx),
		"batch_code", batchCode,
		"status", status,
		"scanned_by", actor,
	)

	return &Result{Status: status, Details: details, Batch: found}, nil
}
