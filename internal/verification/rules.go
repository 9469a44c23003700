package verification

import (
	"fmt"
	"strconv"
	"time"

	"medicinna/internal/registry"
)

// DefaultPurityThreshold is the policy constant below which a batch
// classifies as substandard.
const DefaultPurityThreshold = 90.0

// Rule pairs a predicate with the verdict it produces. Rules are evaluated
// top-down with first-match-wins; the slice order IS the severity ranking,
// so it can be unit-tested directly instead of being buried in branching.
type Rule struct {
	Name    string
	Verdict Verdict
	Matches func(batch registry.Batch, now time.Time) bool
	Detail  func(batch registry.Batch) string
}

// DefaultRules returns the production rule cascade: recall > expiry > purity.
// A recall is a safety emergency signal and must never be masked by an
// otherwise compliant evaluation, so it sits first regardless of how the
// batch scores elsewhere.
func DefaultRules(purityThreshold float64) []Rule {
	return []Rule{
		{
			Name:    "recalled",
			Verdict: VerdictRecalled,
			Matches: func(batch registry.Batch, _ time.Time) bool {
				return batch.Recalled
			},
			Detail: func(registry.Batch) string {
				return "WARNING: This batch has been recalled!"
			},
		},
		{
			Name:    "expired",
			Verdict: VerdictExpired,
			Matches: func(batch registry.Batch, now time.Time) bool {
				return batch.ExpiryDate.Before(now)
			},
			Detail: func(batch registry.Batch) string {
				return "Expired on " + batch.ExpiryDate.Format("2006-01-02")
			},
		},
		{
			Name:    "substandard",
			Verdict: VerdictSubstandard,
			Matches: func(batch registry.Batch, _ time.Time) bool {
				return batch.Purity < purityThreshold
			},
			Detail: func(batch registry.Batch) string {
				return fmt.Sprintf("Purity level (%s%%) is unsafe.", strconv.FormatFloat(batch.Purity, 'f', 1, 64))
			},
		},
	}
}

// Classify runs the cascade against a found batch. This is pure domain logic:
// no I/O, no side effects. Codes with no registry record never reach here;
// the service classifies those as FAKE at lookup time.
func Classify(rules []Rule, batch registry.Batch, now time.Time) (Verdict, string) {
	for _, rule := range rules {
		if rule.Matches(batch, now) {
			return rule.Verdict, rule.Detail(batch)
		}
	}
	return VerdictValid, DetailValid
}
