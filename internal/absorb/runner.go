package absorb

import (
	"context"
	"errors"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"alchemia/internal/inventory"
	"alchemia/internal/logging"
)

// Options tunes the classification pass.
type Options struct {
	// Workers bounds the worker pool. Values below 1 use GOMAXPROCS.
	Workers int
}

// Outcome pairs an entry with its classification. Err is set only for
// invalid entries, which carry no Result and are excluded from routing.
type Outcome struct {
	Entry  inventory.Entry `json:"entry"`
	Result Result          `json:"classification"`
	Err    string          `json:"error,omitempty"`
}

// Stats aggregates per-rule counts for one classification pass.
type Stats struct {
	Total          int         `json:"total"`
	ByRule         map[int]int `json:"by_rule"`
	Classified     int         `json:"classified"`
	PendingReview  int         `json:"pending_review"`
	InvalidEntries int         `json:"invalid_entries"`
}

// Run classifies every entry using a bounded worker pool. Workers share the
// immutable chain context without locks and write into a preallocated result
// slot per entry, so output order always equals input order. Per-entry
// failures never abort the batch; only context cancellation does.
func Run(ctx context.Context, entries []inventory.Entry, cc *Context, opts Options, logger *slog.Logger) ([]Outcome, Stats, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.WithComponent(logger, "absorb")

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]Outcome, len(entries))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i := range entries {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			entry := entries[i]
			result, err := Classify(groupCtx, entry, cc)
			if err != nil {
				if !errors.Is(err, ErrInvalidEntry) {
					return err
				}
				outcomes[i] = Outcome{Entry: entry, Err: err.Error()}
				return nil
			}
			outcomes[i] = Outcome{Entry: entry, Result: result}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{Total: len(entries), ByRule: make(map[int]int)}
	for i := range outcomes {
		if outcomes[i].Err != "" {
			stats.InvalidEntries++
			continue
		}
		rule := outcomes[i].Result.Rule
		stats.ByRule[rule]++
		if rule == 7 {
			stats.PendingReview++
		} else {
			stats.Classified++
		}
	}

	logger.Info("classification complete",
		logging.Int("total", stats.Total),
		logging.Int("classified", stats.Classified),
		logging.Int("pending_review", stats.PendingReview),
		logging.Int("invalid", stats.InvalidEntries))
	for rule := 1; rule <= 7; rule++ {
		if count := stats.ByRule[rule]; count > 0 {
			logger.Debug("rule tally", logging.Int(logging.FieldRule, rule), logging.Int("count", count))
		}
	}

	return outcomes, stats, nil
}

// RuleName returns the canonical name for a rule number, for reports.
func RuleName(rule int) string {
	switch rule {
	case 1:
		return "direct_repo_match"
	case 2:
		return "name_variant_match"
	case 3:
		return "staging_dir_match"
	case 4:
		return "special_container"
	case 5:
		return "manifest_category"
	case 6:
		return "content_keyword"
	case 7:
		return "unresolved"
	default:
		return "unknown"
	}
}
