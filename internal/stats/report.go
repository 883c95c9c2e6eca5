package stats

import (
	"context"

	"github.com/verte-zerg/humanbench/internal/model"
)

// ResultLister is the read side of the result ledger.
type ResultLister interface {
	ListResults(ctx context.Context, mode *model.GameMode) ([]model.SessionResult, error)
}

// BuildReport loads every saved result and summarizes it per mode.
func BuildReport(ctx context.Context, st ResultLister) ([]model.ModeSummary, error) {
	results, err := st.ListResults(ctx, nil)
	if err != nil {
		return nil, err
	}
	return Summarize(results), nil
}

// History returns the most recent saved results, newest first, capped at limit.
func History(ctx context.Context, st ResultLister, limit int) ([]model.SessionResult, error) {
	results, err := st.ListResults(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]model.SessionResult, 0, len(results))
	for i := len(results) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, results[i])
	}
	return out, nil
}
