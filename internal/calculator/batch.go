package calculator

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// AccountInput is one account to classify in a batch.
// LastPayment is an unparsed date string; empty means never paid.
type AccountInput struct {
	LastPayment    string
	IsDisconnected bool
}

// ClassifyBatch classifies accounts concurrently with at most workers
// goroutines. Results are returned in input order. The first unparseable date
// cancels the batch and is returned wrapped with its index.
func (t Thresholds) ClassifyBatch(ctx context.Context, accounts []AccountInput, now time.Time, workers int) ([]Status, error) {
	results := make([]Status, len(accounts))
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, acc := range accounts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			st, err := t.ClassifyString(acc.LastPayment, acc.IsDisconnected, now)
			if err != nil {
				return fmt.Errorf("account %d: %w", i, err)
			}
			results[i] = st
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
