package pset

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Similarity is the pitch-measure (PM) similarity of two sets
type Similarity struct {
	SharedPitches   int `json:"shared_pitches"`   // |A ∩ B|
	SharedIntervals int `json:"shared_intervals"` // Σ min(rosterA[i], rosterB[i])
}

type similarityOptions struct {
	rosterA Roster
	rosterB Roster
}

// SimilarityOption supplies precomputed data to PMSimilarity
type SimilarityOption func(*similarityOptions)

// WithRosters supplies precomputed ic-rosters for both sets
func WithRosters(a, b Roster) SimilarityOption {
	return func(o *similarityOptions) {
		o.rosterA = a
		o.rosterB = b
	}
}

// WithRosterA supplies the precomputed ic-roster of the first set
func WithRosterA(r Roster) SimilarityOption {
	return func(o *similarityOptions) { o.rosterA = r }
}

// WithRosterB supplies the precomputed ic-roster of the second set
func WithRosterB(r Roster) SimilarityOption {
	return func(o *similarityOptions) { o.rosterB = r }
}

// PMSimilarity counts the pitches shared by a and b and the interval
// occurrences their ic-rosters have in common. Rosters not supplied through
// options are computed here; pass them when comparing one set against many.
func PMSimilarity(a, b Set, opts ...SimilarityOption) Similarity {
	var o similarityOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.rosterA == nil {
		o.rosterA = ICRoster(a)
	}
	if o.rosterB == nil {
		o.rosterB = ICRoster(b)
	}

	shared := 0
	for ic, countA := range o.rosterA {
		if countB, ok := o.rosterB[ic]; ok {
			shared += min(countA, countB)
		}
	}

	return Similarity{
		SharedPitches:   a.Intersection(b).Len(),
		SharedIntervals: shared,
	}
}

// PMSimilarityMany compares target against every candidate using at most
// workers goroutines (GOMAXPROCS when workers <= 0). The target roster is
// computed once. results[i] belongs to candidates[i]. A cancelled context
// stops the remaining comparisons and its error is returned.
func PMSimilarityMany(ctx context.Context, target Set, candidates []Set, workers int) ([]Similarity, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Similarity, len(candidates))
	rosterA := ICRoster(target)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, candidate := range candidates {
		i, candidate := i, candidate // per-iteration copy (pre-Go 1.22 loopvar semantics)
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = PMSimilarity(target, candidate, WithRosterA(rosterA))
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
