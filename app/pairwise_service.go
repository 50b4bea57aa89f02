package app

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"golinreg/domain/core"
	"golinreg/domain/regression"
	"golinreg/internal"
	"golinreg/internal/errors"
	"golinreg/ports"
)

// PairwiseService analyzes one independent variable against many dependents
type PairwiseService struct {
	analyzer    ports.AnalyzerPort
	concurrency int64
	logger      *internal.Logger
}

// NewPairwiseService creates a batch service running at most concurrency analyses at once
func NewPairwiseService(analyzer ports.AnalyzerPort, concurrency int) *PairwiseService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &PairwiseService{
		analyzer:    analyzer,
		concurrency: int64(concurrency),
		logger:      internal.NewComponentLogger("PairwiseService"),
	}
}

// Run analyzes independent against every candidate except itself. A failing
// pair is recorded in its outcome; only an invalid alpha, a batch with no
// dependents or cancellation fails the whole run.
func (s *PairwiseService) Run(ctx context.Context, independent ports.Column, candidates []ports.Column, alpha float64) (*ports.PairwiseSummary, error) {
	startTime := time.Now()
	batchID := core.NewAnalysisID()
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		return nil, errors.Newf(errors.CodeInvalidInput, core.ErrAlphaOutOfRange, "significance level %v", alpha)
	}

	var targets []ports.Column
	for _, c := range candidates {
		if c.Name != independent.Name {
			targets = append(targets, c)
		}
	}
	if len(targets) == 0 {
		return nil, errors.InvalidInput("no dependent columns to analyze against " + independent.Name)
	}

	s.logger.Info("Batch %s started: %s against %d columns (concurrency %d)",
		batchID, independent.Name, len(targets), s.concurrency)

	sem := semaphore.NewWeighted(s.concurrency)
	outcomes := make([]ports.PairOutcome, len(targets))
	var wg sync.WaitGroup

	for i, target := range targets {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(i int, target ports.Column) {
			defer wg.Done()
			defer sem.Release(1)
			outcomes[i] = s.analyzePair(independent, target, alpha)
		}(i, target)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		s.logger.Warn("Batch %s cancelled: %v", batchID, err)
		return nil, err
	}

	sortOutcomes(outcomes)
	summary := &ports.PairwiseSummary{
		BatchID:     batchID,
		Independent: independent.Name,
		Alpha:       alpha,
		Outcomes:    outcomes,
		RuntimeMs:   time.Since(startTime).Milliseconds(),
	}
	for _, o := range outcomes {
		if o.Result != nil {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}

	s.logger.Info("Batch %s completed in %dms (%d succeeded, %d failed)",
		batchID, summary.RuntimeMs, summary.Succeeded, summary.Failed)
	return summary, nil
}

func (s *PairwiseService) analyzePair(independent, dependent ports.Column, alpha float64) ports.PairOutcome {
	pair := regression.NewSamplePair(independent.Values, dependent.Values, independent.Name, dependent.Name)
	result, err := s.analyzer.Analyze(pair, alpha)
	if err != nil {
		s.logger.Debug("Pair %s/%s skipped: %v", independent.Name, dependent.Name, err)
		return ports.PairOutcome{Dependent: dependent.Name, Error: err.Error(), Code: errors.GetCode(err)}
	}
	return ports.PairOutcome{Dependent: dependent.Name, Result: &result}
}

// sortOutcomes orders successes by |r| descending, then failures, each tie broken by name
func sortOutcomes(outcomes []ports.PairOutcome) {
	sort.SliceStable(outcomes, func(i, j int) bool {
		a, b := outcomes[i], outcomes[j]
		if (a.Result == nil) != (b.Result == nil) {
			return a.Result != nil
		}
		if a.Result != nil {
			ra, rb := math.Abs(a.Result.Correlation.R), math.Abs(b.Result.Correlation.R)
			if ra != rb {
				return ra > rb
			}
		}
		return a.Dependent < b.Dependent
	})
}
