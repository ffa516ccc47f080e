// Package service builds duplicate and hotness reports over a candidate
// dataset.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/okian/ats/internal/adapters/repository"
	"github.com/okian/ats/internal/domain/dedupe"
	"github.com/okian/ats/internal/domain/model"
	"github.com/okian/ats/internal/domain/query"
	"github.com/okian/ats/internal/domain/scoring"
	"github.com/okian/ats/internal/domain/types"
	"github.com/okian/ats/pkg/logger"
	"github.com/okian/ats/pkg/metrics"
)

const dateLayout = "2006-01-02"

// Service reads a dataset from a Store and reports on it.
type Service struct {
	mu sync.RWMutex

	store        repository.Store
	detector     *dedupe.Detector
	scorer       *scoring.Scorer
	levelWeights query.LevelWeights

	// State
	reports      int
	failures     int
	lastDuration time.Duration

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the dataset source.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDetector sets the duplicate detector.
func WithDetector(d *dedupe.Detector) Option {
	return func(s *Service) {
		if d != nil {
			s.detector = d
		}
	}
}

// WithScorer sets the suitability scorer.
func WithScorer(sc *scoring.Scorer) Option {
	return func(s *Service) {
		if sc != nil {
			s.scorer = sc
		}
	}
}

// WithLevelWeights sets the weights used to order candidates in the hotness list.
func WithLevelWeights(weights query.LevelWeights) Option {
	return func(s *Service) {
		if len(weights) > 0 {
			s.levelWeights = weights
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service. Without WithStore it serves an empty dataset.
func New(opts ...Option) *Service {
	s := &Service{
		store:        repository.NewMemoryStore(nil, nil),
		detector:     dedupe.NewDetector(),
		scorer:       scoring.NewScorer(),
		levelWeights: query.DefaultLevelWeights(),
		logger:       logger.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Report loads the dataset and builds the full report.
func (s *Service) Report(ctx context.Context) (types.Report, error) {
	start := time.Now()
	r, err := s.buildReport(ctx)
	elapsed := time.Since(start)

	s.mu.Lock()
	s.lastDuration = elapsed
	if err != nil {
		s.failures++
	} else {
		s.reports++
	}
	s.mu.Unlock()

	metrics.RecordReportDuration(float64(elapsed.Microseconds()) / 1000) //nolint:mnd // us -> ms
	if err != nil {
		metrics.RecordReportError()
		s.logger.Error(ctx, "report failed", logger.Error(err))
		return types.Report{}, err
	}
	metrics.RecordReportGenerated()
	s.logger.Info(ctx, "report built",
		logger.Int("candidates", r.Candidates),
		logger.Int("jobs", r.Jobs),
		logger.Int("clusters", r.DuplicateClusters),
		logger.String("elapsed", elapsed.String()),
	)
	return r, nil
}

func (s *Service) buildReport(ctx context.Context) (types.Report, error) {
	candidates, err := s.store.Candidates(ctx)
	if err != nil {
		return types.Report{}, fmt.Errorf("load candidates: %w", err)
	}
	jobs, err := s.store.Jobs(ctx)
	if err != nil {
		return types.Report{}, fmt.Errorf("load jobs: %w", err)
	}
	metrics.RecordCandidatesProcessed(len(candidates))
	metrics.RecordJobsProcessed(len(jobs))
	s.logger.Debug(ctx, "dataset loaded",
		logger.Int("candidates", len(candidates)),
		logger.Int("jobs", len(jobs)),
	)

	r := types.Report{
		Candidates: len(candidates),
		Jobs:       len(jobs),
	}

	// Duplicates
	idx := s.detector.BuildIndex(candidates)
	r.IndexKeys = idx.Len()
	metrics.UpdateIndexBuckets(idx.Len())

	clusters := s.detector.Clusters(candidates)
	r.DuplicateClusters = len(clusters)
	r.Clusters = make([]types.Cluster, 0, len(clusters))
	clustered := 0
	for _, c := range clusters {
		r.Clusters = append(r.Clusters, types.Cluster{Key: c.Key, Members: refs(c.Members)})
		clustered += len(c.Members)
	}
	metrics.UpdateDuplicateClusters(len(clusters))
	metrics.UpdateDuplicateCandidates(clustered)
	s.logger.Debug(ctx, "duplicates detected",
		logger.Int("index_keys", r.IndexKeys),
		logger.Int("clusters", len(clusters)),
		logger.Int("window_days", s.detector.WindowDays()),
	)

	if err := ctx.Err(); err != nil {
		return types.Report{}, err
	}

	// Hotness, listed in weighted skill order
	ordered := query.OrderByWeightedSkills(candidates, s.levelWeights)
	r.Hotness = make([]types.Hotness, 0, len(ordered))
	for _, c := range ordered {
		hot := 0
		for _, j := range jobs {
			score := s.scorer.Suitability(c, j)
			metrics.RecordSuitabilityScore(score)
			if score > s.scorer.HotThreshold() {
				hot++
			}
		}
		r.Hotness = append(r.Hotness, types.Hotness{Candidate: ref(c), HotJobs: hot})
	}
	if hottest, hot, ok := s.scorer.HottestCandidate(candidates, jobs); ok {
		r.Hottest = &types.Hotness{Candidate: ref(hottest), HotJobs: hot}
		metrics.UpdateHottestScore(hot)
	} else {
		metrics.UpdateHottestScore(0)
	}

	if err := ctx.Err(); err != nil {
		return types.Report{}, err
	}

	// Dataset statistics
	for _, m := range query.BusiestMonths(jobs) {
		r.BusiestMonths = append(r.BusiestMonths, m.String())
	}
	r.TopSkills = query.MostInDemandSkills(jobs)
	ratio, err := query.GenderRatio(candidates)
	switch {
	case err == nil:
		r.GenderRatio = &ratio
	case errors.Is(err, query.ErrNoMaleCandidates):
		s.logger.Debug(ctx, "gender ratio undefined", logger.Error(err))
	default:
		return types.Report{}, err
	}

	return r, nil
}

// Duplicates returns the possible duplicates of the stored candidate with the
// given id. The candidate itself is part of the result.
func (s *Service) Duplicates(ctx context.Context, id string) ([]model.Candidate, error) {
	c, err := s.store.Candidate(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCandidateNotFound, id)
		}
		return nil, err
	}
	candidates, err := s.store.Candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	dups := s.detector.PossibleDuplicates(c, candidates)
	s.logger.Debug(ctx, "possible duplicates",
		logger.String("id", id),
		logger.String("key", s.detector.Key(c)),
		logger.Int("matches", len(dups)),
	)
	return dups, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]any{
		"reports":        s.reports,
		"failures":       s.failures,
		"lastDurationMs": s.lastDuration.Milliseconds(),
		"windowDays":     s.detector.WindowDays(),
		"hotThreshold":   s.scorer.HotThreshold(),
	}
}

func ref(c model.Candidate) types.CandidateRef {
	return types.CandidateRef{
		ID:          c.ID,
		Name:        c.Name,
		DateOfBirth: c.DateOfBirth.Format(dateLayout),
		Gender:      string(c.Gender),
	}
}

func refs(list []model.Candidate) []types.CandidateRef {
	out := make([]types.CandidateRef, len(list))
	for i, c := range list {
		out[i] = ref(c)
	}
	return out
}
