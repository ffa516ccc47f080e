// Package repository provides read-only access to candidate and job datasets.
package repository

import (
	"context"
	"slices"

	"github.com/okian/ats/internal/domain/model"
)

// Store provides read access to a candidate/job dataset.
type Store interface {
	// Candidates returns every candidate in dataset order.
	Candidates(ctx context.Context) ([]model.Candidate, error)
	// Jobs returns every job in dataset order.
	Jobs(ctx context.Context) ([]model.Job, error)
	// Candidate returns the candidate with the given ID.
	// Returns ErrNotFound if the ID is unknown.
	Candidate(ctx context.Context, id string) (model.Candidate, error)
}

// snapshot is an immutable view of a dataset. Readers get copies of the
// slices so callers can sort or filter them freely.
type snapshot struct {
	candidates []model.Candidate
	jobs       []model.Job
	byID       map[string]int
}

func newSnapshot(candidates []model.Candidate, jobs []model.Job) *snapshot {
	s := &snapshot{
		candidates: candidates,
		jobs:       jobs,
		byID:       make(map[string]int, len(candidates)),
	}
	for i, c := range candidates {
		if c.ID == "" {
			continue
		}
		if _, ok := s.byID[c.ID]; !ok {
			s.byID[c.ID] = i
		}
	}
	return s
}

func (s *snapshot) candidate(id string) (model.Candidate, error) {
	i, ok := s.byID[id]
	if !ok {
		return model.Candidate{}, ErrNotFound
	}
	return s.candidates[i], nil
}

// MemoryStore serves fixed in-memory slices.
type MemoryStore struct {
	snap *snapshot
}

// NewMemoryStore copies candidates and jobs into a new store. Candidates with
// an empty ID are listed but cannot be fetched by ID.
func NewMemoryStore(candidates []model.Candidate, jobs []model.Job) *MemoryStore {
	return &MemoryStore{snap: newSnapshot(slices.Clone(candidates), slices.Clone(jobs))}
}

func (s *MemoryStore) Candidates(ctx context.Context) ([]model.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.snap.candidates), nil
}

func (s *MemoryStore) Jobs(ctx context.Context) ([]model.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.snap.jobs), nil
}

func (s *MemoryStore) Candidate(ctx context.Context, id string) (model.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return model.Candidate{}, err
	}
	return s.snap.candidate(id)
}
