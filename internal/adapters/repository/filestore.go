package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/okian/ats/internal/domain/model"
	"github.com/okian/ats/pkg/logger"
	"github.com/okian/ats/pkg/metrics"
)

const defaultDateLayout = "2006-01-02"

// dataset is the on-disk YAML layout.
//
//	candidates:
//	  - name: Abraham
//	    date_of_birth: 1990-02-01
//	    gender: M
//	    skills:
//	      - {name: go, level: expert}
//	jobs:
//	  - title: Backend
//	    start_date: 2024-03-01
//	    required_gender: F
//	    required_skills:
//	      - {name: go, level: advanced}
type dataset struct {
	Candidates []candidateRecord `yaml:"candidates"`
	Jobs       []jobRecord       `yaml:"jobs"`
}

type skillRecord struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`
}

type candidateRecord struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	DateOfBirth string        `yaml:"date_of_birth"`
	Gender      string        `yaml:"gender"`
	Skills      []skillRecord `yaml:"skills"`
}

type jobRecord struct {
	ID             string        `yaml:"id"`
	Title          string        `yaml:"title"`
	StartDate      string        `yaml:"start_date"`
	RequiredGender string        `yaml:"required_gender"`
	RequiredSkills []skillRecord `yaml:"required_skills"`
}

// FileStore serves a dataset read from a YAML file. The parsed dataset is
// published as an immutable snapshot; Reload swaps it atomically.
type FileStore struct {
	path       string
	dateLayout string
	newID      func() string
	logger     logger.Logger

	snap atomic.Pointer[snapshot]
}

// OpenFileStore reads and validates the dataset at path.
func OpenFileStore(ctx context.Context, path string, opts ...Option) (*FileStore, error) {
	s := &FileStore{
		path:       path,
		dateLayout: defaultDateLayout,
		newID:      model.NewID,
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the file. On failure the previous snapshot stays in place.
func (s *FileStore) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	snap, err := s.load()
	metrics.RecordRepositoryLoadLatency(float64(time.Since(start).Microseconds()) / 1000) //nolint:mnd // us -> ms
	if err != nil {
		kind := "read"
		if errors.Is(err, ErrInvalidRecord) {
			kind = "invalid_record"
		}
		metrics.RecordErrorByComponent("repository", kind)
		s.logger.Error(ctx, "dataset load failed", logger.String("path", s.path), logger.Error(err))
		return err
	}

	s.snap.Store(snap)
	metrics.UpdateRepositoryRecords("candidates", len(snap.candidates))
	metrics.UpdateRepositoryRecords("jobs", len(snap.jobs))
	s.logger.Debug(ctx, "dataset loaded",
		logger.String("path", s.path),
		logger.Int("candidates", len(snap.candidates)),
		logger.Int("jobs", len(snap.jobs)),
	)
	return nil
}

func (s *FileStore) load() (*snapshot, error) {
	if s.path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrLoadDataset)
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDataset, err)
	}
	defer func() { _ = f.Close() }()

	var ds dataset
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadDataset, s.path, err)
	}

	candidates := make([]model.Candidate, 0, len(ds.Candidates))
	seen := make(map[string]struct{}, len(ds.Candidates))
	for i, rec := range ds.Candidates {
		c, err := s.toCandidate(rec)
		if err != nil {
			return nil, fmt.Errorf("candidates[%d]: %w", i, err)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("candidates[%d]: %w: duplicate id %q", i, ErrInvalidRecord, c.ID)
		}
		seen[c.ID] = struct{}{}
		candidates = append(candidates, c)
	}

	jobs := make([]model.Job, 0, len(ds.Jobs))
	for i, rec := range ds.Jobs {
		j, err := s.toJob(rec)
		if err != nil {
			return nil, fmt.Errorf("jobs[%d]: %w", i, err)
		}
		jobs = append(jobs, j)
	}

	return newSnapshot(candidates, jobs), nil
}

func (s *FileStore) toCandidate(rec candidateRecord) (model.Candidate, error) {
	dob, err := s.parseDate("date_of_birth", rec.DateOfBirth)
	if err != nil {
		return model.Candidate{}, err
	}
	gender, err := model.ParseGender(rec.Gender)
	if err != nil {
		return model.Candidate{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	skills, err := toSkills(rec.Skills)
	if err != nil {
		return model.Candidate{}, err
	}
	id := strings.TrimSpace(rec.ID)
	if id == "" {
		id = s.newID()
	}
	return model.Candidate{
		ID:          id,
		Name:        rec.Name,
		DateOfBirth: dob,
		Skills:      skills,
		Gender:      gender,
	}, nil
}

func (s *FileStore) toJob(rec jobRecord) (model.Job, error) {
	start, err := s.parseDate("start_date", rec.StartDate)
	if err != nil {
		return model.Job{}, err
	}
	gender, err := model.ParseGender(rec.RequiredGender)
	if err != nil {
		return model.Job{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	skills, err := toSkills(rec.RequiredSkills)
	if err != nil {
		return model.Job{}, err
	}
	id := strings.TrimSpace(rec.ID)
	if id == "" {
		id = s.newID()
	}
	return model.Job{
		ID:             id,
		Title:          rec.Title,
		StartDate:      start,
		RequiredSkills: skills,
		RequiredGender: gender,
	}, nil
}

func (s *FileStore) parseDate(field, v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", ErrInvalidRecord, field)
	}
	t, err := time.Parse(s.dateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: %w", ErrInvalidRecord, field, err)
	}
	return t, nil
}

func toSkills(recs []skillRecord) ([]model.Skill, error) {
	if len(recs) == 0 {
		return nil, nil
	}
	skills := make([]model.Skill, 0, len(recs))
	for _, r := range recs {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: skill name is required", ErrInvalidRecord)
		}
		level, err := model.ParseSkillLevel(r.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: skill %q: %w", ErrInvalidRecord, name, err)
		}
		skills = append(skills, model.Skill{Name: name, Level: level})
	}
	return skills, nil
}

// Path returns the dataset file path.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Candidates(ctx context.Context) ([]model.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.snap.Load().candidates), nil
}

func (s *FileStore) Jobs(ctx context.Context) ([]model.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.snap.Load().jobs), nil
}

func (s *FileStore) Candidate(ctx context.Context, id string) (model.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return model.Candidate{}, err
	}
	return s.snap.Load().candidate(id)
}
