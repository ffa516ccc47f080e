// Package types contains the report shapes shared by the service and the formatters.
package types

// CandidateRef identifies a candidate in a report.
type CandidateRef struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	DateOfBirth string `json:"date_of_birth" yaml:"date_of_birth"`
	Gender      string `json:"gender,omitempty" yaml:"gender,omitempty"`
}

// Cluster is a group of candidates that likely denote one person.
type Cluster struct {
	Key     string         `json:"key" yaml:"key"`
	Members []CandidateRef `json:"members" yaml:"members"`
}

// Hotness is the number of jobs a candidate is a strong match for.
type Hotness struct {
	Candidate CandidateRef `json:"candidate" yaml:"candidate"`
	HotJobs   int          `json:"hot_jobs" yaml:"hot_jobs"`
}

// Report summarizes a dataset.
type Report struct {
	Candidates        int       `json:"candidates" yaml:"candidates"`
	Jobs              int       `json:"jobs" yaml:"jobs"`
	IndexKeys         int       `json:"index_keys" yaml:"index_keys"`
	DuplicateClusters int       `json:"duplicate_clusters" yaml:"duplicate_clusters"`
	Clusters          []Cluster `json:"clusters" yaml:"clusters"`
	Hottest           *Hotness  `json:"hottest,omitempty" yaml:"hottest,omitempty"`
	Hotness           []Hotness `json:"hotness" yaml:"hotness"`
	BusiestMonths     []string  `json:"busiest_months" yaml:"busiest_months"`
	TopSkills         []string  `json:"top_skills" yaml:"top_skills"`
	// GenderRatio is nil when there are no male candidates.
	GenderRatio *float64 `json:"gender_ratio" yaml:"gender_ratio"`
}
