// Package dedupe detects candidates that are likely registered more than once
// under different spellings of the same name.
//
// Two candidates are similar when their names normalize to the same key and
// their dates of birth are at most a few days apart. Detection over a list goes
// through an Index keyed by normalized name, so the date check only runs inside
// a bucket instead of across every pair.
//
// All functions are pure: nothing is cached between calls and inputs are never
// modified, so independent calls may run concurrently.
package dedupe

import (
	"time"

	"github.com/okian/ats/internal/domain/model"
)

// DefaultWindowDays is the largest date-of-birth gap, in days, between two
// similar candidates.
const DefaultWindowDays = 10

const secondsPerDay = 24 * 60 * 60

// Detector decides whether candidates denote the same person.
type Detector struct {
	normalizer *Normalizer
	windowDays int
}

// NewDetector creates a Detector with configuration options.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		normalizer: NewNormalizer(),
		windowDays: DefaultWindowDays,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// WindowDays returns the configured date-of-birth window.
func (d *Detector) WindowDays() int { return d.windowDays }

// Key returns the normalized name of c.
func (d *Detector) Key(c model.Candidate) string {
	return d.normalizer.Normalize(c.Name)
}

// AreSimilar reports whether a and b share a normalized name and were born
// within the window of each other. It is symmetric.
func (d *Detector) AreSimilar(a, b model.Candidate) bool {
	if d.Key(a) != d.Key(b) {
		return false
	}
	return d.bornClose(a, b)
}

func (d *Detector) bornClose(a, b model.Candidate) bool {
	return DaysBetween(a.DateOfBirth, b.DateOfBirth) <= d.windowDays
}

// PossibleDuplicates returns the members of list similar to c, in list order.
// c itself is only returned if it is part of list.
func (d *Detector) PossibleDuplicates(c model.Candidate, list []model.Candidate) []model.Candidate {
	key := d.Key(c)
	var out []model.Candidate
	for _, other := range list {
		if d.Key(other) == key && d.bornClose(c, other) {
			out = append(out, other)
		}
	}
	return out
}

// DaysBetween returns the absolute number of calendar days between the dates
// of a and b. Each value's date is read in its own location, so times of day
// and daylight-saving shifts do not change the result.
func DaysBetween(a, b time.Time) int {
	diff := civilDay(a) - civilDay(b)
	if diff < 0 {
		diff = -diff
	}
	return int(diff)
}

// civilDay returns the day number of t's calendar date.
func civilDay(t time.Time) int64 {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

var defaultDetector = NewDetector()

// Normalize returns the comparison key for name using the plain ASCII rules.
func Normalize(name string) string {
	return defaultDetector.normalizer.Normalize(name)
}

// AreSimilar reports whether a and b are likely the same person, using the
// default ten-day window.
func AreSimilar(a, b model.Candidate) bool {
	return defaultDetector.AreSimilar(a, b)
}

// PossibleDuplicates returns the members of list similar to c.
func PossibleDuplicates(c model.Candidate, list []model.Candidate) []model.Candidate {
	return defaultDetector.PossibleDuplicates(c, list)
}

// BuildIndex groups list by normalized name.
func BuildIndex(list []model.Candidate) *Index {
	return defaultDetector.BuildIndex(list)
}

// CountClusters returns the number of duplicate clusters in list.
func CountClusters(list []model.Candidate) int {
	return defaultDetector.CountClusters(list)
}
