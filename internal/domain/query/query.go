// Package query filters, orders and summarizes candidate and job lists.
// Functions return new slices and never reorder or modify their input.
package query

import (
	"slices"
	"strings"
	"time"

	"github.com/okian/ats/internal/domain/model"
)

// LevelWeights maps a skill level to its worth when ranking candidates.
type LevelWeights map[model.SkillLevel]int

// DefaultLevelWeights counts Expert skills as 10, Advanced as 5 and Beginner as 1.
func DefaultLevelWeights() LevelWeights {
	return LevelWeights{
		model.Beginner: 1,
		model.Advanced: 5,
		model.Expert:   10,
	}
}

// FilterByDate returns the jobs starting between start and end, inclusive.
func FilterByDate(jobs []model.Job, start, end time.Time) []model.Job {
	var out []model.Job
	for _, j := range jobs {
		if !j.StartDate.Before(start) && !j.StartDate.After(end) {
			out = append(out, j)
		}
	}
	return out
}

// FilterByBornAfter returns the candidates born on or after date.
func FilterByBornAfter(candidates []model.Candidate, date time.Time) []model.Candidate {
	var out []model.Candidate
	for _, c := range candidates {
		if !c.DateOfBirth.Before(date) {
			out = append(out, c)
		}
	}
	return out
}

// OrderBySkills returns candidates with the most skills first, whatever their
// levels. Candidates with equal counts keep their relative order.
func OrderBySkills(candidates []model.Candidate) []model.Candidate {
	out := slices.Clone(candidates)
	slices.SortStableFunc(out, func(a, b model.Candidate) int {
		return len(b.Skills) - len(a.Skills)
	})
	return out
}

// OrderByWeightedSkills returns candidates with the most valuable skills first.
// Levels missing from weights are worth nothing. Ties keep their relative order.
func OrderByWeightedSkills(candidates []model.Candidate, weights LevelWeights) []model.Candidate {
	type weighted struct {
		c   model.Candidate
		sum int
	}
	ranked := make([]weighted, len(candidates))
	for i, c := range candidates {
		ranked[i] = weighted{c: c, sum: WeightedSkillSum(c, weights)}
	}
	slices.SortStableFunc(ranked, func(a, b weighted) int {
		return b.sum - a.sum
	})

	out := make([]model.Candidate, len(ranked))
	for i, r := range ranked {
		out[i] = r.c
	}
	return out
}

// WeightedSkillSum adds up the weights of c's skill levels.
func WeightedSkillSum(c model.Candidate, weights LevelWeights) int {
	sum := 0
	for _, s := range c.Skills {
		sum += weights[s.Level]
	}
	return sum
}

// GenderRatio returns the number of female candidates per male candidate.
// It fails with ErrNoMaleCandidates when the ratio is undefined.
func GenderRatio(candidates []model.Candidate) (float64, error) {
	var male, female int
	for _, c := range candidates {
		switch c.Gender {
		case model.GenderMale:
			male++
		case model.GenderFemale:
			female++
		}
	}
	if male == 0 {
		return 0, ErrNoMaleCandidates
	}
	return float64(female) / float64(male), nil
}

// BusiestMonths returns the months in which the most jobs start, in calendar
// order. Several months are returned on a tie; none for an empty list.
func BusiestMonths(jobs []model.Job) []time.Month {
	var counts [13]int
	top := 0
	for _, j := range jobs {
		m := j.StartDate.Month()
		counts[m]++
		top = max(top, counts[m])
	}
	if top == 0 {
		return nil
	}
	var out []time.Month
	for m := time.January; m <= time.December; m++ {
		if counts[m] == top {
			out = append(out, m)
		}
	}
	return out
}

// MostInDemandSkills returns the skill names required by the most jobs.
// Names are counted ignoring case and reported with their first-seen spelling,
// in first-seen order.
func MostInDemandSkills(jobs []model.Job) []string {
	type tally struct {
		name  string
		count int
	}
	var tallies []*tally
	byKey := make(map[string]*tally)
	top := 0
	for _, j := range jobs {
		for _, s := range j.RequiredSkills {
			key := strings.ToLower(s.Name)
			t, ok := byKey[key]
			if !ok {
				t = &tally{name: s.Name}
				byKey[key] = t
				tallies = append(tallies, t)
			}
			t.count++
			top = max(top, t.count)
		}
	}

	var out []string
	for _, t := range tallies {
		if t.count == top {
			out = append(out, t.name)
		}
	}
	return out
}
