// Package scoring rates how well candidates fit jobs.
package scoring

import (
	"math"
	"strings"

	"github.com/okian/ats/internal/domain/model"
)

// Default scoring configuration constants.
const (
	DefaultGenderWeight = 20
	DefaultSkillWeight  = 80
	DefaultHotThreshold = 80
	maxScoreValue       = 100
)

// SkillsMatch reports whether candidateSkill satisfies jobSkill: the names are
// equal ignoring case and the candidate's level is at least the job's.
func SkillsMatch(candidateSkill, jobSkill model.Skill) bool {
	return strings.EqualFold(candidateSkill.Name, jobSkill.Name) &&
		candidateSkill.Level >= jobSkill.Level
}

// SuitableGender reports whether c meets j's gender requirement. Jobs without a
// requirement accept every candidate.
func SuitableGender(c model.Candidate, j model.Job) bool {
	if !j.RequiredGender.IsSet() {
		return true
	}
	return c.Gender == j.RequiredGender
}

// Scorer computes suitability scores between 0 and 100.
type Scorer struct {
	genderWeight int
	skillWeight  int
	hotThreshold int
}

// NewScorer creates a scorer with configuration options.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		genderWeight: DefaultGenderWeight,
		skillWeight:  DefaultSkillWeight,
		hotThreshold: DefaultHotThreshold,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// HotThreshold returns the score a job match must exceed to count towards hotness.
func (s *Scorer) HotThreshold() int { return s.hotThreshold }

// Suitability scores c against j. A suitable gender earns the gender weight;
// the skill weight is shared out over the job's required skills, each counted
// once when any of the candidate's skills matches it. Jobs without required
// skills award the whole skill weight. The skill part is rounded half up.
func (s *Scorer) Suitability(c model.Candidate, j model.Job) int {
	score := 0
	if SuitableGender(c, j) {
		score += s.genderWeight
	}

	if len(j.RequiredSkills) == 0 {
		score += s.skillWeight
	} else {
		matched := 0
		for _, required := range j.RequiredSkills {
			if hasSkill(c.Skills, required) {
				matched++
			}
		}
		share := float64(matched) / float64(len(j.RequiredSkills)) * float64(s.skillWeight)
		score += int(math.Floor(share + 0.5))
	}

	if score > maxScoreValue {
		return maxScoreValue
	}
	if score < 0 {
		return 0
	}
	return score
}

func hasSkill(skills []model.Skill, required model.Skill) bool {
	for _, sk := range skills {
		if SkillsMatch(sk, required) {
			return true
		}
	}
	return false
}

// Hotness counts the jobs for which c scores above the hot threshold.
func (s *Scorer) Hotness(c model.Candidate, jobs []model.Job) int {
	hot := 0
	for _, j := range jobs {
		if s.Suitability(c, j) > s.hotThreshold {
			hot++
		}
	}
	return hot
}

// HottestCandidate returns the candidate with the highest hotness and that
// hotness. Ties go to the earliest candidate. ok is false for an empty list.
func (s *Scorer) HottestCandidate(candidates []model.Candidate, jobs []model.Job) (hottest model.Candidate, hotness int, ok bool) {
	for i, c := range candidates {
		h := s.Hotness(c, jobs)
		if i == 0 || h > hotness {
			hottest, hotness = c, h
		}
	}
	return hottest, hotness, len(candidates) > 0
}

// HottestScore returns the highest hotness across candidates, or 0 when there
// are none.
func (s *Scorer) HottestScore(candidates []model.Candidate, jobs []model.Job) int {
	_, hotness, _ := s.HottestCandidate(candidates, jobs)
	return hotness
}
