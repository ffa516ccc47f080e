// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SkillLevel ranks proficiency in a skill. Higher is better.
type SkillLevel int

const (
	Beginner SkillLevel = iota
	Advanced
	Expert
)

// String returns the lowercase level name.
func (l SkillLevel) String() string {
	switch l {
	case Beginner:
		return "beginner"
	case Advanced:
		return "advanced"
	case Expert:
		return "expert"
	default:
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
}

// Valid reports whether l is one of the known levels.
func (l SkillLevel) Valid() bool {
	return l >= Beginner && l <= Expert
}

// ParseSkillLevel accepts a level name (case-insensitive) or its numeric value.
func ParseSkillLevel(s string) (SkillLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner", "0":
		return Beginner, nil
	case "advanced", "1":
		return Advanced, nil
	case "expert", "2":
		return Expert, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSkillLevel, s)
}

// Gender of a candidate, or a job's gender requirement.
// GenderUnspecified is the "unset" sentinel: a job carrying it has no requirement.
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "M"
	GenderFemale      Gender = "F"
)

// IsSet reports whether g carries a value.
func (g Gender) IsSet() bool { return g != GenderUnspecified }

// ParseGender accepts M/F (case-insensitive). Empty input yields GenderUnspecified.
func ParseGender(s string) (Gender, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return GenderUnspecified, nil
	case "M":
		return GenderMale, nil
	case "F":
		return GenderFemale, nil
	}
	return GenderUnspecified, fmt.Errorf("%w: %q", ErrUnknownGender, s)
}

// Skill is a named skill at a given level.
type Skill struct {
	Name  string
	Level SkillLevel
}

// Candidate is a job applicant record.
// Identity is the ID; two candidates with equal fields are still distinct records.
type Candidate struct {
	ID          string
	Name        string
	DateOfBirth time.Time
	Skills      []Skill
	Gender      Gender
}

// NewCandidate builds a Candidate with a freshly generated ID.
func NewCandidate(name string, dob time.Time, skills []Skill, gender Gender) Candidate {
	return Candidate{
		ID:          NewID(),
		Name:        name,
		DateOfBirth: dob,
		Skills:      skills,
		Gender:      gender,
	}
}

// Job is an opening that candidates are matched against.
type Job struct {
	ID             string
	Title          string
	StartDate      time.Time
	RequiredSkills []Skill
	RequiredGender Gender // GenderUnspecified means any gender
}

// NewJob builds a Job with a freshly generated ID.
func NewJob(title string, start time.Time, skills []Skill, gender Gender) Job {
	return Job{
		ID:             NewID(),
		Title:          title,
		StartDate:      start,
		RequiredSkills: skills,
		RequiredGender: gender,
	}
}

// NewID returns a random record identifier.
func NewID() string {
	return uuid.NewString()
}
