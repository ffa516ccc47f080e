package model

import "errors"

// Sentinel parse errors for model values.
var (
	ErrUnknownSkillLevel = errors.New("unknown skill level")
	ErrUnknownGender     = errors.New("unknown gender")
)
