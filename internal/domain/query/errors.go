package query

import "errors"

// ErrNoMaleCandidates is returned when a female/male ratio has no male candidates to divide by.
var ErrNoMaleCandidates = errors.New("gender ratio undefined: no male candidates")
