package service

import "errors"

var ErrCandidateNotFound = errors.New("candidate not found")
