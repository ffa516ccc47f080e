package repository

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrNotFound      = errors.New("candidate not found")
	ErrLoadDataset   = errors.New("load dataset failed")
	ErrInvalidRecord = errors.New("invalid dataset record")
)
