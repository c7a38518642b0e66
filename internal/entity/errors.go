package entity

import "errors"

// Domain errors for the term catalog and stats aggregates.
var (
	ErrTermNotFound      = errors.New("term not found")
	ErrDuplicateTerm     = errors.New("term already exists")
	ErrInvalidTermText   = errors.New("invalid term text")
	ErrTermStatsNotFound = errors.New("term stats not found")
	ErrInvalidModality   = errors.New("invalid modality")
)
