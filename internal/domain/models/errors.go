package models

import "errors"

// ErrInsufficientData indicates an analysis needs more records than the caller has.
var ErrInsufficientData = errors.New("insufficient data")

// ErrInvalidInput indicates a submission field is non-numeric or out of range.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound indicates the record does not exist or is not owned by the caller.
var ErrNotFound = errors.New("not found")
