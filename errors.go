package triot

import "errors"

const Namespace = "triot"

var (
	ErrInvalidType = errors.New(
		Namespace + ": input must be a sequence of integers",
	)
	ErrEmptyInput     = errors.New(Namespace + ": input sequence is empty")
	ErrInvalidElement = errors.New(Namespace + ": element is not an integer")
	ErrTaskFailed     = errors.New(Namespace + ": item transformation failed")
	ErrTaskPanicked   = errors.New(Namespace + ": item transformation panicked")
	ErrInvalidConfig  = errors.New(Namespace + ": invalid configuration")
)
