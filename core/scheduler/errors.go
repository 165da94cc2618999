package scheduler

import "errors"

var (
	// ErrInvalidPolicy indicates an unrecognized policy name.
	ErrInvalidPolicy = errors.New("invalid scheduling policy")
	// ErrInvalidWorkload indicates a workload that cannot be planned, such
	// as a negative compute requirement.
	ErrInvalidWorkload = errors.New("invalid workload")
	// ErrEmptyForecast indicates a carbon series with no slots.
	ErrEmptyForecast = errors.New("empty carbon forecast")
)
