package genetic

import "errors"

var (
	// ErrInsufficientPopulation is returned when offspring are required but the breeding pool cannot provide two distinct parents
	ErrInsufficientPopulation = errors.New("insufficient population")
	ErrInvalidConfig          = errors.New("invalid config")
)
