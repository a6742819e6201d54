package model

import "errors"

var (
	// ErrEmptyCatalogue is returned when the catalogue has no groups, no subjects or no rooms
	ErrEmptyCatalogue = errors.New("catalogue is empty")
	// ErrNoEligibleLecturer is returned when a scheduled subject cannot be taught by any lecturer
	ErrNoEligibleLecturer = errors.New("no eligible lecturer")
	// ErrInvalidCatalogue is returned when catalogue records are malformed (duplicate ids, non-positive hours)
	ErrInvalidCatalogue = errors.New("invalid catalogue")
)
