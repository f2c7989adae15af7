package petri

import "errors"

var (
	// Construction errors
	ErrDuplicatePlace = errors.New("petri: duplicate place name")
	ErrPlaceNotFound  = errors.New("petri: place not found")

	// Firing errors
	ErrTransitionNotEnabled = errors.New("petri: transition not enabled")
)
