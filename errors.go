package cubekit

import "errors"

// Sentinel errors for the cubekit package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubekit: invalid move notation")

	// State errors
	ErrCorruptState          = errors.New("cubekit: corrupt cube state")
	ErrUnknownRepresentation = errors.New("cubekit: unknown cube representation")
)
