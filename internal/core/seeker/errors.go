package seeker

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid seek loop configuration")
	ErrNotConverged  = errors.New("did not converge")
	ErrMissingPart   = errors.New("seek loop needs a source, a mount with sensors and a finder")
)
