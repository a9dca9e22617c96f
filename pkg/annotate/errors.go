package annotate

import "github.com/pkg/errors"

var (
	// ErrMissingPercentage is returned when the target block has no string
	// percentage field.
	ErrMissingPercentage = errors.New("missing percentage")

	// ErrInvalidPercentage is returned when the percentage is not an integer
	// followed by a unit suffix.
	ErrInvalidPercentage = errors.New("invalid percentage")

	// ErrUnknownPolicy is returned for an unrecognized invalid policy name.
	ErrUnknownPolicy = errors.New("unknown invalid policy")
)
