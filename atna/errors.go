package atna

import (
	"errors"
	"fmt"
)

// Sentinel errors for entity validation. Returned errors wrap one of these
// with field context; test with errors.Is.
var (
	// ErrInvalidArgument marks a typed setter or option that received an unusable value.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConstruction marks a constructor whose required dependency is missing or malformed.
	ErrConstruction = errors.New("construction failed")
)

func invalidArgument(field, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, field, reason)
}

func constructionError(entity, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrConstruction, entity, reason)
}

func fieldError(field string, err error) error {
	return fmt.Errorf("%s: %w", field, err)
}
