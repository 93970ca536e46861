package inventory

import (
	"errors"
	"fmt"
)

// Error kinds. Specific errors are joined with one of these so callers can
// test either.
var (
	ErrInvalid  = errors.New("invalid request")
	ErrNotFound = errors.New("not found")
	ErrStorage  = errors.New("storage failure")
)

// LocationTakenError is returned when a real slot already holds another article.
type LocationTakenError struct {
	Location string
	Article  string
}

func (e *LocationTakenError) Error() string {
	return fmt.Sprintf("location %s is already used by %s", e.Location, e.Article)
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalid, err)
}

func invalidf(format string, args ...any) error {
	return invalid(fmt.Errorf(format, args...))
}

func notFound(article string) error {
	return fmt.Errorf("item %s: %w", article, ErrNotFound)
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
