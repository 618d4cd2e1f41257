package readability

import (
	"errors"
	"fmt"
)

// ErrorType categorizes a pipeline failure.
type ErrorType string

const (
	ParseErrorType      ErrorType = "parse"
	ExtractionErrorType ErrorType = "extraction"
	CleanupErrorType    ErrorType = "cleanup"
)

// ErrNoCandidate is returned by the Selector when the candidate set is
// empty; the Driver treats it as a reason to retry, not a failure.
var ErrNoCandidate = errors.New("no candidate element found")

// WrapError wraps err with an ErrorType and the name of the function
// that raised it, preserving err for errors.Is/errors.As via %w.
func WrapError(err error, errorType ErrorType, funcName string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("[%s:%s]: %w", errorType, funcName, err)
}
