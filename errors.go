package readability

import "fmt"

// Unparseable is the single user-visible failure class: it wraps any
// internal failure the pipeline raises (parser error, DOM corruption,
// or an internal invariant violation) so the caller never has to
// inspect internal error types.
type Unparseable struct {
	msg string
	err error
}

// NewUnparseable wraps err as an Unparseable carrying msg.
func NewUnparseable(msg string, err error) *Unparseable {
	return &Unparseable{msg: msg, err: err}
}

func (e *Unparseable) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.err)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Unparseable) Unwrap() error { return e.err }
