package splithash

import "fmt"

// InternalInconsistencyError marks a violated structural invariant: a
// temporary node escaping into public use, a descent hitting a child that
// can't exist, a chunk structure that runs out before decoding finishes.
// These are programming errors, not recoverable faults, so they are always
// raised via panic rather than returned as an error value.
type InternalInconsistencyError struct {
	Msg string
}

func (e *InternalInconsistencyError) Error() string {
	return fmt.Sprintf("splithash: internal inconsistency: %s", e.Msg)
}

func fail(format string, args ...any) {
	panic(&InternalInconsistencyError{Msg: fmt.Sprintf(format, args...)})
}
