package persistence

import (
	"errors"
	"fmt"
)

// ErrNotExist indicates no document has been persisted yet
var ErrNotExist = errors.New("wallet document does not exist")

// IOError wraps a substrate failure during load or save. Callers roll back
// any in-flight mutation before surfacing it.
type IOError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("wallet document %s failed: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
