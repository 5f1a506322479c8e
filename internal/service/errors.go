package service

import "fmt"

// PersistenceError wraps a storage failure during the commit step of a
// scheduling run. The run is not retried automatically; the caller decides.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
