package database

import "errors"

// PersistenceError wraps any failure reported by the data store. Constraint
// violations, connection loss and timeouts are not told apart.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Wrap tags err with the operation that produced it. Errors that are already
// a PersistenceError are returned unchanged.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var pErr *PersistenceError
	if errors.As(err, &pErr) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
