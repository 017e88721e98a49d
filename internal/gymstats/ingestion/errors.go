package ingestion

import "fmt"

// ValidationError reports malformed caller input. It is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// BackendError is returned when neither the remote service nor the local store accepted a write.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: no backend accepted the write: %s", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
