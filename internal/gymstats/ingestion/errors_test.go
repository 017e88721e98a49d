package ingestion_test

import (
	"errors"
	"testing"

	"github.com/2beens/gymready/internal/gymstats/ingestion"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestErrors(t *testing.T) {
	validationErr := &ingestion.ValidationError{Field: "session_rpe", Reason: "must be between 1 and 10"}
	assert.Equal(t, "invalid session_rpe: must be between 1 and 10", validationErr.Error())

	remoteErr := errors.New("remote down")
	localErr := errors.New("db down")
	backendErr := &ingestion.BackendError{Op: "log session", Err: multierr.Combine(remoteErr, localErr)}
	assert.Contains(t, backendErr.Error(), "log session: no backend accepted the write")
	assert.ErrorIs(t, backendErr, remoteErr)
	assert.ErrorIs(t, backendErr, localErr)
}
