package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencampus/assist-api/schema"
)

var allStatuses = []schema.RequestStatus{
	schema.RequestOpen,
	schema.RequestAccepted,
	schema.RequestCompleted,
	schema.RequestCancelled,
}

func TestStatusTransitions(t *testing.T) {
	allowed := map[[2]schema.RequestStatus]bool{
		{schema.RequestOpen, schema.RequestAccepted}:      true,
		{schema.RequestOpen, schema.RequestCompleted}:     true,
		{schema.RequestOpen, schema.RequestCancelled}:     true,
		{schema.RequestAccepted, schema.RequestCompleted}: true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			if allowed[[2]schema.RequestStatus{from, to}] {
				assert.NoError(t, CheckTransition(from, to), "%s -> %s", from, to)
			} else {
				assert.Equal(t, ErrInvalidTransition, CheckTransition(from, to), "%s -> %s", from, to)
			}
		}
	}
}

func TestStatusMonotonicity(t *testing.T) {
	// nothing leads out of a terminal state, so no sequence of
	// transitions reopens a completed or cancelled request
	for _, terminal := range []schema.RequestStatus{schema.RequestCompleted, schema.RequestCancelled} {
		assert.True(t, terminal.Terminal())
		for _, to := range allStatuses {
			assert.False(t, CanTransition(terminal, to), "%s -> %s", terminal, to)
		}
	}
}
