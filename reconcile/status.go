package reconcile

import (
	"fmt"

	"github.com/opencampus/assist-api/schema"
)

// ErrInvalidTransition reports a status change the request lifecycle
// does not define. The caller leaves the record unchanged.
var ErrInvalidTransition = fmt.Errorf("invalid request status transition")

// transitions is the request lifecycle: open advances to accepted, or
// straight to a terminal state (completed covers the requester's
// delete/complete shortcut); accepted can only complete. Nothing leads
// out of a terminal state.
var transitions = map[schema.RequestStatus][]schema.RequestStatus{
	schema.RequestOpen:     {schema.RequestAccepted, schema.RequestCompleted, schema.RequestCancelled},
	schema.RequestAccepted: {schema.RequestCompleted},
}

// CanTransition reports whether the lifecycle defines a transition from
// one status to another.
func CanTransition(from, to schema.RequestStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition validates a requested status change, returning
// ErrInvalidTransition when the lifecycle does not define it.
func CheckTransition(from, to schema.RequestStatus) error {
	if !CanTransition(from, to) {
		return ErrInvalidTransition
	}
	return nil
}
