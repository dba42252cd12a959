package reconcile

import (
	"github.com/opencampus/assist-api/schema"
)

// VisibleRequest is one entry of the volunteer-facing projection: the
// request plus the ownership flag of the viewing user. Contact details
// are included regardless of ownership; the rendering layer is
// responsible for hiding them when IsOwnRequest is set.
type VisibleRequest struct {
	schema.AssistanceRequest
	IsOwnRequest bool `json:"is_own_request"`
}

// OpenRequestsFor projects the working set into the volunteer view: all
// open requests, each tagged with whether the viewing user owns it. A
// requester's own open requests stay in this list, tagged, so the
// requester can confirm a submission appears.
func OpenRequestsFor(ws WorkingSet, u schema.User) []VisibleRequest {
	visible := make([]VisibleRequest, 0, len(ws.Requests))
	for _, r := range ws.Requests {
		if r.Status != schema.RequestOpen {
			continue
		}
		visible = append(visible, VisibleRequest{
			AssistanceRequest: r,
			IsOwnRequest:      IsOwnedBy(r, u),
		})
	}
	return visible
}

// OwnRequestsFor projects the working set into the requester view: the
// user's own open requests. A request whose ownership can not be
// resolved never appears here, even if it was submitted in the same
// session; session state alone is not proof of ownership once multiple
// sources are merged.
func OwnRequestsFor(ws WorkingSet, u schema.User) []schema.AssistanceRequest {
	own := make([]schema.AssistanceRequest, 0, len(ws.Requests))
	for _, r := range ws.Requests {
		if r.Status != schema.RequestOpen {
			continue
		}
		if !IsOwnedBy(r, u) {
			continue
		}
		own = append(own, r)
	}
	return own
}
