package reconcile

import (
	"github.com/opencampus/assist-api/schema"
)

// Snapshot is one source's view of the request list at a point in time.
// A nil *Snapshot passed to Merge means the source was unavailable; the
// merge proceeds in degraded mode with whatever is left rather than
// blocking on the missing source.
type Snapshot struct {
	Requests []schema.AssistanceRequest `bson:"requests"`
}

// WorkingSet is the deduplicated, merged collection of requests a view
// is computed from. It is recomputed on every reconciliation pass and
// never mutated in place.
type WorkingSet struct {
	Requests []schema.AssistanceRequest `bson:"requests"`

	// Degraded is set when one of the merge sources was unavailable
	// and the set was built from the remaining one.
	Degraded bool `bson:"degraded"`
}

// identityKey is the deduplication key of a logical request: the
// authoritative server id when the record has one, the local id
// otherwise.
func identityKey(r schema.AssistanceRequest) string {
	if r.ServerID != "" {
		return r.ServerID
	}
	return r.ID
}

// adopt carries over fields from a locally cached copy that the
// authoritative copy does not have.
func adopt(remote, local schema.AssistanceRequest) schema.AssistanceRequest {
	if remote.UserInfo.Empty() && !local.UserInfo.Empty() {
		remote.UserInfo = local.UserInfo
	}
	if remote.RequestedBy == "" {
		remote.RequestedBy = local.RequestedBy
	}
	if remote.Name == "" || remote.Name == AnonymousName {
		if local.Name != "" {
			remote.Name = local.Name
		}
	}
	if remote.Phone == "" || remote.Phone == ContactFallback {
		if local.Phone != "" {
			remote.Phone = local.Phone
		}
	}
	return remote
}

// Merge combines the authoritative remote list and the locally cached
// list into one working set with at most one record per identity key.
// The remote copy of a request wins wherever both sources carry it;
// records known only locally are retained and flagged provisional.
// Output order is stable: remote records first, then local-only ones,
// each in input order.
func Merge(remote, local *Snapshot) WorkingSet {
	ws := WorkingSet{
		Degraded: remote == nil || local == nil,
	}

	index := make(map[string]int)

	if remote != nil {
		for _, r := range remote.Requests {
			key := identityKey(r)
			if _, ok := index[key]; ok {
				continue
			}
			r.Provisional = false
			index[key] = len(ws.Requests)
			ws.Requests = append(ws.Requests, r)
		}
	}

	if local != nil {
		for _, l := range local.Requests {
			key := identityKey(l)
			if at, ok := index[key]; ok {
				ws.Requests[at] = adopt(ws.Requests[at], l)
				continue
			}
			l.Provisional = true
			index[key] = len(ws.Requests)
			ws.Requests = append(ws.Requests, l)
		}
	}

	return ws
}
