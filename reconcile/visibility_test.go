package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencampus/assist-api/schema"
)

func workingSetFixture() WorkingSet {
	return WorkingSet{Requests: []schema.AssistanceRequest{
		{
			ID:          "r1",
			ServerID:    "r1",
			Description: "wheelchair access needed",
			Status:      schema.RequestOpen,
			RequestedBy: "u42",
		},
		{
			ID:          "r2",
			ServerID:    "r2",
			Description: "note taker wanted",
			Status:      schema.RequestOpen,
			UserInfo:    schema.UserInfo{Email: "casey@campus.edu"},
		},
		{
			ID:          "r3",
			ServerID:    "r3",
			Description: "already handled",
			Status:      schema.RequestCompleted,
			RequestedBy: "u42",
		},
		{
			ID:          "r4",
			ServerID:    "r4",
			Description: "no owner evidence",
			Status:      schema.RequestOpen,
		},
	}}
}

func TestOpenRequestsForTagsOwnership(t *testing.T) {
	ws := workingSetFixture()

	owner := schema.User{ID: "u42"}
	visible := OpenRequestsFor(ws, owner)

	assert.Len(t, visible, 3, "completed requests are excluded")
	byID := map[string]VisibleRequest{}
	for _, v := range visible {
		byID[v.ID] = v
	}

	// own requests stay visible, tagged
	assert.True(t, byID["r1"].IsOwnRequest)
	assert.False(t, byID["r2"].IsOwnRequest)
	assert.False(t, byID["r4"].IsOwnRequest, "no evidence, no ownership")

	other := schema.User{ID: "u7"}
	for _, v := range OpenRequestsFor(ws, other) {
		assert.False(t, v.IsOwnRequest)
	}
}

func TestOwnRequestsForFiltersToOwner(t *testing.T) {
	ws := workingSetFixture()

	own := OwnRequestsFor(ws, schema.User{ID: "u42"})
	assert.Len(t, own, 1)
	assert.Equal(t, "r1", own[0].ID)

	// the completed request r3 belongs to u42 but is no longer open
	for _, r := range own {
		assert.Equal(t, schema.RequestOpen, r.Status)
	}

	assert.Empty(t, OwnRequestsFor(ws, schema.User{ID: "u7"}))
}

func TestOwnRequestsForNeverShowsUnresolvedOwnership(t *testing.T) {
	ws := workingSetFixture()

	// a user record with no identity tokens sees nothing as "own",
	// even in the session that submitted the request
	anonymous := schema.User{FirstName: "Alex"}
	assert.Empty(t, OwnRequestsFor(ws, anonymous))
}

func TestEndToEndRemoteOnlyScenario(t *testing.T) {
	raws := []RawRequest{{
		ID:            "r1",
		RequestBody:   "wheelchair access needed",
		Location:      "Lib",
		RequestedDate: "2025-06-01",
		RequestedTime: "2:30 PM",
		Status:        "open",
		CreatorID:     "u42",
	}}

	requests, skipped := NormalizeAll(raws, SourceRemote)
	assert.Empty(t, skipped)

	ws := Merge(&Snapshot{Requests: requests}, &Snapshot{})
	assert.Len(t, ws.Requests, 1)
	assert.Equal(t, schema.CategoryMobility, ws.Requests[0].Category)
	assert.Equal(t, "Mobility Impairment", ws.Requests[0].CategoryLabel)

	own := OwnRequestsFor(ws, schema.User{ID: "u42"})
	assert.Len(t, own, 1)

	otherView := OpenRequestsFor(ws, schema.User{ID: "u7"})
	assert.Len(t, otherView, 1)
	assert.False(t, otherView[0].IsOwnRequest)
	assert.Empty(t, OwnRequestsFor(ws, schema.User{ID: "u7"}))
}
