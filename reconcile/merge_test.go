package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencampus/assist-api/schema"
)

func remoteFixture() *Snapshot {
	return &Snapshot{Requests: []schema.AssistanceRequest{
		{
			ID:          "r1",
			ServerID:    "r1",
			Description: "wheelchair access needed",
			Location:    "Lib",
			Status:      schema.RequestOpen,
			RequestedBy: "u42",
		},
		{
			ID:          "r2",
			ServerID:    "r2",
			Description: "note taker wanted",
			Location:    "Science Building",
			Status:      schema.RequestOpen,
		},
	}}
}

func TestMergeDedupBySeverID(t *testing.T) {
	local := &Snapshot{Requests: []schema.AssistanceRequest{
		{
			ID:          "temp-99",
			ServerID:    "r1",
			Description: "wheelchair access needed (stale local copy)",
			Location:    "Old Library",
			Status:      schema.RequestOpen,
			UserInfo:    schema.UserInfo{ID: "u42", Email: "alex@campus.edu"},
		},
	}}

	ws := Merge(remoteFixture(), local)

	assert.Len(t, ws.Requests, 2)
	assert.False(t, ws.Degraded)

	merged := ws.Requests[0]
	assert.Equal(t, "r1", merged.ServerID)
	// remote copy wins for fields both sides carry
	assert.Equal(t, "Lib", merged.Location)
	assert.Equal(t, "wheelchair access needed", merged.Description)
	assert.False(t, merged.Provisional)
	// fields the remote shape does not carry come from the local copy
	assert.Equal(t, "alex@campus.edu", merged.UserInfo.Email)
}

func TestMergeKeepsLocalOnlyAsProvisional(t *testing.T) {
	local := &Snapshot{Requests: []schema.AssistanceRequest{
		{
			ID:          "local-123",
			Description: "unsynced draft",
			Location:    "Student Center",
			Status:      schema.RequestOpen,
		},
	}}

	ws := Merge(remoteFixture(), local)

	assert.Len(t, ws.Requests, 3)
	last := ws.Requests[2]
	assert.Equal(t, "local-123", last.ID)
	assert.True(t, last.Provisional)
}

func TestMergeIdempotence(t *testing.T) {
	local := &Snapshot{Requests: []schema.AssistanceRequest{
		{ID: "temp-99", ServerID: "r1", Location: "Old Library", Status: schema.RequestOpen},
		{ID: "local-123", Description: "draft", Location: "Gym", Status: schema.RequestOpen},
	}}

	once := Merge(remoteFixture(), local)
	twice := Merge(&Snapshot{Requests: once.Requests}, &Snapshot{})

	assert.Equal(t, len(once.Requests), len(twice.Requests))
	for i := range once.Requests {
		assert.Equal(t, identityKey(once.Requests[i]), identityKey(twice.Requests[i]))
	}
}

func TestMergeDedupInvariant(t *testing.T) {
	// duplicates inside a single source collapse too
	remote := &Snapshot{Requests: []schema.AssistanceRequest{
		{ID: "r1", ServerID: "r1", Status: schema.RequestOpen},
		{ID: "r1-copy", ServerID: "r1", Status: schema.RequestOpen},
	}}
	local := &Snapshot{Requests: []schema.AssistanceRequest{
		{ID: "temp-1", ServerID: "r1", Status: schema.RequestOpen},
		{ID: "temp-1", Status: schema.RequestOpen},
	}}

	ws := Merge(remote, local)

	seen := map[string]bool{}
	for _, r := range ws.Requests {
		key := identityKey(r)
		assert.False(t, seen[key], "duplicate identity key %q", key)
		seen[key] = true
	}
	assert.True(t, len(ws.Requests) <= len(remote.Requests)+len(local.Requests))
}

func TestMergeDegradedMode(t *testing.T) {
	ws := Merge(remoteFixture(), nil)
	assert.True(t, ws.Degraded)
	assert.Len(t, ws.Requests, 2)

	ws = Merge(nil, &Snapshot{Requests: []schema.AssistanceRequest{
		{ID: "local-1", Status: schema.RequestOpen},
	}})
	assert.True(t, ws.Degraded)
	assert.Len(t, ws.Requests, 1)
	assert.True(t, ws.Requests[0].Provisional)

	ws = Merge(nil, nil)
	assert.True(t, ws.Degraded)
	assert.Empty(t, ws.Requests)
}
