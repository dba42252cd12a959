package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opencampus/assist-api/schema"
)

func TestIdentityNameTotality(t *testing.T) {
	cases := []struct {
		identity Identity
		expected string
	}{
		{Identity{}, AnonymousName},
		{Identity{DisplayName: "Sam the Helper"}, "Sam the Helper"},
		{Identity{DisplayName: AnonymousName, FirstName: "Alex"}, "Alex"},
		{Identity{FirstName: "Alex", LastName: "Johnson"}, "Alex Johnson"},
		{Identity{FirstName: "  Alex  "}, "Alex"},
		{Identity{LastName: "Johnson"}, "Johnson"},
		{Identity{Username: "ajohnson"}, "ajohnson"},
		{Identity{Username: "anonymous", Email: "alex@campus.edu"}, "alex"},
		{Identity{Email: "alex@campus.edu"}, "alex"},
		{Identity{Email: "no-at-sign"}, "no-at-sign"},
		{Identity{ID: "u42"}, AnonymousName},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, c.identity.Name())
		assert.NotEmpty(t, c.identity.Name())
	}
}

func TestIdentityTokenPriority(t *testing.T) {
	id := Identity{
		ID:       "u42",
		Username: "ajohnson",
		Email:    "alex@campus.edu",
		UserID:   "u42",
		AltID:    "legacy-7",
	}

	assert.Equal(t, []string{"u42", "ajohnson", "alex@campus.edu", "legacy-7"}, id.Tokens())
	assert.Equal(t, "u42", id.Primary())
}

func TestIdentityTokensEmpty(t *testing.T) {
	id := Identity{FirstName: "Alex", LastName: "Johnson", DisplayName: "Alex J"}

	assert.Empty(t, id.Tokens(), "name fields are not identity tokens")
	assert.Equal(t, "", id.Primary())
}

func TestOwnershipSoundness(t *testing.T) {
	r := schema.AssistanceRequest{
		RequestedBy: "u42",
		UserInfo:    schema.UserInfo{ID: "u42", Email: "alex@campus.edu"},
	}

	// a user without any identity-bearing field can never own a request
	nameOnly := schema.User{FirstName: "Alex", LastName: "Johnson"}
	assert.False(t, IsOwnedBy(r, nameOnly))

	// nor can any user own a request without identity evidence
	orphan := schema.AssistanceRequest{Description: "need help"}
	assert.False(t, IsOwnedBy(orphan, schema.User{ID: "u42"}))
}

func TestIsOwnedByHeterogeneousFields(t *testing.T) {
	r := schema.AssistanceRequest{
		RequestedBy: "u42",
		UserInfo:    schema.UserInfo{Email: "alex@campus.edu"},
	}

	assert.True(t, IsOwnedBy(r, schema.User{ID: "u42"}), "owner id matches requestedBy")
	assert.True(t, IsOwnedBy(r, schema.User{Email: "alex@campus.edu"}), "email token matches snapshot")
	assert.False(t, IsOwnedBy(r, schema.User{ID: "u7", Email: "casey@campus.edu"}))
}
