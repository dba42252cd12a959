// Package reconcile implements the request lifecycle and
// visibility/ownership reconciliation used to build the working set a
// view renders from. Every function in this package is a pure,
// synchronous transformation over in-memory records: the surrounding
// application fetches the source snapshots and feeds them in.
package reconcile

import (
	"strings"

	"github.com/opencampus/assist-api/schema"
)

// AnonymousName is the display-name fallback used when a record carries
// no usable name fields. It is also treated as a placeholder on input:
// an explicit display name equal to this sentinel is skipped.
const AnonymousName = "Anonymous User"

// Identity is the set of identity-bearing fields of a user record, or
// of the owner snapshot embedded in a request. Records referring to the
// same person may carry different subsets of these fields.
type Identity struct {
	ID          string
	UserID      string
	AltID       string
	Username    string
	Email       string
	FirstName   string
	LastName    string
	DisplayName string
}

// UserIdentity extracts the identity of a live user record.
func UserIdentity(u schema.User) Identity {
	return Identity{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DisplayName: u.DisplayName,
	}
}

// OwnerIdentity extracts the identity of the owner of a request from
// its RequestedBy field plus the embedded user snapshot.
func OwnerIdentity(r schema.AssistanceRequest) Identity {
	return Identity{
		ID:        r.UserInfo.ID,
		UserID:    r.UserInfo.UserID,
		AltID:     r.RequestedBy,
		Username:  r.UserInfo.Username,
		Email:     r.UserInfo.Email,
		FirstName: r.UserInfo.FirstName,
		LastName:  r.UserInfo.LastName,
	}
}

// Name resolves a human-friendly display name. The first usable field
// wins: explicit display name, first+last name, username, the local
// part of the email address. It always returns a non-empty string.
func (id Identity) Name() string {
	if name := strings.TrimSpace(id.DisplayName); name != "" && name != AnonymousName {
		return name
	}

	full := strings.TrimSpace(strings.TrimSpace(id.FirstName) + " " + strings.TrimSpace(id.LastName))
	if full != "" {
		return full
	}

	if username := strings.TrimSpace(id.Username); username != "" && !strings.EqualFold(username, "anonymous") {
		return username
	}

	if email := strings.TrimSpace(id.Email); email != "" {
		if at := strings.Index(email, "@"); at > 0 {
			return email[:at]
		}
		return email
	}

	return AnonymousName
}

// Tokens returns the ordered candidate identity tokens of id. The first
// token is the primary identity; the rest are alternatives. Absent
// fields are omitted, so the result is empty when the identity carries
// no identity-bearing field at all.
func (id Identity) Tokens() []string {
	candidates := []string{id.ID, id.Username, id.Email, id.UserID, id.AltID}

	tokens := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		tokens = append(tokens, c)
	}

	return tokens
}

// Primary returns the primary identity token, or an empty string when
// the identity has none. An empty primary means ownership can never be
// proven for this identity.
func (id Identity) Primary() string {
	if tokens := id.Tokens(); len(tokens) > 0 {
		return tokens[0]
	}
	return ""
}

// IsOwnedBy reports whether the request is owned by the user: the token
// sets of both sides intersect. When either side has no tokens it
// returns false; ownership is never assumed without evidence, so absent
// identity data can not leak one user's contact details to another.
func IsOwnedBy(r schema.AssistanceRequest, u schema.User) bool {
	userTokens := UserIdentity(u).Tokens()
	if len(userTokens) == 0 {
		return false
	}

	ownerTokens := OwnerIdentity(r).Tokens()
	if len(ownerTokens) == 0 {
		return false
	}

	owned := make(map[string]struct{}, len(ownerTokens))
	for _, t := range ownerTokens {
		owned[t] = struct{}{}
	}
	for _, t := range userTokens {
		if _, ok := owned[t]; ok {
			return true
		}
	}
	return false
}
