package reconcile

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/opencampus/assist-api/schema"
)

// Source identifies where a raw record came from. The remote source is
// authoritative; local sources produce provisional records until they
// are confirmed against the remote list.
type Source int

const (
	SourceRemote Source = iota
	SourceLocalDraft
	SourceLocalCache
)

// ContactFallback is the phone value used when neither the request nor
// its owner snapshot carries any way to reach the requester.
const ContactFallback = "Contact via platform"

// ErrMalformedInput reports a raw record that could not be normalized
// into a usable request. The record is skipped; the rest of the batch
// is unaffected.
var ErrMalformedInput = fmt.Errorf("malformed request record")

// RawRequest is the loose, source-dependent shape of a request before
// normalization. Different sources (and different client revisions)
// populate different subsets of these fields; aliases like
// requestBody/description and creatorId/requestedBy are reconciled by
// Normalize.
type RawRequest struct {
	ID            string           `json:"id"`
	ServerID      string           `json:"server_id"`
	RequestedBy   string           `json:"requestedBy"`
	CreatorID     string           `json:"creatorId"`
	CreatorName   string           `json:"creatorName"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	CategoryLabel string           `json:"categoryLabel"`
	RequestBody   string           `json:"requestBody"`
	Description   string           `json:"description"`
	Location      string           `json:"location"`
	RequestedDate string           `json:"requestedDate"`
	Date          string           `json:"date"`
	RequestedTime string           `json:"requestedTime"`
	Time          string           `json:"time"`
	Phone         string           `json:"phone"`
	Duration      string           `json:"duration"`
	Schedule      string           `json:"schedule"`
	Urgency       string           `json:"urgency"`
	Status        string           `json:"status"`
	AcceptedBy    string           `json:"acceptedBy"`
	UserInfo      *schema.UserInfo `json:"userInfo"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// SkippedRecord reports one raw record NormalizeAll dropped and why.
type SkippedRecord struct {
	Index int
	Err   error
}

var classifyRules = []struct {
	category schema.AssistanceCategory
	keywords []string
}{
	{schema.CategoryMobility, []string{"mobility", "wheelchair", "walking", "movement"}},
	{schema.CategoryNoteTaking, []string{"note", "writing", "lecture", "class"}},
	{schema.CategoryReading, []string{"reading", "text", "book", "material"}},
}

// Classify derives a category from free-text content. Rules are checked
// in a fixed order and the first match wins, so a text mentioning both
// "mobility" and "notes" classifies as mobility. Unmatched text falls
// through to CategoryOther. This is a heuristic carried over from the
// product, not a guarantee of correctness.
func Classify(text string) schema.AssistanceCategory {
	text = strings.ToLower(text)
	for _, rule := range classifyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}
	return schema.CategoryOther
}

var provisionalSeq uint64

// provisionalID generates a temporary local identifier for a record the
// remote source has not confirmed yet. The sequence suffix keeps ids
// unique within a burst of submissions in the same nanosecond.
func provisionalID() string {
	return fmt.Sprintf("local-%d-%d", time.Now().UnixNano(), atomic.AddUint64(&provisionalSeq, 1))
}

// legacy status spellings seen across client revisions
var statusAliases = map[string]schema.RequestStatus{
	"pending":     schema.RequestOpen,
	"in-progress": schema.RequestAccepted,
}

func normalizeStatus(raw string) schema.RequestStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return schema.RequestOpen
	}
	if alias, ok := statusAliases[s]; ok {
		return alias
	}
	switch status := schema.RequestStatus(s); status {
	case schema.RequestOpen, schema.RequestAccepted, schema.RequestCompleted, schema.RequestCancelled:
		return status
	}
	return schema.RequestOpen
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// Normalize converts one raw record into the canonical request shape.
// It performs no I/O and never fails on a missing optional field; the
// only error it returns is ErrMalformedInput, for records lacking the
// required description, location, date or time.
func Normalize(raw RawRequest, source Source) (schema.AssistanceRequest, error) {
	description := firstNonEmpty(raw.Description, raw.RequestBody)
	location := strings.TrimSpace(raw.Location)
	date := firstNonEmpty(raw.RequestedDate, raw.Date)
	// requestedTime stays a free-form string; it is checked for
	// presence only, never parsed into a structured time.
	timeOfDay := firstNonEmpty(raw.RequestedTime, raw.Time)

	if description == "" || location == "" || date == "" || timeOfDay == "" {
		return schema.AssistanceRequest{}, ErrMalformedInput
	}

	var info schema.UserInfo
	if raw.UserInfo != nil {
		info = *raw.UserInfo
	}

	r := schema.AssistanceRequest{
		ServerID:      strings.TrimSpace(raw.ServerID),
		RequestedBy:   firstNonEmpty(raw.RequestedBy, raw.CreatorID),
		RequestedDate: date,
		RequestedTime: timeOfDay,
		Location:      location,
		Description:   description,
		Duration:      strings.TrimSpace(raw.Duration),
		Schedule:      strings.TrimSpace(raw.Schedule),
		Urgency:       strings.ToLower(strings.TrimSpace(raw.Urgency)),
		Status:        normalizeStatus(raw.Status),
		AcceptedBy:    strings.TrimSpace(raw.AcceptedBy),
		UserInfo:      info,
		CreatedAt:     raw.CreatedAt,
	}

	r.ID = strings.TrimSpace(raw.ID)
	if r.ID == "" {
		r.ID = firstNonEmpty(r.ServerID)
	}
	if r.ID == "" {
		r.ID = provisionalID()
		r.Provisional = true
	}
	if source == SourceRemote && r.ServerID == "" {
		// ids handed out by the remote source are authoritative
		r.ServerID = r.ID
	}
	if r.ServerID == "" && source != SourceRemote {
		r.Provisional = true
	}

	if category := schema.AssistanceCategory(strings.TrimSpace(raw.Category)); category.Valid() {
		r.Category = category
	} else {
		r.Category = Classify(description)
	}
	r.CategoryLabel = firstNonEmpty(raw.CategoryLabel, r.Category.Label())

	owner := OwnerIdentity(r)
	r.Name = firstNonEmpty(raw.Name, raw.CreatorName)
	if r.Name == "" {
		r.Name = owner.Name()
	}

	r.Phone = firstNonEmpty(raw.Phone, info.Phone, info.Mobile, info.Email, ContactFallback)

	return r, nil
}

// NormalizeAll normalizes a batch, skipping malformed records instead
// of aborting, and reports which records were dropped.
func NormalizeAll(raws []RawRequest, source Source) ([]schema.AssistanceRequest, []SkippedRecord) {
	requests := make([]schema.AssistanceRequest, 0, len(raws))
	var skipped []SkippedRecord

	for i, raw := range raws {
		r, err := Normalize(raw, source)
		if err != nil {
			skipped = append(skipped, SkippedRecord{Index: i, Err: err})
			continue
		}
		requests = append(requests, r)
	}

	return requests, skipped
}
