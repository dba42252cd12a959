package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// RequestStatus is the lifecycle state of an assistance request.
type RequestStatus string

const (
	RequestOpen      RequestStatus = "open"
	RequestAccepted  RequestStatus = "accepted"
	RequestCompleted RequestStatus = "completed"
	RequestCancelled RequestStatus = "cancelled"
)

// Terminal reports whether no further transition is defined out of s.
func (s RequestStatus) Terminal() bool {
	return s == RequestCompleted || s == RequestCancelled
}

// AssistanceCategory is the kind of help a request asks for.
type AssistanceCategory string

const (
	CategoryMobility       AssistanceCategory = "mobility"
	CategoryNoteTaking     AssistanceCategory = "note_taking"
	CategoryReading        AssistanceCategory = "reading"
	CategoryInterpretation AssistanceCategory = "interpretation"
	CategoryTechAssistance AssistanceCategory = "tech_assistance"
	CategoryOther          AssistanceCategory = "other"
)

// CategoryLabels maps a category to its human-readable form.
var CategoryLabels = map[AssistanceCategory]string{
	CategoryMobility:       "Mobility Impairment",
	CategoryNoteTaking:     "Note Taking",
	CategoryReading:        "Reading Materials",
	CategoryInterpretation: "Sign Language Interpretation",
	CategoryTechAssistance: "Technology Assistance",
	CategoryOther:          "Other Assistance",
}

// Label returns the human-readable form of a category. Unknown
// categories fall back to the label of CategoryOther.
func (c AssistanceCategory) Label() string {
	if l, ok := CategoryLabels[c]; ok {
		return l
	}
	return CategoryLabels[CategoryOther]
}

// Valid reports whether c is one of the enumerated categories.
func (c AssistanceCategory) Valid() bool {
	_, ok := CategoryLabels[c]
	return ok
}

// UserInfo is the denormalized snapshot of the owning user embedded in
// a request at submission time. It is kept alongside the request so
// ownership can still be resolved when the live user record is gone or
// carries different identity fields.
type UserInfo struct {
	ID        string `json:"id,omitempty" bson:"id,omitempty"`
	UserID    string `json:"userId,omitempty" bson:"user_id,omitempty"`
	Username  string `json:"username,omitempty" bson:"username,omitempty"`
	Email     string `json:"email,omitempty" bson:"email,omitempty"`
	FirstName string `json:"firstName,omitempty" bson:"first_name,omitempty"`
	LastName  string `json:"lastName,omitempty" bson:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	Mobile    string `json:"mobile,omitempty" bson:"mobile,omitempty"`
}

func (u UserInfo) Value() (driver.Value, error) {
	return json.Marshal(u)
}

func (u *UserInfo) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, u)
}

// Empty reports whether the snapshot carries no fields at all.
func (u UserInfo) Empty() bool {
	return u == UserInfo{}
}

// AssistanceRequest is a single help request submitted by a requester.
//
// ID is always present and unique within a working set. ServerID is the
// authoritative identifier assigned by this service; it is empty on
// records that only ever existed in a client-side cache.
type AssistanceRequest struct {
	ID            string             `json:"id" bson:"id" gorm:"primary_key"`
	ServerID      string             `json:"server_id,omitempty" bson:"server_id,omitempty"`
	RequestedBy   string             `json:"requested_by,omitempty" bson:"requested_by,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Category      AssistanceCategory `json:"category" bson:"category"`
	CategoryLabel string             `json:"category_label" bson:"category_label"`
	RequestedDate string             `json:"requested_date" bson:"requested_date"`
	RequestedTime string             `json:"requested_time" bson:"requested_time"`
	Location      string             `json:"location" bson:"location"`
	Description   string             `json:"description" bson:"description"`
	Phone         string             `json:"phone" bson:"phone"`
	Duration      string             `json:"duration,omitempty" bson:"duration,omitempty"`
	Schedule      string             `json:"schedule,omitempty" bson:"schedule,omitempty"`
	Urgency       string             `json:"urgency,omitempty" bson:"urgency,omitempty"`
	Status        RequestStatus      `json:"status" bson:"status"`
	AcceptedBy    string             `json:"accepted_by,omitempty" bson:"accepted_by,omitempty"`
	Provisional   bool               `json:"provisional,omitempty" bson:"provisional,omitempty" gorm:"-"`
	UserInfo      UserInfo           `json:"user_info,omitempty" bson:"user_info,omitempty" gorm:"type:jsonb;not null;default '{}'"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}
