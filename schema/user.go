package schema

import (
	"time"
)

// User is a registered member of the campus assistance platform. The
// same account can act as a requester (submitting assistance requests)
// or as a volunteer (answering open requests); there is no separate
// account type for either role.
type User struct {
	ID             string    `json:"id" bson:"id" gorm:"primary_key"`
	Username       string    `json:"username,omitempty" bson:"username,omitempty"`
	Email          string    `json:"email,omitempty" bson:"email,omitempty"`
	FirstName      string    `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName       string    `json:"last_name,omitempty" bson:"last_name,omitempty"`
	DisplayName    string    `json:"display_name,omitempty" bson:"display_name,omitempty"`
	StudentID      string    `json:"student_id,omitempty" bson:"student_id,omitempty"`
	Phone          string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Mobile         string    `json:"mobile,omitempty" bson:"mobile,omitempty"`
	PasswordDigest string    `json:"-" bson:"-"`
	IsLoggedIn     bool      `json:"is_logged_in" bson:"is_logged_in"`
	IsAdmin        bool      `json:"is_admin" bson:"is_admin"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// Info returns the denormalized snapshot of a user that is embedded
// into an assistance request at submission time.
func (u User) Info() UserInfo {
	return UserInfo{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Mobile:    u.Mobile,
	}
}
