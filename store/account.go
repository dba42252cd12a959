package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/opencampus/assist-api/schema"
)

var (
	ErrAccountTaken    = fmt.Errorf("an account with this email already exists")
	ErrAccountNotFound = fmt.Errorf("account not found")
)

// AccountParams is the registration form payload after validation.
// IsAdmin is only ever set by the admin-creation flow; the public
// registration endpoint never passes it through.
type AccountParams struct {
	Username       string
	Email          string
	FirstName      string
	LastName       string
	StudentID      string
	Phone          string
	Mobile         string
	PasswordDigest string
	IsAdmin        bool
}

// ProfileParams carries the mutable profile fields. Nil pointers leave
// the stored value untouched.
type ProfileParams struct {
	FirstName   *string
	LastName    *string
	DisplayName *string
	Phone       *string
	Mobile      *string
}

// CreateAccount registers a user. Registration marks the user as logged
// in right away, matching the sign-up flow of the client.
func (s *AssistStore) CreateAccount(params AccountParams) (*schema.User, error) {
	u := schema.User{
		ID:             uuid.New().String(),
		Username:       params.Username,
		Email:          params.Email,
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		StudentID:      params.StudentID,
		Phone:          params.Phone,
		Mobile:         params.Mobile,
		PasswordDigest: params.PasswordDigest,
		IsAdmin:        params.IsAdmin,
		IsLoggedIn:     true,
	}

	if err := s.ormDB.Create(&u).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAccountTaken
		}
		return nil, err
	}
	return &u, nil
}

// GetAccount returns the user with a given id
func (s *AssistStore) GetAccount(id string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("id = ?", id).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ListAccounts returns every registered user, newest first
func (s *AssistStore) ListAccounts() ([]schema.User, error) {
	users := []schema.User{}
	if err := s.ormDB.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetAccountByEmail returns the user registered with a given email
func (s *AssistStore) GetAccountByEmail(email string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("email = ?", email).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateAccountProfile updates the mutable profile fields of a user
func (s *AssistStore) UpdateAccountProfile(id string, params ProfileParams) error {
	updates := map[string]interface{}{}
	if params.FirstName != nil {
		updates["first_name"] = *params.FirstName
	}
	if params.LastName != nil {
		updates["last_name"] = *params.LastName
	}
	if params.DisplayName != nil {
		updates["display_name"] = *params.DisplayName
	}
	if params.Phone != nil {
		updates["phone"] = *params.Phone
	}
	if params.Mobile != nil {
		updates["mobile"] = *params.Mobile
	}
	if len(updates) == 0 {
		return nil
	}

	result := s.ormDB.Model(schema.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// SetAccountLoggedIn flips the logged-in flag. Logging out keeps the
// record; accounts are only removed by DeleteAccount.
func (s *AssistStore) SetAccountLoggedIn(id string, loggedIn bool) error {
	result := s.ormDB.Model(schema.User{}).Where("id = ?", id).Update("is_logged_in", loggedIn)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// DeleteAccount removes an account from our system permanently
func (s *AssistStore) DeleteAccount(id string) error {
	return s.ormDB.Delete(schema.User{}, "id = ?", id).Error
}
