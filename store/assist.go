package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/opencampus/assist-api/schema"
)

// assist main datastore
type AssistCore interface {
	Ping() error

	// Account
	CreateAccount(params AccountParams) (*schema.User, error)
	GetAccount(id string) (*schema.User, error)
	GetAccountByEmail(email string) (*schema.User, error)
	ListAccounts() ([]schema.User, error)
	UpdateAccountProfile(id string, params ProfileParams) error
	SetAccountLoggedIn(id string, loggedIn bool) error
	DeleteAccount(id string) error

	// Request
	CreateRequest(r schema.AssistanceRequest) (*schema.AssistanceRequest, error)
	GetRequest(id string) (*schema.AssistanceRequest, error)
	ListOpenRequests() ([]schema.AssistanceRequest, error)
	ListAllRequests() ([]schema.AssistanceRequest, error)
	ListAccountRequests(accountID string) ([]schema.AssistanceRequest, error)
	UpdateRequestStatus(accountID, requestID string, next schema.RequestStatus) (*schema.AssistanceRequest, error)
	DeleteRequest(id string) error
	ExpireStaleRequests(maxAge time.Duration) (int64, error)
}

// AssistStore is an implementation of AssistCore backed by the
// authoritative postgres database.
type AssistStore struct {
	ormDB *gorm.DB
}

func NewAssistStore(ormDB *gorm.DB) *AssistStore {
	return &AssistStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *AssistStore) Ping() error {
	return s.ormDB.DB().Ping()
}
