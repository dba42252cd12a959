package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/opencampus/assist-api/reconcile"
	"github.com/opencampus/assist-api/schema"
)

var (
	ErrRequestNotExist   = fmt.Errorf("the request does not exist or is not open for you")
	ErrInvalidTransition = reconcile.ErrInvalidTransition
	ErrOwnRequestAccept  = fmt.Errorf("accepting your own request is not allowed")
	ErrNotRequestOwner   = fmt.Errorf("only the requester or the accepting volunteer may close a request")
)

// CreateRequest persists a normalized request and hands out its
// authoritative id. A provisional local id is replaced by the server
// id; once the client syncs the server id into its cache, later merge
// passes key both copies to the same record.
func (s *AssistStore) CreateRequest(r schema.AssistanceRequest) (*schema.AssistanceRequest, error) {
	r.ServerID = uuid.New().String()
	if r.ID == "" || r.Provisional {
		r.ID = r.ServerID
		r.Provisional = false
	}
	if r.Status == "" {
		r.Status = schema.RequestOpen
	}

	if err := s.ormDB.Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// GetRequest returns a request by its display or authoritative id
func (s *AssistStore) GetRequest(id string) (*schema.AssistanceRequest, error) {
	var r schema.AssistanceRequest
	if err := s.ormDB.Where("id = ? OR server_id = ?", id, id).First(&r).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}
	return &r, nil
}

// ListOpenRequests returns every request still waiting for a volunteer,
// newest first.
func (s *AssistStore) ListOpenRequests() ([]schema.AssistanceRequest, error) {
	requests := []schema.AssistanceRequest{}
	if err := s.ormDB.
		Where("status = ?", schema.RequestOpen).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListAllRequests returns every request regardless of status, newest
// first. This is the admin view; the volunteer view only ever reads
// open requests.
func (s *AssistStore) ListAllRequests() ([]schema.AssistanceRequest, error) {
	requests := []schema.AssistanceRequest{}
	if err := s.ormDB.
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListAccountRequests returns every request submitted by an account,
// regardless of status, newest first.
func (s *AssistStore) ListAccountRequests(accountID string) ([]schema.AssistanceRequest, error) {
	requests := []schema.AssistanceRequest{}
	if err := s.ormDB.
		Where("requested_by = ?", accountID).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateRequestStatus advances a request through its lifecycle on
// behalf of an account. A volunteer accepts someone else's open
// request; completion and cancellation are reserved for the requester
// and the accepting volunteer. The update is conditional on the status
// the decision was made against, so a concurrent transition loses
// cleanly instead of overwriting.
func (s *AssistStore) UpdateRequestStatus(accountID, requestID string, next schema.RequestStatus) (*schema.AssistanceRequest, error) {
	r, err := s.GetRequest(requestID)
	if err != nil {
		return nil, err
	}

	if err := reconcile.CheckTransition(r.Status, next); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": next}
	switch next {
	case schema.RequestAccepted:
		if accountID == r.RequestedBy {
			return nil, ErrOwnRequestAccept
		}
		updates["accepted_by"] = accountID
	case schema.RequestCompleted, schema.RequestCancelled:
		if accountID != r.RequestedBy && accountID != r.AcceptedBy {
			return nil, ErrNotRequestOwner
		}
	}

	result := s.ormDB.Model(schema.AssistanceRequest{}).
		Where("id = ? AND status = ?", r.ID, r.Status).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRequestNotExist
	}

	return s.GetRequest(r.ID)
}

// DeleteRequest removes a request permanently. Unlike the requester's
// withdraw, which completes the record, this drops it from history;
// only administrative cleanup uses it.
func (s *AssistStore) DeleteRequest(id string) error {
	result := s.ormDB.Delete(schema.AssistanceRequest{}, "id = ? OR server_id = ?", id, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotExist
	}
	return nil
}

// ExpireStaleRequests cancels open requests older than maxAge and
// returns how many were affected. The remote record is kept as history
// rather than deleted.
func (s *AssistStore) ExpireStaleRequests(maxAge time.Duration) (int64, error) {
	result := s.ormDB.Model(schema.AssistanceRequest{}).
		Where("status = ? AND created_at <= ?", schema.RequestOpen, time.Now().Add(-maxAge)).
		Update("status", schema.RequestCancelled)
	return result.RowsAffected, result.Error
}
