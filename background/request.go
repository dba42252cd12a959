package background

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	BROADCAST_NEW_REQUEST   = "8f2b6d7a-1c44-4f0e-9a3d-6c2f58b61e90"
	NOTIFY_REQUEST_ACCEPTED = "c4a1e3b8-9d72-4d06-b5af-0e713c92d4fa"
)

// BroadcastNewRequest is a background job to notify subscribed
// volunteers that a new assistance request is open. The requester id is
// carried in the payload so clients do not surface a user's own
// submission as an incoming request.
func (m *BackgroundManager) BroadcastNewRequest(requestID string, requesterID string) error {
	return m.notifier.NotifySubscribersByTemplate(BROADCAST_NEW_REQUEST, map[string]interface{}{
		"notification_type": "BROADCAST_NEW_REQUEST",
		"request_id":        requestID,
		"requester_id":      requesterID,
	})
}

// NotifyRequestAccepted is a background job to tell a requester that a
// volunteer accepted the request
func (m *BackgroundManager) NotifyRequestAccepted(requestID string, requesterID string) error {
	return m.notifier.NotifyAccountsByTemplate([]string{requesterID}, NOTIFY_REQUEST_ACCEPTED, map[string]interface{}{
		"notification_type": "NOTIFY_REQUEST_ACCEPTED",
		"request_id":        requestID,
	})
}

// ExpireStaleRequests is a background job to cancel open requests that
// sat unanswered past the configured age
func (m *BackgroundManager) ExpireStaleRequests() error {
	maxAge := viper.GetDuration("request.maxage")
	if maxAge == 0 {
		maxAge = 72 * time.Hour
	}

	count, err := m.store.ExpireStaleRequests(maxAge)
	if err != nil {
		return err
	}

	log.WithField("prefix", "background").WithField("count", count).Info("expired stale requests")
	return nil
}
