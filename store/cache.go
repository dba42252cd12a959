package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opencampus/assist-api/schema"
)

var ErrNoCachedSnapshot = fmt.Errorf("no cached snapshot for this account")

// RequestCache holds the most recent client-side request list each
// account uploaded. It is the "local cache" source of a reconciliation
// pass: possibly stale, possibly carrying unsynced provisional records.
type RequestCache interface {
	SaveCachedRequests(accountID string, requests []schema.AssistanceRequest) error
	CachedRequests(accountID string) ([]schema.AssistanceRequest, error)
}

type cachedSnapshot struct {
	AccountID string                     `bson:"account_id"`
	Requests  []schema.AssistanceRequest `bson:"requests"`
	UpdatedAt time.Time                  `bson:"updated_at"`
}

// SaveCachedRequests replaces the cached snapshot of an account
func (m *mongoDB) SaveCachedRequests(accountID string, requests []schema.AssistanceRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCacheCollection)

	doc := cachedSnapshot{
		AccountID: accountID,
		Requests:  requests,
		UpdatedAt: time.Now(),
	}

	_, err := c.ReplaceOne(ctx,
		bson.M{"account_id": accountID},
		doc,
		options.Replace().SetUpsert(true))
	return err
}

// CachedRequests returns the cached snapshot of an account, or
// ErrNoCachedSnapshot when the account never uploaded one.
func (m *mongoDB) CachedRequests(accountID string) ([]schema.AssistanceRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.RequestCacheCollection)

	var doc cachedSnapshot
	if err := c.FindOne(ctx, bson.M{"account_id": accountID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoCachedSnapshot
		}
		return nil, err
	}

	return doc.Requests, nil
}
