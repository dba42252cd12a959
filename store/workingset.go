package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opencampus/assist-api/reconcile"
	"github.com/opencampus/assist-api/schema"
)

// WorkingSetKeeper persists the per-account working set materialized by
// the background refresh worker. Views read the materialized set when
// available instead of re-merging on every render; it is a cache, never
// the source of truth.
type WorkingSetKeeper interface {
	SaveWorkingSet(accountID string, ws reconcile.WorkingSet) error
	GetWorkingSet(accountID string) (*reconcile.WorkingSet, error)
}

type workingSetDoc struct {
	AccountID  string               `bson:"account_id"`
	WorkingSet reconcile.WorkingSet `bson:"working_set"`
	UpdatedAt  time.Time            `bson:"updated_at"`
}

// SaveWorkingSet replaces the materialized working set of an account
func (m *mongoDB) SaveWorkingSet(accountID string, ws reconcile.WorkingSet) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.WorkingSetCollection)

	doc := workingSetDoc{
		AccountID:  accountID,
		WorkingSet: ws,
		UpdatedAt:  time.Now(),
	}

	_, err := c.ReplaceOne(ctx,
		bson.M{"account_id": accountID},
		doc,
		options.Replace().SetUpsert(true))
	return err
}

// GetWorkingSet returns the materialized working set of an account, or
// nil when none was built yet.
func (m *mongoDB) GetWorkingSet(accountID string) (*reconcile.WorkingSet, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.WorkingSetCollection)

	var doc workingSetDoc
	if err := c.FindOne(ctx, bson.M{"account_id": accountID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &doc.WorkingSet, nil
}
