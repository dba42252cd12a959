package workingset

import (
	"context"

	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/opencampus/assist-api/reconcile"
	"github.com/opencampus/assist-api/schema"
	"github.com/opencampus/assist-api/store"
)

// RefreshWorkingSetActivity rebuilds the merged working set of an
// account from the authoritative request list and the account's cached
// snapshot. It returns whether the rebuilt set differs from the
// previously materialized one.
func (w *WorkingSetWorker) RefreshWorkingSetActivity(ctx context.Context, accountID string) (bool, error) {
	logger := activity.GetLogger(ctx)

	var remote *reconcile.Snapshot
	requests, err := w.store.ListOpenRequests()
	if err != nil {
		logger.Warn("authoritative source unavailable", zap.Error(err))
	} else {
		remote = &reconcile.Snapshot{Requests: requests}
	}

	var local *reconcile.Snapshot
	cached, err := w.mongo.CachedRequests(accountID)
	switch err {
	case nil:
		local = &reconcile.Snapshot{Requests: cached}
	case store.ErrNoCachedSnapshot:
		local = &reconcile.Snapshot{}
	default:
		logger.Warn("cached source unavailable", zap.Error(err))
	}

	if remote == nil && local == nil {
		return false, err
	}

	ws := reconcile.Merge(remote, local)

	previous, err := w.mongo.GetWorkingSet(accountID)
	if err != nil {
		return false, err
	}

	if err := w.mongo.SaveWorkingSet(accountID, ws); err != nil {
		return false, err
	}

	changed := previous == nil || !sameRequests(previous.Requests, ws.Requests)
	return changed, nil
}

// NotifyWorkingSetChangedActivity tells an account that its merged
// request list changed since the last refresh
func (w *WorkingSetWorker) NotifyWorkingSetChangedActivity(ctx context.Context, accountID string) error {
	headings := map[string]string{
		"en": "Assistance requests updated",
	}
	contents := map[string]string{
		"en": "The list of open assistance requests has changed.",
	}

	return w.Background.NotifyAccountByText(accountID,
		headings, contents,
		map[string]interface{}{
			"notification_type": "WORKING_SET_CHANGED",
		},
	)
}

func requestKey(r schema.AssistanceRequest) string {
	if r.ServerID != "" {
		return r.ServerID
	}
	return r.ID
}

// sameRequests compares two request lists by identity key and status.
// Field-level edits without a status change do not trigger a
// notification; the refreshed set is persisted either way.
func sameRequests(a, b []schema.AssistanceRequest) bool {
	if len(a) != len(b) {
		return false
	}

	statuses := make(map[string]schema.RequestStatus, len(a))
	for _, r := range a {
		statuses[requestKey(r)] = r.Status
	}

	for _, r := range b {
		status, ok := statuses[requestKey(r)]
		if !ok || status != r.Status {
			return false
		}
	}
	return true
}
