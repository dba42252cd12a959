package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/opencampus/assist-api/reconcile"
	"github.com/opencampus/assist-api/schema"
	"github.com/opencampus/assist-api/store"
	"github.com/opencampus/assist-api/utils"
)

// signalRequestsChanged nudges the refresh workflows of the accounts a
// change is visible to
func (s *Server) signalRequestsChanged(accountIDs []string) {
	if s.cadenceClient == nil {
		return
	}

	go func() {
		if err := utils.TriggerWorkingSetRefresh(*s.cadenceClient, context.Background(), accountIDs); err != nil {
			sentry.CaptureException(err)
		}
	}()
}

// submitRequest is the API for a requester to submit a new assistance
// request. The payload is normalized before it is persisted, so legacy
// field spellings from older clients are accepted here as well.
func (s *Server) submitRequest(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)

	var raw reconcile.RawRequest
	if err := c.BindJSON(&raw); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	// the submitting account owns the request regardless of what the
	// payload claims
	raw.RequestedBy = account.ID
	raw.CreatorID = account.ID
	raw.Status = ""
	raw.AcceptedBy = ""
	info := account.Info()
	raw.UserInfo = &info

	r, err := reconcile.Normalize(raw, reconcile.SourceLocalDraft)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	created, err := s.store.CreateRequest(r)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "broadcast_new_request",
		Args: []tasks.Arg{
			{Type: "string", Value: created.ServerID},
			{Type: "string", Value: created.RequestedBy},
		},
	}); err != nil {
		c.Error(err)
	}

	s.signalRequestsChanged([]string{account.ID})

	c.JSON(http.StatusOK, gin.H{"result": created})
}

// uploadRequestCache is the API for a client to upload its locally
// cached request list. Malformed records are skipped, not rejected, so
// one bad record in an old cache does not block the sync.
func (s *Server) uploadRequestCache(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)

	var params struct {
		Requests []reconcile.RawRequest `json:"requests"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	requests, skipped := reconcile.NormalizeAll(params.Requests, reconcile.SourceLocalCache)

	if err := s.mongoStore.SaveCachedRequests(account.ID, requests); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.signalRequestsChanged([]string{account.ID})

	skippedIndices := make([]int, 0, len(skipped))
	for _, rec := range skipped {
		skippedIndices = append(skippedIndices, rec.Index)
	}

	resp := gin.H{
		"result":  "OK",
		"saved":   len(requests),
		"skipped": skippedIndices,
	}
	if len(skipped) > 0 {
		resp["warning"] = errorJSON(1204)
	}
	c.JSON(http.StatusOK, resp)
}

// listOpenRequests is the API for the volunteer view: every open
// request in the merged working set, each tagged with whether the
// viewing user owns it.
func (s *Server) listOpenRequests(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)

	ws, err := s.buildWorkingSet(account.ID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":   reconcile.OpenRequestsFor(ws, *account),
		"degraded": ws.Degraded,
	})
}

// listOwnRequests is the API for the requester view: the user's own
// open requests from the merged working set.
func (s *Server) listOwnRequests(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)

	ws, err := s.buildWorkingSet(account.ID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":   reconcile.OwnRequestsFor(ws, *account),
		"degraded": ws.Degraded,
	})
}

// listRequestHistory is the API for a requester's full submission
// history, terminal requests included. It reads the authoritative
// store directly; the working set only ever carries open requests.
func (s *Server) listRequestHistory(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)

	requests, err := s.store.ListAccountRequests(account.ID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": requests})
}

// buildWorkingSet merges the authoritative request list with the
// account's cached snapshot. A failing source degrades the merge
// instead of failing the call; only both sources failing is an error.
func (s *Server) buildWorkingSet(accountID string) (reconcile.WorkingSet, error) {
	logger := log.WithField("api", "buildWorkingSet")

	var remote *reconcile.Snapshot
	remoteRequests, err := s.store.ListOpenRequests()
	if err != nil {
		logger.WithError(err).Warn("authoritative source unavailable")
	} else {
		remote = &reconcile.Snapshot{Requests: remoteRequests}
	}

	var local *reconcile.Snapshot
	cached, err := s.mongoStore.CachedRequests(accountID)
	switch err {
	case nil:
		local = &reconcile.Snapshot{Requests: cached}
	case store.ErrNoCachedSnapshot:
		// never uploaded a cache; an empty local list is not degraded
		local = &reconcile.Snapshot{}
	default:
		logger.WithError(err).Warn("cached source unavailable")
	}

	if remote == nil && local == nil {
		return reconcile.WorkingSet{}, err
	}

	return reconcile.Merge(remote, local), nil
}

// updateRequestStatus is the API to advance a request through its
// lifecycle: a volunteer accepts it, the requester or the volunteer
// completes or cancels it.
func (s *Server) updateRequestStatus(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)
	requestID := c.Param("requestID")

	var params struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	next := schema.RequestStatus(strings.ToLower(strings.TrimSpace(params.Status)))
	switch next {
	case schema.RequestAccepted, schema.RequestCompleted, schema.RequestCancelled:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	updated, err := s.store.UpdateRequestStatus(account.ID, requestID, next)
	if err != nil {
		s.abortWithRequestError(c, err)
		return
	}

	if next == schema.RequestAccepted {
		if _, err := s.background.SendTask(&tasks.Signature{
			Name: "notify_request_accepted",
			Args: []tasks.Arg{
				{Type: "string", Value: updated.ServerID},
				{Type: "string", Value: updated.RequestedBy},
			},
		}); err != nil {
			c.Error(err)
		}
	}

	affected := []string{updated.RequestedBy}
	if updated.AcceptedBy != "" && updated.AcceptedBy != updated.RequestedBy {
		affected = append(affected, updated.AcceptedBy)
	}
	s.signalRequestsChanged(affected)

	c.JSON(http.StatusOK, gin.H{"result": updated})
}

// deleteRequest is the API for a requester to withdraw a request. The
// record is completed rather than removed, so the authoritative history
// survives and later reconciliation passes converge on it.
func (s *Server) deleteRequest(c *gin.Context) {
	account := c.MustGet("account").(*schema.User)
	requestID := c.Param("requestID")

	if _, err := s.store.UpdateRequestStatus(account.ID, requestID, schema.RequestCompleted); err != nil {
		s.abortWithRequestError(c, err)
		return
	}

	s.signalRequestsChanged([]string{account.ID})

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) abortWithRequestError(c *gin.Context, err error) {
	switch err {
	case store.ErrRequestNotExist:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist, err)
	case store.ErrInvalidTransition:
		abortWithEncoding(c, http.StatusConflict, errorInvalidTransition, err)
	case store.ErrOwnRequestAccept:
		abortWithEncoding(c, http.StatusForbidden, errorOwnRequestAccept, err)
	case store.ErrNotRequestOwner:
		abortWithEncoding(c, http.StatusForbidden, errorNotRequestOwner, err)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
