package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/opencampus/assist-api/schema"
	"github.com/opencampus/assist-api/store"
)

// adminRequired only lets accounts flagged as administrators through.
// It runs after recognizeAccountMiddleware.
func (s *Server) adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		account := c.MustGet("account").(*schema.User)
		if !account.IsAdmin {
			abortWithEncoding(c, http.StatusForbidden, errorAdminOnly)
			return
		}
		c.Next()
	}
}

// adminStats is the API for the dashboard overview: totals plus a
// per-category breakdown over every request in the system.
func (s *Server) adminStats(c *gin.Context) {
	users, err := s.store.ListAccounts()
	if shouldInterupt(err, c) {
		return
	}

	requests, err := s.store.ListAllRequests()
	if shouldInterupt(err, c) {
		return
	}

	active := 0
	byCategory := map[string]int{}
	for _, r := range requests {
		if r.Status == schema.RequestOpen {
			active++
		}
		byCategory[r.CategoryLabel]++
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"total_users":          len(users),
			"total_requests":       len(requests),
			"active_requests":      active,
			"completed_requests":   len(requests) - active,
			"requests_by_category": byCategory,
		},
	})
}

// adminListUsers is the API to list every registered user
func (s *Server) adminListUsers(c *gin.Context) {
	users, err := s.store.ListAccounts()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": users})
}

// adminCreateAccount is the API to register another administrator. The
// public registration endpoint never grants the admin flag; this is the
// only way to mint one.
func (s *Server) adminCreateAccount(c *gin.Context) {
	var params struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.FirstName == "" || params.LastName == "" || params.Email == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	if len(params.Password) < 8 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	a, err := s.store.CreateAccount(store.AccountParams{
		Username:       params.Email,
		Email:          params.Email,
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		PasswordDigest: string(digest),
		IsAdmin:        true,
	})
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": a})
}

// adminDeleteUser is the API to remove a user from the system
func (s *Server) adminDeleteUser(c *gin.Context) {
	if err := s.store.DeleteAccount(c.Param("accountID")); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminListRequests is the API to list every request in the system,
// terminal ones included.
func (s *Server) adminListRequests(c *gin.Context) {
	requests, err := s.store.ListAllRequests()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": requests})
}

// adminDeleteRequest is the API to remove a request permanently. The
// requester-facing delete completes the record instead; this one drops
// it, so the working sets of the affected accounts are refreshed.
func (s *Server) adminDeleteRequest(c *gin.Context) {
	r, err := s.store.GetRequest(c.Param("requestID"))
	if err != nil {
		s.abortWithRequestError(c, err)
		return
	}

	if err := s.store.DeleteRequest(r.ID); err != nil {
		s.abortWithRequestError(c, err)
		return
	}

	affected := []string{r.RequestedBy}
	if r.AcceptedBy != "" && r.AcceptedBy != r.RequestedBy {
		affected = append(affected, r.AcceptedBy)
	}
	s.signalRequestsChanged(affected)

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminExpireRequests is an internal only api to trigger the task to
// cancel stale open requests
func (s *Server) adminExpireRequests(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "expire_stale_requests",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}
