package api

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/opencampus/assist-api/schema"
	"github.com/opencampus/assist-api/store"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// accountRegister is the API for register a new account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")

	var params struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		StudentID string `json:"student_id"`
		Phone     string `json:"phone"`
		Mobile    string `json:"mobile"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	params.Email = strings.TrimSpace(strings.ToLower(params.Email))
	params.Username = strings.TrimSpace(params.Username)

	if params.Username == "" || params.Email == "" || !strings.Contains(params.Email, "@") {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	if len(params.Password) < 8 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	if params.Phone != "" && !phonePattern.MatchString(params.Phone) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	a, err := s.store.CreateAccount(store.AccountParams{
		Username:       params.Username,
		Email:          params.Email,
		FirstName:      params.FirstName,
		LastName:       params.LastName,
		StudentID:      params.StudentID,
		Phone:          params.Phone,
		Mobile:         params.Mobile,
		PasswordDigest: string(digest),
	})
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": a,
	})
}

// accountDetail is the API to query an account
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.User)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// accountUpdateProfile is the API to update the profile fields of a user
func (s *Server) accountUpdateProfile(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		FirstName   *string `json:"first_name"`
		LastName    *string `json:"last_name"`
		DisplayName *string `json:"display_name"`
		Phone       *string `json:"phone"`
		Mobile      *string `json:"mobile"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Phone != nil && *params.Phone != "" && !phonePattern.MatchString(*params.Phone) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.store.UpdateAccountProfile(requester, store.ProfileParams{
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		DisplayName: params.DisplayName,
		Phone:       params.Phone,
		Mobile:      params.Mobile,
	}); err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
			return
		}
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// accountLogout revokes the current session and flips the logged-in flag
func (s *Server) accountLogout(c *gin.Context) {
	requester := c.GetString("requester")
	tokenID := c.GetString("tokenID")

	if err := s.sessions.Revoke(c, tokenID); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := s.store.SetAccountLoggedIn(requester, false); err != nil {
		c.Error(err)
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// accountDelete is the API to remove an account from our service
func (s *Server) accountDelete(c *gin.Context) {
	requester := c.GetString("requester")
	tokenID := c.GetString("tokenID")

	if err := s.store.DeleteAccount(requester); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if err := s.sessions.Revoke(c, tokenID); err != nil {
		c.Error(err)
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
