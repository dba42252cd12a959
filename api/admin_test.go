package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/opencampus/assist-api/schema"
	"github.com/opencampus/assist-api/store"
)

func testAdminRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	adminRoute := router.Group("/admin")
	adminRoute.Use(s.recognizeAccountMiddleware())
	adminRoute.Use(s.adminRequired())
	{
		adminRoute.GET("/stats", s.adminStats)
		adminRoute.GET("/users", s.adminListUsers)
		adminRoute.POST("/users", s.adminCreateAccount)
		adminRoute.DELETE("/users/:accountID", s.adminDeleteUser)
		adminRoute.GET("/requests", s.adminListRequests)
		adminRoute.DELETE("/requests/:requestID", s.adminDeleteRequest)
	}

	return router
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	s, a, _, finish := testRequestServer(t)
	defer finish()

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.User{
		ID: "regular-1",
	}, nil).Times(1)

	router := testAdminRouter(s)

	req := httptest.NewRequest("GET", "/admin/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1102), resp.Code)
}

func TestAdminStats(t *testing.T) {
	s, a, _, finish := testRequestServer(t)
	defer finish()

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.User{
		ID:      "admin-1",
		IsAdmin: true,
	}, nil).Times(1)

	a.EXPECT().ListAccounts().Return([]schema.User{
		{ID: "admin-1", IsAdmin: true},
		{ID: "regular-1"},
	}, nil).Times(1)

	a.EXPECT().ListAllRequests().Return([]schema.AssistanceRequest{
		{ID: "srv-1", CategoryLabel: "Mobility Impairment", Status: schema.RequestOpen},
		{ID: "srv-2", CategoryLabel: "Mobility Impairment", Status: schema.RequestCompleted},
		{ID: "srv-3", CategoryLabel: "Note Taking", Status: schema.RequestCancelled},
	}, nil).Times(1)

	router := testAdminRouter(s)

	req := httptest.NewRequest("GET", "/admin/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result struct {
			TotalUsers         int            `json:"total_users"`
			TotalRequests      int            `json:"total_requests"`
			ActiveRequests     int            `json:"active_requests"`
			CompletedRequests  int            `json:"completed_requests"`
			RequestsByCategory map[string]int `json:"requests_by_category"`
		} `json:"result"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")

	assert.Equal(t, 2, resp.Result.TotalUsers)
	assert.Equal(t, 3, resp.Result.TotalRequests)
	assert.Equal(t, 1, resp.Result.ActiveRequests)
	assert.Equal(t, 2, resp.Result.CompletedRequests, "everything not open counts as closed")
	assert.Equal(t, 2, resp.Result.RequestsByCategory["Mobility Impairment"])
	assert.Equal(t, 1, resp.Result.RequestsByCategory["Note Taking"])
}

func TestAdminCreateAccountGrantsAdmin(t *testing.T) {
	s, a, _, finish := testRequestServer(t)
	defer finish()

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.User{
		ID:      "admin-1",
		IsAdmin: true,
	}, nil).Times(1)

	a.EXPECT().CreateAccount(gomock.Any()).DoAndReturn(
		func(params store.AccountParams) (*schema.User, error) {
			assert.True(t, params.IsAdmin, "accounts minted here are administrators")
			assert.Equal(t, "dana@campus.edu", params.Email)
			return &schema.User{
				ID:      "admin-2",
				Email:   params.Email,
				IsAdmin: true,
			}, nil
		}).Times(1)

	router := testAdminRouter(s)

	body := `{"first_name": "Dana", "last_name": "Reyes", "email": "dana@campus.edu", "password": "admin-pass-1"}`
	req := httptest.NewRequest("POST", "/admin/users", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestAdminDeleteRequest(t *testing.T) {
	s, a, _, finish := testRequestServer(t)
	defer finish()

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.User{
		ID:      "admin-1",
		IsAdmin: true,
	}, nil).Times(1)

	a.EXPECT().GetRequest("srv-1").Return(&schema.AssistanceRequest{
		ID:          "srv-1",
		ServerID:    "srv-1",
		RequestedBy: "regular-1",
		Status:      schema.RequestOpen,
	}, nil).Times(1)
	a.EXPECT().DeleteRequest("srv-1").Return(nil).Times(1)

	router := testAdminRouter(s)

	req := httptest.NewRequest("DELETE", "/admin/requests/srv-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}
