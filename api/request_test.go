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

	"github.com/opencampus/assist-api/api/mocks"
	"github.com/opencampus/assist-api/schema"
	"github.com/opencampus/assist-api/store"
)

func testRequestServer(t *testing.T) (*Server, *mocks.MockAssistCore, *mocks.MockMongoStore, func()) {
	ctl := gomock.NewController(t)

	a := mocks.NewMockAssistCore(ctl)
	m := mocks.NewMockMongoStore(ctl)

	s := &Server{
		store:      a,
		mongoStore: m,
	}

	return s, a, m, ctl.Finish
}

func TestListOpenRequests(t *testing.T) {
	s, a, m, finish := testRequestServer(t)
	defer finish()

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.User{
		ID:       "viewer-1",
		Username: "viewer",
	}, nil).Times(1)

	a.EXPECT().ListOpenRequests().Return([]schema.AssistanceRequest{
		{
			ID:          "srv-1",
			ServerID:    "srv-1",
			RequestedBy: "someone-else",
			Description: "Need help getting to the library",
			Status:      schema.RequestOpen,
		},
		{
			ID:          "srv-2",
			ServerID:    "srv-2",
			RequestedBy: "viewer-1",
			Description: "Note taking for history lecture",
			Status:      schema.RequestOpen,
		},
	}, nil).Times(1)
	m.EXPECT().CachedRequests(gomock.Any()).Return(nil, store.ErrNoCachedSnapshot).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/", s.listOpenRequests)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result []struct {
			ID           string `json:"id"`
			IsOwnRequest bool   `json:"is_own_request"`
		} `json:"result"`
		Degraded bool `json:"degraded"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")

	assert.False(t, resp.Degraded, "both sources were available")
	assert.Len(t, resp.Result, 2)
	assert.False(t, resp.Result[0].IsOwnRequest)
	assert.True(t, resp.Result[1].IsOwnRequest, "viewer's own request should be tagged")
}

func TestListOpenRequestsDegraded(t *testing.T) {
	s, a, m, finish := testRequestServer(t)
	defer finish()

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.User{
		ID: "viewer-1",
	}, nil).Times(1)

	a.EXPECT().ListOpenRequests().Return(nil, assert.AnError).Times(1)
	m.EXPECT().CachedRequests(gomock.Any()).Return([]schema.AssistanceRequest{
		{
			ID:          "local-123-1",
			RequestedBy: "viewer-1",
			Description: "Reading assistance for exam prep",
			Status:      schema.RequestOpen,
		},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/", s.listOpenRequests)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result []struct {
			ID          string `json:"id"`
			Provisional bool   `json:"provisional"`
		} `json:"result"`
		Degraded bool `json:"degraded"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")

	assert.True(t, resp.Degraded, "a failing source should degrade the view, not fail it")
	assert.Len(t, resp.Result, 1)
	assert.True(t, resp.Result[0].Provisional, "cache-only records are provisional")
}

func TestListOwnRequests(t *testing.T) {
	s, a, m, finish := testRequestServer(t)
	defer finish()

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.User{
		ID: "viewer-1",
	}, nil).Times(1)

	a.EXPECT().ListOpenRequests().Return([]schema.AssistanceRequest{
		{ID: "srv-1", ServerID: "srv-1", RequestedBy: "viewer-1", Status: schema.RequestOpen},
		{ID: "srv-2", ServerID: "srv-2", RequestedBy: "someone-else", Status: schema.RequestOpen},
		{ID: "srv-3", ServerID: "srv-3", RequestedBy: "viewer-1", Status: schema.RequestCompleted},
	}, nil).Times(1)
	m.EXPECT().CachedRequests(gomock.Any()).Return(nil, store.ErrNoCachedSnapshot).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/", s.listOwnRequests)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result []schema.AssistanceRequest `json:"result"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")

	assert.Len(t, resp.Result, 1, "only the viewer's open requests")
	assert.Equal(t, "srv-1", resp.Result[0].ID)
}

func TestListRequestHistory(t *testing.T) {
	s, a, _, finish := testRequestServer(t)
	defer finish()

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.User{
		ID: "viewer-1",
	}, nil).Times(1)

	a.EXPECT().ListAccountRequests("viewer-1").Return([]schema.AssistanceRequest{
		{ID: "srv-2", ServerID: "srv-2", RequestedBy: "viewer-1", Status: schema.RequestOpen},
		{ID: "srv-1", ServerID: "srv-1", RequestedBy: "viewer-1", Status: schema.RequestCompleted},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/", s.listRequestHistory)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result []schema.AssistanceRequest `json:"result"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")

	assert.Len(t, resp.Result, 2, "history keeps terminal requests")
	assert.Equal(t, schema.RequestCompleted, resp.Result[1].Status)
}

func TestUploadRequestCacheSkipsMalformed(t *testing.T) {
	s, a, m, finish := testRequestServer(t)
	defer finish()

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.User{
		ID: "viewer-1",
	}, nil).Times(1)

	m.EXPECT().SaveCachedRequests("viewer-1", gomock.Any()).DoAndReturn(
		func(accountID string, requests []schema.AssistanceRequest) error {
			assert.Len(t, requests, 1, "only the well-formed record is cached")
			return nil
		}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.PUT("/", s.uploadRequestCache)

	body := `{"requests": [
		{"description": "Need a wheelchair escort", "location": "Science Hall", "requestedDate": "2020-05-01", "requestedTime": "2:30 PM"},
		{"description": "missing everything else"}
	]}`
	req := httptest.NewRequest("PUT", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Saved   int   `json:"saved"`
		Skipped []int `json:"skipped"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")

	assert.Equal(t, 1, resp.Saved)
	assert.Equal(t, []int{1}, resp.Skipped, "the malformed record is skipped, not fatal")
}

func TestUpdateRequestStatusInvalidTransition(t *testing.T) {
	s, a, _, finish := testRequestServer(t)
	defer finish()

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.User{
		ID: "viewer-1",
	}, nil).Times(1)

	a.EXPECT().UpdateRequestStatus("viewer-1", "srv-1", schema.RequestAccepted).
		Return(nil, store.ErrInvalidTransition).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.PATCH("/:requestID", s.updateRequestStatus)

	req := httptest.NewRequest("PATCH", "/srv-1", strings.NewReader(`{"status": "accepted"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1201), resp.Code)
}

func TestDeleteRequestCompletes(t *testing.T) {
	s, a, _, finish := testRequestServer(t)
	defer finish()

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.User{
		ID: "viewer-1",
	}, nil).Times(1)

	a.EXPECT().UpdateRequestStatus("viewer-1", "srv-1", schema.RequestCompleted).
		Return(&schema.AssistanceRequest{
			ID:       "srv-1",
			ServerID: "srv-1",
			Status:   schema.RequestCompleted,
		}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.DELETE("/:requestID", s.deleteRequest)

	req := httptest.NewRequest("DELETE", "/srv-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdateRequestStatusNotOwner(t *testing.T) {
	s, a, _, finish := testRequestServer(t)
	defer finish()

	a.EXPECT().GetAccount(gomock.Any()).Return(&schema.User{
		ID: "stranger",
	}, nil).Times(1)

	a.EXPECT().UpdateRequestStatus("stranger", "srv-1", schema.RequestCancelled).
		Return(nil, store.ErrNotRequestOwner).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.PATCH("/:requestID", s.updateRequestStatus)

	req := httptest.NewRequest("PATCH", "/srv-1", strings.NewReader(`{"status": "cancelled"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var resp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1203), resp.Code)
}
