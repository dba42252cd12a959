package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencampus/assist-api/external/cadence"
	"github.com/opencampus/assist-api/logmodule"
	"github.com/opencampus/assist-api/session"
	"github.com/opencampus/assist-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.AssistCore
	mongoStore store.MongoStore

	// Login sessions
	sessions *session.RedisStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// job pool enqueuer
	background *machinery.Server

	// cadence client for signalling working set refresh workflows
	cadenceClient *cadence.CadenceClient
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	sessions *session.RedisStore,
	backgroundEnqueuer *machinery.Server,
	cadenceClient *cadence.CadenceClient,
	jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		store:         store.NewAssistStore(ormDB),
		mongoStore:    store.NewMongoStore(mongoClient, viper.GetString("mongo.database")),
		sessions:      sessions,
		jwtPrivateKey: jwtKey,
		background:    backgroundEnqueuer,
		cadenceClient: cadenceClient,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.GET("/information", s.information)
	apiRoute.POST("/auth", s.requestJWT)
	apiRoute.POST("/accounts", s.accountRegister)

	// api routes other than registration and login require a token
	// backed by a live session
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdateProfile)
		accountRoute.POST("/me/logout", s.accountLogout)
		accountRoute.DELETE("/me", s.accountDelete)
	}

	requestRoute := apiRoute.Group("/requests")
	requestRoute.Use(s.recognizeAccountMiddleware())
	{
		requestRoute.POST("", s.submitRequest)
		requestRoute.GET("", s.listOpenRequests)
		requestRoute.GET("/mine", s.listOwnRequests)
		requestRoute.GET("/history", s.listRequestHistory)
		requestRoute.PUT("/cache", s.uploadRequestCache)
		requestRoute.PATCH("/:requestID", s.updateRequestStatus)
		requestRoute.DELETE("/:requestID", s.deleteRequest)
	}

	adminRoute := apiRoute.Group("/admin")
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

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/expire-requests", s.adminExpireRequests)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "Assist 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
