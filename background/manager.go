package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencampus/assist-api/external/onesignal"
	"github.com/opencampus/assist-api/store"
)

// BackgroundManager is a struct for assist background manager
type BackgroundManager struct {
	store store.AssistCore

	mongo store.MongoStore

	notifier NotificationCenter

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		store: store.NewAssistStore(ormDB),
		mongo: store.NewMongoStore(
			mongoClient,
			viper.GetString("mongo.database"),
		),
		notifier:   &Background{Onesignal: o},
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("assist-worker", 5)
	return m.worker.Launch()
}
