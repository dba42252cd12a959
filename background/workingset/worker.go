package workingset

import (
	"net/http"
	"time"

	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/opencampus/assist-api/background"
	"github.com/opencampus/assist-api/external/onesignal"
	"github.com/opencampus/assist-api/store"
)

const TaskListName = "assist-workingset-tasks"

type WorkingSetWorker struct {
	background.Background
	domain string
	store  store.AssistCore
	mongo  store.MongoStore
}

func NewWorkingSetWorker(domain string, assist store.AssistCore, mongo store.MongoStore) *WorkingSetWorker {
	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	b := background.Background{Onesignal: o}
	return &WorkingSetWorker{
		Background: b,
		domain:     domain,
		store:      assist,
		mongo:      mongo,
	}
}

func (w *WorkingSetWorker) Register() {
	workflow.RegisterWithOptions(w.WorkingSetRefreshWorkflow, workflow.RegisterOptions{Name: "WorkingSetRefreshWorkflow"})

	activity.RegisterWithOptions(w.RefreshWorkingSetActivity, activity.RegisterOptions{Name: "RefreshWorkingSetActivity"})
	activity.RegisterWithOptions(w.NotifyWorkingSetChangedActivity, activity.RegisterOptions{Name: "NotifyWorkingSetChangedActivity"})
}

func (w *WorkingSetWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	// TaskListName identifies set of client workflows, activities, and workers.
	// It could be your group or client or application name.
	workerOptions := worker.Options{
		Logger:       logger,
		MetricsScope: tally.NewTestScope(TaskListName, map[string]string{}),
	}

	cadenceWorker := worker.New(
		service,
		w.domain,
		TaskListName,
		workerOptions)

	if err := cadenceWorker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
