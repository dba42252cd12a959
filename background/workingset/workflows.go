package workingset

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"
)

const (
	WorkingSetRefreshInterval = 5 * time.Minute
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// WorkingSetRefreshWorkflow periodically rebuilds the merged working
// set of an account. It also reacts to a requestsChangedSignal, so a
// submission or status change converges the account's view without
// waiting for the next timer tick.
func (w *WorkingSetWorker) WorkingSetRefreshWorkflow(ctx workflow.Context, accountID string) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)
	signalChan := workflow.GetSignalChannel(ctx, "requestsChangedSignal")
	defer signalChan.Close()

	logger := workflow.GetLogger(ctx)

	selector := workflow.NewSelector(ctx)

	timerCancelCtx, cancelTimerHandler := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, WorkingSetRefreshInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start periodically working set refresh")
	})

	selector.AddReceive(signalChan, func(c workflow.Channel, more bool) {
		cancelTimerHandler()
		signalChan.Receive(ctx, nil)

		logger.Info("Trigger working set refresh by signal")
	})

	selector.Select(ctx)

	var changed bool
	if err := workflow.ExecuteActivity(ctx, w.RefreshWorkingSetActivity, accountID).Get(ctx, &changed); err != nil {
		logger.Error("Fail to refresh working set", zap.Error(err), zap.String("accountID", accountID))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, w.WorkingSetRefreshWorkflow, accountID)
	}

	if changed {
		if err := workflow.ExecuteActivity(ctx, w.NotifyWorkingSetChangedActivity, accountID).Get(ctx, nil); err != nil {
			logger.Error("Fail to notify user", zap.Error(err))
			sentry.CaptureException(err)
		}
	}

	return workflow.NewContinueAsNewError(ctx, w.WorkingSetRefreshWorkflow, accountID)
}
