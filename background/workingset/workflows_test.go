package workingset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"go.uber.org/cadence/testsuite"
	"go.uber.org/cadence/worker"
	"go.uber.org/zap"

	"github.com/opencampus/assist-api/external/cadence"
)

type WorkingSetWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite
	env           *testsuite.TestWorkflowEnvironment
	worker        *WorkingSetWorker
	testAccountID string
}

func (ts *WorkingSetWorkflowTestSuite) SetupSuite() {
	ts.SetLogger(zap.NewNop())
	ts.testAccountID = "df3a9c30-8fbc-4a21-9e0f-5d6c1b9e72aa"
	ts.worker = NewWorkingSetWorker("test", nil, nil)
}

func (ts *WorkingSetWorkflowTestSuite) SetupTest() {
	ts.env = ts.NewTestWorkflowEnvironment()
	ts.env.SetWorkerOptions(worker.Options{
		DataConverter: cadence.NewMsgPackDataConverter(),
	})
}

func (ts *WorkingSetWorkflowTestSuite) TestWorkingSetRefreshWorkflowChanged() {
	ts.env.OnActivity(ts.worker.RefreshWorkingSetActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, accountID string) (bool, error) {
			ts.Equal(ts.testAccountID, accountID)
			return true, nil
		})

	ts.env.OnActivity("NotifyWorkingSetChangedActivity", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, accountID string) error {
			ts.Equal(ts.testAccountID, accountID)
			return nil
		})

	ts.env.ExecuteWorkflow(ts.worker.WorkingSetRefreshWorkflow, ts.testAccountID)

	ts.env.AssertNumberOfCalls(ts.T(), "NotifyWorkingSetChangedActivity", 1)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.Error(ts.env.GetWorkflowError(), "ContinueAsNew")
}

func (ts *WorkingSetWorkflowTestSuite) TestWorkingSetRefreshWorkflowUnchanged() {
	ts.env.OnActivity(ts.worker.RefreshWorkingSetActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, accountID string) (bool, error) {
			ts.Equal(ts.testAccountID, accountID)
			return false, nil
		})

	ts.env.OnActivity("NotifyWorkingSetChangedActivity", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, accountID string) error {
			return nil
		})

	ts.env.ExecuteWorkflow(ts.worker.WorkingSetRefreshWorkflow, ts.testAccountID)

	ts.env.AssertNumberOfCalls(ts.T(), "NotifyWorkingSetChangedActivity", 0)
	ts.True(ts.env.IsWorkflowCompleted())
	ts.Error(ts.env.GetWorkflowError(), "ContinueAsNew")
}

func (ts *WorkingSetWorkflowTestSuite) TestWorkingSetRefreshWorkflowRefreshFails() {
	ts.env.OnActivity(ts.worker.RefreshWorkingSetActivity, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, accountID string) (bool, error) {
			return false, context.DeadlineExceeded
		})

	ts.env.ExecuteWorkflow(ts.worker.WorkingSetRefreshWorkflow, ts.testAccountID)

	ts.True(ts.env.IsWorkflowCompleted())
	ts.Error(ts.env.GetWorkflowError(), "ContinueAsNew")
}

func TestWorkingSetWorkflow(t *testing.T) {
	suite.Run(t, new(WorkingSetWorkflowTestSuite))
}
