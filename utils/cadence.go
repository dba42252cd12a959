package utils

import (
	"context"
	"fmt"
	"time"

	cadenceClient "go.uber.org/cadence/client"

	"github.com/opencampus/assist-api/external/cadence"
)

// FIXME: there will be an import cycle if we use `github.com/opencampus/assist-api/background/workingset`
const TaskListName = "assist-workingset-tasks"

// TriggerWorkingSetRefresh is a helper function to send a signal to
// trigger the workflow to rebuild the working sets of the given
// accounts.
func TriggerWorkingSetRefresh(client cadence.CadenceClient, c context.Context, accountIDs []string) error {
	for _, a := range accountIDs {
		if _, err := client.SignalWithStartWorkflow(c,
			fmt.Sprintf("working-set-%s", a), "requestsChangedSignal", nil,
			cadenceClient.StartWorkflowOptions{
				ID:                           fmt.Sprintf("working-set-%s", a),
				TaskList:                     TaskListName,
				ExecutionStartToCloseTimeout: time.Hour,
				WorkflowIDReusePolicy:        cadenceClient.WorkflowIDReusePolicyAllowDuplicate,
			}, "WorkingSetRefreshWorkflow", a); err != nil {
			return err
		}
	}
	return nil
}
