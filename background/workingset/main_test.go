package workingset

import (
	"os"
	"testing"

	"github.com/opencampus/assist-api/api/mocks"
)

var refreshWorker *WorkingSetWorker
var storeMock *mocks.MockAssistCore
var mongoMock *mocks.MockMongoStore

func TestMain(m *testing.M) {
	refreshWorker = NewWorkingSetWorker("test", storeMock, mongoMock)
	refreshWorker.Register()
	os.Exit(m.Run())
}
