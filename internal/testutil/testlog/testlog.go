package testlog

import (
	"testing"

	"github.com/danmuck/obswire/internal/logging"
)

// Start bootstraps test-profile logging and emits one marker line so log
// output can be attributed to the test that produced it.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	logging.Infof("test=%s", t.Name())
}
