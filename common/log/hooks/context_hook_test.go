package hooks

import (
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestContextHookAddsCaller(t *testing.T) {
	logger := log.New()
	logger.AddHook(NewContextHook())
	hook := test.NewLocal(logger)

	logger.WithFields(log.Fields{"k": "v"}).Info("hello")

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected an entry")
	}
	fileLine, _ := entry.Data["file:line"].(string)
	if !strings.Contains(fileLine, "context_hook_test.go:") {
		t.Fatalf("expected caller to be this test, got %q", fileLine)
	}
}
