// Package hooks holds logrus hooks shared by harvest binaries.
package hooks

import (
	"fmt"
	"runtime"
	"strings"

	log "github.com/sirupsen/logrus"
)

type contextHook struct {
}

// NewContextHook returns a hook that adds a "file:line" field naming the
// caller of the logrus function, relative to the harvest tree.
func NewContextHook() contextHook {
	return contextHook{}
}

func (hook contextHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook contextHook) Fire(entry *log.Entry) error {
	pcs := make([]uintptr, 32)
	frames := runtime.CallersFrames(pcs[:runtime.Callers(2, pcs)])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "sirupsen/logrus") && !strings.HasSuffix(frame.File, "context_hook.go") {
			ctx := strings.Split(frame.File, "harvest/")
			entry.Data["file:line"] = fmt.Sprintf("%s:%d", ctx[len(ctx)-1], frame.Line)
			return nil
		}
		if !more {
			return nil
		}
	}
}
