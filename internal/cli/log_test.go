package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/libfinder/pkg/observability"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("scanned") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("searching") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("searching") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("lookup failed") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))

	time.Sleep(10 * time.Millisecond)
	prog.done("Resolved 3 of 4 libraries")

	if !strings.Contains(buf.String(), "Resolved 3 of 4 libraries (") {
		t.Errorf("progress.done() output = %q", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	logger := log.New(&bytes.Buffer{})
	if got := loggerFromContext(withLogger(context.Background(), logger)); got != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should fall back to the default logger")
	}
}

func TestLogHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	var buf bytes.Buffer
	registerHooks(newLogger(&buf, log.DebugLevel))

	ctx := context.Background()
	observability.HTTP().OnRequest(ctx, "GET", "search.maven.org", "/solrsearch/select")
	observability.Resolve().OnResolve(ctx, "foo-1.2.3.jar", "resolved", 5*time.Millisecond)

	out := buf.String()
	for _, want := range []string{"search.maven.org", "foo-1.2.3.jar", "resolved"} {
		if !strings.Contains(out, want) {
			t.Errorf("hook output missing %q:\n%s", want, out)
		}
	}
}

func TestVerboseFlagEnablesDebug(t *testing.T) {
	dir := libFolder(t, "weird.txt")

	_, logs, err := execute(t, dir, "-v", "--overrides", missingOverrides(t))
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !strings.Contains(logs, "scanned library folder") {
		t.Errorf("debug output missing with -v:\n%s", logs)
	}
}
