package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/libfinder/pkg/observability"
)

// logHooks reports HTTP traffic and per-file outcomes at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.HTTPHooks    = logHooks{}
	_ observability.ResolveHooks = logHooks{}
)

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "host", host, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("request failed", "method", method, "host", host, "path", path, "err", err)
}

func (h logHooks) OnResolve(_ context.Context, filename, status string, d time.Duration) {
	h.logger.Debug("resolved", "file", filename, "status", status, "took", d.Round(time.Millisecond))
}

func registerHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetHTTPHooks(h)
	observability.SetResolveHooks(h)
}
