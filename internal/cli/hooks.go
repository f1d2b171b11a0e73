package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pymatrix/pkg/observability"
)

// logHooks reports observability events through the CLI logger.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnListStart(_ context.Context, kind, url string) {
	h.logger.Debug("listing tags", "source", kind, "url", url)
}

func (h logHooks) OnListComplete(_ context.Context, kind, url string, tagCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("listing failed", "source", kind, "url", url, "duration", d.Round(time.Millisecond))
		return
	}
	h.logger.Debug("listed tags", "source", kind, "tags", tagCount, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnTagRejected(_ context.Context, tag, reason string) {
	h.logger.Debug("rejected", "tag", tag, "reason", reason)
}

func (h logHooks) OnVersionAccepted(_ context.Context, tag, version string) {
	h.logger.Debug("accepted", "tag", tag, "version", version)
}

func (h logHooks) OnBuildComplete(_ context.Context, tagCount, versionCount int) {
	h.logger.Debug("matrix complete", "tags", tagCount, "versions", versionCount)
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "status", status, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "error", err)
}

// registerHooks routes all observability events to logger.
func registerHooks(logger *log.Logger) {
	h := logHooks{logger: logger}
	observability.SetSourceHooks(h)
	observability.SetMatrixHooks(h)
	observability.SetHTTPHooks(h)
}

var (
	_ observability.SourceHooks = logHooks{}
	_ observability.MatrixHooks = logHooks{}
	_ observability.HTTPHooks   = logHooks{}
)
