package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every hook event as a debug log line. It implements
// OrderHooks, LoadHooks and HTTPHooks.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that write to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{Logger: logger}
}

// Register installs h for every hook category.
func (h *LogHooks) Register() {
	SetOrderHooks(h)
	SetLoadHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) OnOrderStart(_ context.Context, items int) {
	h.Logger.Debug("order start", "items", items)
}

func (h *LogHooks) OnOrderComplete(_ context.Context, items, cycles int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("order failed", "items", items, "took", d, "err", err)
		return
	}
	h.Logger.Debug("order complete", "items", items, "cycles", cycles, "took", d)
}

func (h *LogHooks) OnLoadStart(_ context.Context, path string) {
	h.Logger.Debug("load start", "path", path)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, path string, items int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("load failed", "path", path, "took", d, "err", err)
		return
	}
	h.Logger.Debug("load complete", "path", path, "items", items, "took", d)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.Logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.Logger.Debug("response", "method", method, "path", path, "status", status, "took", d)
}
