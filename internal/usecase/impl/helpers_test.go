package impl

import (
	"io"
	"log/slog"
	"time"

	"league/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedClock always reports the same instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.TimeZone = "UTC"
	cfg.ApplyDefaults()
	cfg.Receipt.Timeout = time.Second

	return cfg
}
