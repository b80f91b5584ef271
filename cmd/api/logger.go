package main

import (
	"log/slog"
	"os"

	"github.com/dikkadev/prettyslog"
	"github.com/gcn-portal/internal/config"
)

// newLogger picks JSON lines for deployed stacks and a readable console
// format for local development.
func newLogger(env config.Environment) *slog.Logger {
	if env.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(prettyslog.NewPrettyslogHandler("gcn-portal", prettyslog.WithLevel(slog.LevelDebug)))
}
