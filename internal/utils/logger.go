package utils

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide structured logger.
var Log = logrus.New()

// ConfigureLogger sets level and output format. Debug mode logs as text,
// everything else as JSON.
func ConfigureLogger(level, ginMode string) {
	Log.SetOutput(os.Stdout)
	if strings.EqualFold(ginMode, "debug") {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		Log.SetFormatter(&logrus.JSONFormatter{})
	}
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
}

// Entry returns a logger carrying module/action/request_id fields.
func Entry(ctx context.Context, module, action string) *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"module":     strings.ToLower(module),
		"action":     action,
		"request_id": RequestIDFrom(ctx),
	})
}

// LogEvent writes a standardized info line. Message should be a summary,
// never a raw payload.
func LogEvent(ctx context.Context, module, action, message string) {
	Entry(ctx, module, action).Info(message)
}

// LogError writes a standardized error line.
func LogError(ctx context.Context, module, action string, err error) {
	Entry(ctx, module, action).WithError(err).Error(action + " failed")
}
