// Package logging contains the logrus implementation of the audit sink.
package logging

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/example/htscan/internal/ctxutil"
	"github.com/example/htscan/internal/ports/secondary"
)

// AuditWriter implements secondary.AuditWriter with structured logrus
// entries. Writes are best-effort: logrus output errors are swallowed so a
// failing sink can never fail the calling operation.
type AuditWriter struct {
	log *logrus.Logger
}

// NewAuditWriter creates an audit writer emitting JSON entries to out.
// level is the minimum logrus level name; unknown names fall back to info.
func NewAuditWriter(out io.Writer, level string) *AuditWriter {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return &AuditWriter{log: log}
}

// Write emits one audit entry. The device identity is taken from context
// when present.
func (w *AuditWriter) Write(ctx context.Context, level, category, message string) {
	entry := w.log.WithField("category", category)
	if device := ctxutil.DeviceFromContext(ctx); device != "" {
		entry = entry.WithField("device", device)
	}

	switch level {
	case secondary.AuditError:
		entry.Error(message)
	case secondary.AuditWarn:
		entry.Warn(message)
	default:
		entry.Info(message)
	}
}

// Ensure AuditWriter implements the interface
var _ secondary.AuditWriter = (*AuditWriter)(nil)
