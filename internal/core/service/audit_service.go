package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shelfmark/catalog-api/internal/core/ports"
)

// AuditRecorder writes audit entries as structured log records. It is the
// consumer end of the audit dispatcher; one entry becomes exactly one log
// line, keyed so downstream collectors can filter on audit_* fields.
type AuditRecorder struct {
	logger zerolog.Logger
}

func NewAuditRecorder(logger zerolog.Logger) *AuditRecorder {
	return &AuditRecorder{logger: logger}
}

func (r *AuditRecorder) Record(_ context.Context, entry ports.AuditEntry) error {
	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	r.logger.Info().
		Str("audit_actor", entry.Actor).
		Str("audit_action", entry.Action).
		Str("audit_outcome", entry.Outcome).
		Str("audit_detail", entry.Detail).
		Time("audit_time", ts).
		Msg("audit event")

	return nil
}
