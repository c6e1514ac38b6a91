package ports

import (
	"context"
	"time"
)

// Audit actions and outcomes used across the service layer.
const (
	AuditActionRegister   = "register"
	AuditActionLogin      = "login"
	AuditActionBookCreate = "book_create"
	AuditActionBookUpdate = "book_update"
	AuditActionBookDelete = "book_delete"

	AuditOutcomeSuccess = "success"
	AuditOutcomeFailure = "failure"
	AuditOutcomeDenied  = "denied"
)

// AuditEntry is one security-relevant occurrence, attributed to an actor.
type AuditEntry struct {
	Actor     string
	Action    string
	Outcome   string
	Detail    string
	Timestamp time.Time
}

// AuditService consumes audit entries handed over by the dispatcher.
type AuditService interface {
	Record(ctx context.Context, entry AuditEntry) error
}

// AuditSink is the producer side: handlers and services enqueue entries
// without blocking on the recording pipeline.
type AuditSink interface {
	Enqueue(entry AuditEntry)
}
