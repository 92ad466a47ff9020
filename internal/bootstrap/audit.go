package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records lifecycle events. The console only ships the
// stdout implementation; the interface keeps the server loop testable.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
