package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job identifies one ingested file awaiting extraction. TraceID carries
// the request ID from the API layer so worker logs line up with handler
// logs.
type Job struct {
	FileID      uuid.UUID
	Force       bool // reprocess even when the file was deduplicated
	SubmittedAt time.Time
	TraceID     string
}

// Queue accepts extraction jobs. Enqueue fails fast when the queue is
// full or shut down; Shutdown drains in-flight work until ctx expires.
type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
