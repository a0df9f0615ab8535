package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// IngestionResult reports what happened to one candidate file. Err is a
// string rather than an error so directory scans can collect per-file
// failures without aborting the walk.
type IngestionResult struct {
	SourcePath   string
	FileID       string
	Deduplicated bool
	HashHex      string
	FileExt      string
	UploadedAt   time.Time
	Err          string
}

// DirStats totals a directory ingest. Matched counts files whose
// extension passed the filter; Scanned counts everything visited.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Ingestor registers invoice files for extraction.
type Ingestor interface {
	// IngestPath hashes, deduplicates and stores a single file.
	IngestPath(ctx context.Context, profileID uuid.UUID, path string) (IngestionResult, error)
	// IngestDirectory walks root and ingests every allowed file.
	IngestDirectory(ctx context.Context, profileID uuid.UUID, root string, skipHidden bool) ([]IngestionResult, DirStats, error)
}
