package constants

// JobStatus tracks an extract job through the pipeline stages. Values
// are stored verbatim in the database; never rename them.
type JobStatus string

const (
	JobStatusQueued  JobStatus = "QUEUED"  // accepted, waiting for a worker
	JobStatusRunning JobStatus = "RUNNING" // worker picked it up
	JobStatusOCROK   JobStatus = "OCR_OK"  // text extracted, fields pending
	JobStatusLLMOK   JobStatus = "LLM_OK"  // fields extracted and stored
	JobStatusFailed  JobStatus = "FAILED"  // terminal failure
)
