package model

import "time"

// FileStatus is the outcome of verifying a single document.
type FileStatus int

const (
	// Passed indicates the round trip reproduced the document structure.
	Passed FileStatus = iota
	// Failed indicates the round trip diverged from the source document.
	Failed
	// ParseFailed indicates the source document is not well-formed XML.
	ParseFailed
	// ModelMismatch indicates no data-object is registered for the document.
	ModelMismatch
	// Errored indicates any other failure (read errors, invalid field values).
	Errored
)

func (s FileStatus) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case ParseFailed:
		return "parse_error"
	case ModelMismatch:
		return "model_mismatch"
	case Errored:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText lets the status render as its name in JSON reports.
func (s FileStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// FileResult holds the round-trip verification result for one document.
type FileResult struct {
	File     File          `json:"file"`
	Model    string        `json:"model,omitempty"`
	Status   FileStatus    `json:"status"`
	Report   DiffReport    `json:"report"`
	Diff     string        `json:"diff,omitempty"`     // unified diff of normalized texts
	Unmapped []string      `json:"unmapped,omitempty"` // content preserved without a typed field
	Error    string        `json:"error,omitempty"`
	Large    bool          `json:"large,omitempty"` // file size above the configured threshold
	Duration time.Duration `json:"duration"`
}

// Summary aggregates the results of a batch run.
type Summary struct {
	RunID     string        `json:"run_id"`
	Directory Path          `json:"directory"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Files     []FileResult  `json:"files"` // sorted by path
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Errored   int           `json:"errored"`
	Skipped   int           `json:"skipped"` // not dispatched because the run was cancelled
	Cancelled bool          `json:"cancelled"`
	Aggregate DiffReport    `json:"aggregate"`
}

// Total returns the number of verified files.
func (s Summary) Total() int {
	return len(s.Files)
}

// PassRate returns the share of passed files in percent; an empty run is 100.
func (s Summary) PassRate() float64 {
	if len(s.Files) == 0 {
		return 100
	}

	return float64(s.Passed) / float64(len(s.Files)) * 100
}
