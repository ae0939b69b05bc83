// Package history records migration runs and per-file outcomes so a large
// corpus migration can be audited after the fact. Backends follow the
// storage-interface-plus-factory pattern: a gorm implementation (postgres
// with a local sqlite fallback) and an in-memory one.
package history

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Run is one invocation of the migration runner.
type Run struct {
	ID         string `gorm:"primaryKey"`
	Steps      string // comma-joined step names, in applied order
	StartedAt  time.Time
	FinishedAt *time.Time
	Migrated   int
	Skipped    int
	Failed     int
}

// FileResult is the outcome for one level file within a run.
type FileResult struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	RunID      string `gorm:"index"`
	Path       string
	Outcome    string
	Detail     datatypes.JSON
	RecordedAt time.Time
}

// Backend is the interface all history implementations must satisfy.
type Backend interface {
	BeginRun(run *Run) error
	RecordFile(res *FileResult) error
	FinishRun(run *Run) error
	Close() error
}

// NewRun builds a Run with a fresh identifier.
func NewRun(steps []string) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Steps:     strings.Join(steps, ","),
		StartedAt: time.Now().UTC(),
	}
}

// fileDetail is the JSON payload stored per file result.
type fileDetail struct {
	ChangedSteps []string `json:"changedSteps,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// NewFileResult builds a FileResult, packing the changed steps and any error
// into the detail column.
func NewFileResult(runID, path, outcome string, changedSteps []string, err error) *FileResult {
	detail := fileDetail{ChangedSteps: changedSteps}
	if err != nil {
		detail.Error = err.Error()
	}
	raw, _ := json.Marshal(detail)
	return &FileResult{
		RunID:      runID,
		Path:       path,
		Outcome:    outcome,
		Detail:     datatypes.JSON(raw),
		RecordedAt: time.Now().UTC(),
	}
}
