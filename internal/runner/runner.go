// Package runner applies migration steps to a corpus of level files:
// one file at a time, full decode before any write, continue past per-file
// failures, and never rewrite a document no step changed.
package runner

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/zachsnow/laserfingers/internal/document"
	"github.com/zachsnow/laserfingers/internal/history"
	"github.com/zachsnow/laserfingers/internal/migrate"
)

// ErrNoLevels is returned when the levels directory contains no JSON files.
var ErrNoLevels = errors.New("no level files found")

// Outcome classifies what happened to one file.
type Outcome string

const (
	OutcomeMigrated Outcome = "migrated"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeFailed   Outcome = "failed"
)

// FileResult is the per-file report.
type FileResult struct {
	Path         string
	Outcome      Outcome
	ChangedSteps []string
	Err          error
}

// Summary aggregates a batch run.
type Summary struct {
	Total    int
	Migrated int
	Skipped  int
	Failed   int
	Results  []FileResult
}

// Runner walks a levels directory and applies its steps to each file.
type Runner struct {
	logger  *slog.Logger
	steps   []migrate.Step
	history history.Backend
}

// New creates a runner. history may be nil to disable run recording.
func New(logger *slog.Logger, steps []migrate.Step, hist history.Backend) *Runner {
	return &Runner{logger: logger, steps: steps, history: hist}
}

// Run migrates every *.json file under root, in lexical walk order. The
// batch continues past per-file failures; a missing directory or an empty
// corpus is fatal.
func (r *Runner) Run(root string) (Summary, error) {
	info, err := os.Stat(root)
	if err != nil {
		return Summary{}, fmt.Errorf("levels directory not found at %s: %w", root, err)
	}
	if !info.IsDir() {
		return Summary{}, fmt.Errorf("levels path %s is not a directory", root)
	}

	files, err := discoverLevels(root)
	if err != nil {
		return Summary{}, err
	}
	if len(files) == 0 {
		return Summary{}, fmt.Errorf("%w under %s", ErrNoLevels, root)
	}
	r.logger.Info("Found level files", "count", len(files), "root", root)

	run := r.beginRun()

	var summary Summary
	summary.Total = len(files)
	for _, path := range files {
		res := r.processFile(path)
		summary.Results = append(summary.Results, res)

		switch res.Outcome {
		case OutcomeMigrated:
			summary.Migrated++
			r.logger.Info("Migrated", "file", path, "steps", strings.Join(res.ChangedSteps, ","))
		case OutcomeSkipped:
			summary.Skipped++
			r.logger.Debug("Already migrated, skipping", "file", path)
		case OutcomeFailed:
			summary.Failed++
			r.logger.Error("Migration failed", "file", path, "error", res.Err)
		}
		r.recordFile(run, res)
	}

	r.finishRun(run, summary)
	r.logger.Info("Migration complete",
		"migrated", summary.Migrated, "skipped", summary.Skipped, "failed", summary.Failed)
	return summary, nil
}

// processFile applies every step in order to one file. The original bytes
// are only replaced after all steps succeed, so a failure never corrupts
// the file.
func (r *Runner) processFile(path string) FileResult {
	res := FileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}

	root, err := document.Parse(data)
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}

	for _, step := range r.steps {
		changed, err := step.Apply(root)
		if err != nil {
			res.Outcome = OutcomeFailed
			res.Err = fmt.Errorf("step %s: %w", step.Name, err)
			return res
		}
		if changed {
			res.ChangedSteps = append(res.ChangedSteps, step.Name)
		}
	}

	if len(res.ChangedSteps) == 0 {
		res.Outcome = OutcomeSkipped
		return res
	}

	out, err := document.Encode(root)
	if err != nil {
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		res.Outcome = OutcomeFailed
		res.Err = err
		return res
	}

	res.Outcome = OutcomeMigrated
	return res
}

func discoverLevels(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking levels directory: %w", err)
	}
	return files, nil
}

func (r *Runner) stepNames() []string {
	names := make([]string, len(r.steps))
	for i, s := range r.steps {
		names[i] = s.Name
	}
	return names
}

func (r *Runner) beginRun() *history.Run {
	if r.history == nil {
		return nil
	}
	run := history.NewRun(r.stepNames())
	if err := r.history.BeginRun(run); err != nil {
		r.logger.Warn("Failed to record run start", "error", err)
		return nil
	}
	return run
}

func (r *Runner) recordFile(run *history.Run, res FileResult) {
	if r.history == nil || run == nil {
		return
	}
	fr := history.NewFileResult(run.ID, res.Path, string(res.Outcome), res.ChangedSteps, res.Err)
	if err := r.history.RecordFile(fr); err != nil {
		r.logger.Warn("Failed to record file result", "file", res.Path, "error", err)
	}
}

func (r *Runner) finishRun(run *history.Run, summary Summary) {
	if r.history == nil || run == nil {
		return
	}
	run.Migrated = summary.Migrated
	run.Skipped = summary.Skipped
	run.Failed = summary.Failed
	if err := r.history.FinishRun(run); err != nil {
		r.logger.Warn("Failed to record run finish", "error", err)
	}
}
