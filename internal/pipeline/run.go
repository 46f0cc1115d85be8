// Package pipeline provides the high-level orchestration for a lint run.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/docs-lint/internal/types"
	"github.com/jonathan/docs-lint/internal/validation"
)

// Progress steps reported through RunOptions.OnProgress
const (
	StepDiscovered = "discovered"
	StepValidated  = "validated"
	StepCompleted  = "completed"
)

// ProgressEvent represents a progress update during a run.
// Content is []string for StepDiscovered, types.FileReport for StepValidated
// and *types.RunResult for StepCompleted.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when run progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for a lint run
type RunOptions struct {
	Root     string
	Excluded []string
	Context  *validation.Context
	// Jobs bounds how many files are validated at once; values below 1 mean 1
	Jobs       int
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, runID, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID,
			Content: content,
		})
	}
}

// Run discovers the markdown files under opts.Root and validates each one.
// Files are validated concurrently, but StepValidated events are emitted in
// discovery order and the result lists files in that order. A per-file
// problem never stops the run; only discovery failure or cancellation of ctx
// returns an error.
func Run(ctx context.Context, opts RunOptions) (*types.RunResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	files, err := DiscoverFiles(opts.Root, opts.Excluded)
	if err != nil {
		return nil, fmt.Errorf("file discovery failed: %w", err)
	}

	runID := uuid.New().String()
	logger.Debug("discovered markdown files",
		zap.String("run_id", runID),
		zap.String("root", opts.Root),
		zap.Int("count", len(files)),
		zap.Strings("excluded", opts.Excluded))
	emitProgress(&opts, StepDiscovered, runID, fmt.Sprintf("Found %d markdown files to validate", len(files)), files)

	result := &types.RunResult{
		RunID: runID,
		Root:  opts.Root,
		Files: make([]types.FileReport, len(files)),
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	// reports are released in discovery order as soon as every earlier file is done
	var mu sync.Mutex
	done := make([]bool, len(files))
	next := 0

	for i, path := range files {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			start := time.Now()
			report := validation.ValidateFile(path, opts.Context)
			logger.Debug("validated file",
				zap.String("file", path),
				zap.Bool("valid", report.Valid()),
				zap.Int("findings", len(report.Violations())),
				zap.Duration("elapsed", time.Since(start)))

			mu.Lock()
			defer mu.Unlock()
			result.Files[i] = report
			done[i] = true
			for next < len(files) && done[next] {
				emitProgress(&opts, StepValidated, runID, "Validating "+files[next], result.Files[next])
				next++
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("lint run cancelled: %w", err)
	}

	emitProgress(&opts, StepCompleted, runID, fmt.Sprintf("Validated %d files", len(files)), result)

	return result, nil
}
