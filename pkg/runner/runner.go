package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/classwrap/internal/logging"
	"github.com/yaklabco/classwrap/pkg/classname"
	"github.com/yaklabco/classwrap/pkg/wrap"
)

// Runner formats files with a re-wrap callback.
type Runner struct {
	rewrapper classname.Rewrapper
}

// New returns a Runner. A nil rewrapper selects wrap.Greedy.
func New(rw classname.Rewrapper) *Runner {
	if rw == nil {
		rw = wrap.Greedy{}
	}
	return &Runner{rewrapper: rw}
}

// Run discovers files and formats them concurrently. Files are
// independent; each one is formatted sequentially. Outcomes are returned
// in discovery order regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	outcomes := make([]FileOutcome, len(files))
	done := make([]bool, len(files))

	var group errgroup.Group
	group.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		if ctx.Err() != nil {
			break
		}
		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			outcomes[i] = r.processFile(ctx, path, displayPath(workDir, path), opts)
			done[i] = true
			return nil
		})
	}
	_ = group.Wait()

	for i := range outcomes {
		if done[i] {
			result.accumulate(outcomes[i])
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run canceled: %w", err)
	}

	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldFilesFailed, result.Stats.FilesFailed)

	return result, nil
}

func displayPath(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
