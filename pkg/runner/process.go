package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/classwrap/internal/logging"
	"github.com/yaklabco/classwrap/pkg/annotation"
	"github.com/yaklabco/classwrap/pkg/classname"
	"github.com/yaklabco/classwrap/pkg/config"
	"github.com/yaklabco/classwrap/pkg/dialect"
	"github.com/yaklabco/classwrap/pkg/fix"
	"github.com/yaklabco/classwrap/pkg/fsutil"
)

// processFile formats a single file. Errors are recorded on the outcome.
func (r *Runner) processFile(ctx context.Context, path, display string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path, DisplayPath: display}
	logger := logging.FromContext(ctx).With(logging.FieldPath, display)

	sidecar := opts.Annotations
	if sidecar == "" {
		sidecar = annotation.SidecarPath(path)
	}
	ann, err := annotation.Load(sidecar)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	content, snap, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	source := string(content)

	cfg := opts.config()
	d, err := resolveDialect(cfg, ann, path, content)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Dialect = d

	nodes, err := ann.Nodes(source)
	if err != nil {
		outcome.Error = fmt.Errorf("%s: %w", sidecar, err)
		return outcome
	}
	outcome.Nodes = len(nodes)

	logger = logger.With(logging.FieldDialect, d)
	ctx = logging.WithLogger(ctx, logger)

	edits, err := classname.Plan(ctx, source, nodes, cfg.RenderOptions(d), r.rewrapper)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	formatted, err := fix.Apply(source, edits)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	outcome.Edits = len(edits)
	outcome.Output = formatted
	outcome.Changed = formatted != source
	logger.Debug("formatted file", logging.FieldNodes, len(nodes), logging.FieldEdits, len(edits))

	if !outcome.Changed {
		return outcome
	}
	if opts.Diff {
		outcome.Diff = fix.GenerateDiff(display, content, []byte(formatted))
	}
	if !opts.Write {
		return outcome
	}

	res, err := fsutil.Commit(ctx, snap, []byte(formatted), opts.Backup)
	if err != nil {
		if errors.Is(err, fsutil.ErrStale) {
			logger.Warn("file changed while formatting, skipping")
			outcome.Skipped = true
			outcome.SkipReason = "modified during formatting"
			return outcome
		}
		outcome.Error = err
		return outcome
	}
	outcome.Written = true
	outcome.BackupPath = res.BackupPath
	return outcome
}

// resolveDialect picks the configured dialect, then the sidecar's, then
// the detected one.
func resolveDialect(cfg *config.Config, ann *annotation.File, path string, content []byte) (classname.Dialect, error) {
	for _, name := range []string{cfg.Dialect, ann.Dialect} {
		if name == "" {
			continue
		}
		d, err := classname.ParseDialect(name)
		if err != nil {
			return "", err
		}
		return d, nil
	}
	return dialect.Detect(path, content), nil
}
