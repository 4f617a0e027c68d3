package fsutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is used when no mode is given.
const DefaultFileMode os.FileMode = 0o644

// WriteAtomic writes content to a temp file in the target's directory and
// renames it over path. On error the target is left untouched.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write atomic: %w", err)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	done := false
	defer func() {
		if !done {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	done = true
	return nil
}

// CommitResult describes what Commit did.
type CommitResult struct {
	// BackupPath is set when a backup was created.
	BackupPath string
}

// Commit writes rewritten content over the file described by snap. It
// refuses with ErrStale if the file changed since the snapshot, creates a
// backup per cfg, and keeps the original permission bits.
func Commit(ctx context.Context, snap *Snapshot, content []byte, cfg BackupConfig) (CommitResult, error) {
	var res CommitResult

	stale, err := snap.Stale(ctx)
	if err != nil {
		return res, err
	}
	if stale {
		return res, fmt.Errorf("%w: %s", ErrStale, snap.Path)
	}

	created, err := CreateBackup(ctx, snap.Path, cfg)
	if err != nil {
		return res, err
	}
	if created {
		res.BackupPath = BackupPath(snap.Path, cfg.Mode)
	}

	if err := WriteAtomic(ctx, snap.Path, content, snap.Mode); err != nil {
		return res, err
	}
	return res, nil
}
