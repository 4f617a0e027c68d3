package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/classwrap/pkg/annotation"
	"github.com/yaklabco/classwrap/pkg/fsutil"
)

// ErrAnnotationsNeedOneFile is returned when Options.Annotations is set
// but the inputs are not exactly one file.
var ErrAnnotationsNeedOneFile = errors.New("--annotations requires exactly one input file")

// Discover returns the sorted absolute paths of the files to format.
// Files found by walking a directory must match an extension and have a
// sidecar. Files named explicitly are always returned unless excluded.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, err
	}

	d := &discoverer{
		ctx:     ctx,
		workDir: workDir,
		opts:    opts,
		exts:    opts.extensions(),
		seen:    make(map[string]struct{}),
	}

	for _, input := range opts.paths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery canceled: %w", err)
		}

		abs := input
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if opts.Annotations != "" && (info.IsDir() || len(opts.paths()) != 1) {
			return nil, ErrAnnotationsNeedOneFile
		}

		if info.IsDir() {
			if err := d.walk(abs); err != nil {
				return nil, err
			}
			continue
		}
		if !d.excluded(abs) {
			d.add(abs)
		}
	}

	slices.Sort(d.files)
	return d.files, nil
}

type discoverer struct {
	ctx     context.Context
	workDir string
	opts    Options
	exts    []string
	seen    map[string]struct{}
	files   []string
}

func (d *discoverer) add(path string) {
	if _, ok := d.seen[path]; ok {
		return
	}
	d.seen[path] = struct{}{}
	d.files = append(d.files, path)
}

func (d *discoverer) walk(root string) error {
	err := filepath.WalkDir(root, func(p string, entry fs.DirEntry, walkErr error) error {
		if err := d.ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		hidden := p != root && strings.HasPrefix(entry.Name(), ".")
		if entry.IsDir() {
			if hidden || entry.Name() == "node_modules" || d.excluded(p) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := filepath.EvalSymlinks(p)
			if err != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			info, err := os.Stat(target)
			if err != nil {
				return nil //nolint:nilerr // Unreadable targets are skipped.
			}
			if info.IsDir() {
				if d.opts.FollowSymlinks {
					return d.walk(target)
				}
				return nil
			}
		}

		if d.candidate(p) {
			d.add(p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}
	return nil
}

// candidate reports whether a walked file should be formatted.
func (d *discoverer) candidate(p string) bool {
	if annotation.IsSidecar(p) || strings.HasSuffix(p, fsutil.BackupSuffix) {
		return false
	}
	if !slices.Contains(d.exts, strings.ToLower(filepath.Ext(p))) {
		return false
	}
	if d.excluded(p) {
		return false
	}
	_, err := os.Stat(annotation.SidecarPath(p))
	return err == nil
}

func (d *discoverer) excluded(p string) bool {
	rel, err := filepath.Rel(d.workDir, p)
	if err != nil {
		rel = p
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range d.opts.ExcludeGlobs {
		if matchGlob(rel, pattern) {
			return true
		}
	}
	return false
}

func resolveWorkDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return abs, nil
}

// matchGlob matches a slash-separated relative path against a pattern.
// "**" matches any number of path segments. A pattern without a slash
// matches the base name at any depth.
func matchGlob(name, pattern string) bool {
	pattern = filepath.ToSlash(pattern)
	if !strings.Contains(pattern, "/") {
		ok, _ := path.Match(pattern, path.Base(name))
		return ok
	}
	return matchSegments(strings.Split(name, "/"), strings.Split(strings.Trim(pattern, "/"), "/"))
}

func matchSegments(name, pattern []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			if len(rest) == 0 {
				return true
			}
			for i := range len(name) + 1 {
				if matchSegments(name[i:], rest) {
					return true
				}
			}
			return false
		}
		if len(name) == 0 {
			return false
		}
		if ok, _ := path.Match(pattern[0], name[0]); !ok {
			return false
		}
		name, pattern = name[1:], pattern[1:]
	}
	// A directory pattern also excludes everything below it.
	return true
}
