//go:build stave

package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const (
	binary    = "classwrap"
	binPath   = "bin/" + binary
	mainPkg   = "./cmd/" + binary
	coverFile = "coverage.out"
)

// Default target runs build.
var Default = Build

// Aliases for common targets.
var Aliases = map[string]any{
	"b":     Build,
	"t":     Test.Default,
	"te":    Test.Engine,
	"l":     Lint.Default,
	"c":     Check,
	"i":     Install,
	"fmt":   Lint.Fmt,
	"smoke": Smoke,
	"be":    Bench.Engine,
	"prof":  Bench.Profile,
}

// Namespace types group related targets.
type (
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Bench st.Namespace
)

// Build compiles bin/classwrap with version info when sources changed.
func Build() error {
	rebuild, err := target.Dir(binPath, "cmd/", "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !rebuild {
		fmt.Println(binPath, "is up to date")
		return nil
	}
	fmt.Println("Building", binary+"...")
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binPath, mainPkg)
}

// Check runs format, lint, tests and the smoke run.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default, Smoke)
}

// Clean removes build, coverage and benchmark artifacts.
func Clean() error {
	fmt.Println("Cleaning build artifacts...")
	for _, path := range []string{"bin", "bench", coverFile, "coverage.html"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// Install installs classwrap to $GOBIN or $GOPATH/bin.
func Install() error {
	fmt.Println("Installing", binary+"...")
	return sh.RunV("go", "install", "-ldflags", ldflags(), mainPkg)
}

// Uninstall removes classwrap from $GOBIN or $GOPATH/bin.
func Uninstall() error {
	installed, err := installPath(binary)
	if err != nil {
		return err
	}
	if err := os.Remove(installed); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Println(binary, "is not installed")
			return nil
		}
		return fmt.Errorf("remove binary: %w", err)
	}
	fmt.Println("Removed", installed)
	return nil
}

// Deps downloads and tidies module dependencies.
func Deps() error {
	if err := sh.RunV("go", "mod", "download"); err != nil {
		return err
	}
	return sh.RunV("go", "mod", "tidy")
}

// Coverage renders coverage.out as HTML.
func Coverage() error {
	st.Deps(Test.Default)
	return sh.RunV("go", "tool", "cover", "-html="+coverFile, "-o", "coverage.html")
}

// Smoke formats a generated fixture with the built binary: --check must
// report the change and --write must rewrite the page.
func Smoke() error {
	st.Deps(Build)

	dir, err := os.MkdirTemp("", "classwrap-smoke-")
	if err != nil {
		return fmt.Errorf("create fixture directory: %w", err)
	}
	defer os.RemoveAll(dir)

	if err := writeSmokeFixture(dir); err != nil {
		return err
	}

	bin, err := filepath.Abs(binPath)
	if err != nil {
		return fmt.Errorf("resolve binary: %w", err)
	}

	steps := []struct {
		args []string
		want int
	}{
		{args: []string{"format", "--check", "--print-width", "40", dir}, want: 1},
		{args: []string{"format", "--write", "--no-backup", "--print-width", "40", dir}, want: 0},
	}
	for _, step := range steps {
		got := exitCode(exec.Command(bin, step.args...).Run()) //nolint:gosec // binary and args are ours
		if got != step.want {
			return fmt.Errorf("classwrap %s: exit %d, want %d", strings.Join(step.args, " "), got, step.want)
		}
	}
	written, err := os.ReadFile(filepath.Join(dir, "page.html"))
	if err != nil {
		return fmt.Errorf("read formatted page: %w", err)
	}
	if bytes.Count(written, []byte("\n")) < 2 {
		return errors.New("page.html was not rewrapped")
	}
	fmt.Println("✓ Smoke run passed")
	return nil
}

// Default runs all tests with race detection and coverage.
func (Test) Default() error {
	return gotestsum("pkgname-and-test-fails", "-race", "./...",
		"-coverprofile="+coverFile, "-covermode=atomic")
}

// Verbose runs all tests with standard-verbose output.
func (Test) Verbose() error {
	return gotestsum("standard-verbose", "-race", "./...")
}

// Engine runs the rewriting engine tests in shuffled order without caching.
func (Test) Engine() error {
	return gotestsum("testname", "-count=1", "-shuffle=on",
		"./pkg/classname/...", "./pkg/wrap/...", "./pkg/annotation/...")
}

// Default runs golangci-lint with auto-fix.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// CI runs golangci-lint without auto-fix.
func (Lint) CI() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt formats all Go code.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck fails when any Go file is not gofmt-clean.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt check failed: %w", err)
	}
	if out != "" {
		return fmt.Errorf("unformatted files:\n%s\nRun 'stave lint:fmt' to fix", out)
	}
	return nil
}

// Vet runs go vet.
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Gate runs every CI check in order.
func (CI) Gate() error {
	st.SerialDeps(
		Lint.FmtCheck,
		Lint.Vet,
		Lint.CI,
		Build,
		Test.Default,
		Smoke,
		CI.ModTidy,
		CI.Cross,
	)
	fmt.Println("✓ All CI gate checks passed")
	return nil
}

// ModTidy fails when go mod tidy would change go.mod or go.sum.
func (CI) ModTidy() error {
	before, err := readModFiles()
	if err != nil {
		return err
	}
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	after, err := readModFiles()
	if err != nil {
		return err
	}
	for i := range before {
		if !bytes.Equal(before[i], after[i]) {
			return errors.New("go.mod or go.sum changed after 'go mod tidy'; commit the changes")
		}
	}
	return nil
}

// Cross builds for every release platform.
func (CI) Cross() error {
	for _, platform := range []string{
		"linux/amd64", "linux/arm64",
		"darwin/amd64", "darwin/arm64",
		"windows/amd64", "windows/arm64",
		"freebsd/amd64",
	} {
		goos, goarch, _ := strings.Cut(platform, "/")
		fmt.Println("  Building", platform+"...")
		env := map[string]string{"GOOS": goos, "GOARCH": goarch, "CGO_ENABLED": "0"}
		if err := sh.RunWith(env, "go", "build", "-o", os.DevNull, mainPkg); err != nil {
			return fmt.Errorf("build failed for %s: %w", platform, err)
		}
	}
	return nil
}

// Engine runs the engine and dialect detection benchmarks.
func (Bench) Engine() error {
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem",
		"./pkg/classname/...", "./pkg/dialect/...")
}

// Profile writes a CPU profile of the engine benchmarks to bench/cpu.out.
func (Bench) Profile() error {
	if err := os.MkdirAll("bench", 0o755); err != nil {
		return fmt.Errorf("create bench directory: %w", err)
	}
	return sh.RunV("go", "test", "-run=^$", "-bench=.", "-benchmem",
		"-cpuprofile=bench/cpu.out", "-o", "bench/classname.test", "./pkg/classname")
}

func gotestsum(format string, args ...string) error {
	n := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	cmdArgs := append([]string{"tool", "gotestsum", "-f", format, "--", "-p", n, "-parallel", n}, args...)
	return sh.RunV("go", cmdArgs...)
}

// writeSmokeFixture writes an HTML page whose class list is too long for a
// 40 column print width, with its annotation sidecar.
func writeSmokeFixture(dir string) error {
	classes := make([]string, 0, 16)
	for i := 1; i <= 16; i++ {
		classes = append(classes, fmt.Sprintf("px-%d", i))
	}
	page := `<div class="` + strings.Join(classes, " ") + `">hi</div>` + "\n"
	start := strings.IndexByte(page, '"')
	end := strings.IndexByte(page[start+1:], '"') + start + 2
	sidecar := fmt.Sprintf("nodes:\n  - kind: attribute\n    start: %d\n    end: %d\n    on_tag_line: true\n", start, end)

	files := map[string]string{
		"page.html":                 page,
		"page.html.classnames.yaml": sidecar,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		return exitErr.ExitCode()
	default:
		return -1
	}
}

func readModFiles() ([2][]byte, error) {
	var out [2][]byte
	for i, name := range []string{"go.mod", "go.sum"} {
		data, err := os.ReadFile(name)
		if err != nil {
			return out, fmt.Errorf("read %s: %w", name, err)
		}
		out[i] = data
	}
	return out, nil
}

// gitOutput runs a git command and returns trimmed stdout, or empty on error.
func gitOutput(args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// ldflags returns the linker flags for version injection.
func ldflags() string {
	version := cmp.Or(gitOutput("describe", "--tags", "--always", "--dirty"), "dev")
	commit := cmp.Or(gitOutput("rev-parse", "--short", "HEAD"), "none")
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s", version, commit, date)
}

// installPath returns where go install places a binary.
func installPath(name string) (string, error) {
	if gobin := os.Getenv("GOBIN"); gobin != "" {
		return filepath.Join(gobin, name), nil
	}
	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
		gopath = filepath.Join(home, "go")
	}
	return filepath.Join(gopath, "bin", name), nil
}
