package protolint

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
)

// Linter shells out to buf and protolint for .proto style checks.
// Both executables are looked up on PATH; a missing tool surfaces as
// an error naming its install source.
type Linter struct {
	logger slog.Logger
}

// NewLinter creates a Linter.
func NewLinter(logger slog.Logger) *Linter {
	return &Linter{logger: logger}
}

// Result is the outcome of one lint run. Findings are reported here,
// not as errors: only a missing or misbehaving executable errors.
type Result struct {
	Clean    bool
	Findings []string
}

// Report renders the result for terminal display.
func (r *Result) Report() string {
	if r.Clean {
		return "lint passed\n"
	}
	var b strings.Builder
	b.WriteString("lint found issues:\n")
	for _, f := range r.Findings {
		b.WriteString("  " + f + "\n")
	}
	return b.String()
}

// LintWithBuf runs buf lint on a proto file or directory.
func (l *Linter) LintWithBuf(ctx context.Context, path string) (*Result, error) {
	if err := checkInstalled(ctx, "buf", "https://docs.buf.build/installation"); err != nil {
		return nil, err
	}
	l.logger.Info("Running buf lint", "path", path)

	out, err := exec.CommandContext(ctx, "buf", "lint", path).CombinedOutput()
	res := &Result{Clean: err == nil, Findings: splitLines(string(out))}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, errors.Wrap(err, "run buf lint")
		}
		// buf exits 100 when it finds lint issues
		if code := exitErr.ExitCode(); code != 100 && code != 1 {
			return nil, errors.Wrapf(err, "buf lint exit code %d", code)
		}
		l.logger.Warn("Proto file has lint issues", "issues", len(res.Findings))
	}
	return res, nil
}

// LintWithProtolint runs protolint on a proto file.
func (l *Linter) LintWithProtolint(ctx context.Context, path string) (*Result, error) {
	if err := checkInstalled(ctx, "protolint", "https://github.com/yoheimuta/protolint"); err != nil {
		return nil, err
	}
	l.logger.Info("Running protolint", "path", path)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "protolint", "lint", path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	res := &Result{Clean: err == nil}
	res.Findings = append(splitLines(stdout.String()), splitLines(stderr.String())...)
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
			return res, errors.Wrap(err, "run protolint")
		}
		l.logger.Warn("Proto file has lint warnings", "warnings", len(res.Findings))
	}
	return res, nil
}

// Format rewrites a proto file in place with buf format.
func (l *Linter) Format(ctx context.Context, path string) error {
	if err := checkInstalled(ctx, "buf", "https://docs.buf.build/installation"); err != nil {
		return err
	}
	l.logger.Info("Formatting proto file", "path", path)

	out, err := exec.CommandContext(ctx, "buf", "format", "-w", path).CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "buf format: %s", strings.TrimSpace(string(out)))
	}
	return nil
}

func checkInstalled(ctx context.Context, tool, source string) error {
	if err := exec.CommandContext(ctx, tool, "--version").Run(); err != nil {
		return errors.Newf("%s is not installed, install it from %s", tool, source)
	}
	return nil
}

func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
