package ocr

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Runner abstracts command execution so tests can stub pdftotext,
// pdftoppm and tesseract without the binaries installed.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

const stderrLogCap = 8 << 10

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	attrs := []any{
		"cmd", name,
		"args", strings.Join(args, " "),
		"duration_ms", elapsed.Milliseconds(),
	}
	if err != nil {
		slog.Error("ocr.exec.fail", append(attrs,
			"error", err,
			"stderr", truncate(errb.String(), stderrLogCap),
		)...)
	} else {
		slog.Debug("ocr.exec.ok", append(attrs,
			"stdout_bytes", out.Len(),
			"stderr_bytes", errb.Len(),
		)...)
	}

	return out.Bytes(), errb.Bytes(), err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
