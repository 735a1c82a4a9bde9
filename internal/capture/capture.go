// Package capture spawns the OS log tool and writes its output to a file.
package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"
)

// ErrCommandFailed is returned when the log tool exits with an error.
var ErrCommandFailed = errors.New("log command failed")

// Options configures a capture run.
type Options struct {
	Command string // log tool binary, "log" on macOS
	Last    string // time window passed as --last, e.g. "10m"
	Style   string // output style passed as --style, e.g. "syslog" or "json"
	Output  string // destination file
	Gzip    bool   // compress output; ".gz" is appended to Output if missing
}

// Args returns the log tool arguments for opts.
func Args(opts Options) []string {
	args := []string{"show"}
	if opts.Last != "" {
		args = append(args, "--last", opts.Last)
	}
	if opts.Style != "" {
		args = append(args, "--style", opts.Style)
	}
	return args
}

// OutputPath returns the file Run writes to.
func OutputPath(opts Options) string {
	if opts.Gzip && !strings.HasSuffix(opts.Output, ".gz") {
		return opts.Output + ".gz"
	}
	return opts.Output
}

// Run executes the log tool and streams its stdout into the output file.
// The file is fully written and closed when Run returns, and a failed run
// leaves no file behind. It returns the path written.
func Run(ctx context.Context, opts Options) (string, error) {
	if opts.Command == "" {
		return "", fmt.Errorf("log command is required")
	}
	if opts.Output == "" {
		return "", fmt.Errorf("output path is required")
	}

	path := OutputPath(opts)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}

	if err := stream(ctx, opts, f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close output file: %w", err)
	}
	return path, nil
}

func stream(ctx context.Context, opts Options, f *os.File) error {
	cmd := exec.CommandContext(ctx, opts.Command, Args(opts)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to open stderr: %w", err)
	}

	var out io.Writer = f
	var zw *gzip.Writer
	if opts.Gzip {
		zw = gzip.NewWriter(f)
		out = zw
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", opts.Command, err)
	}

	var errBuf bytes.Buffer
	var g errgroup.Group
	g.Go(func() error {
		if _, err := io.Copy(out, stdout); err != nil {
			// Keep draining so the child never blocks on a full pipe.
			_, _ = io.Copy(io.Discard, stdout)
			return fmt.Errorf("failed to write log output: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		_, err := io.Copy(&errBuf, stderr)
		return err
	})

	copyErr := g.Wait()
	waitErr := cmd.Wait()

	if waitErr != nil {
		msg := strings.TrimSpace(errBuf.String())
		if msg == "" {
			return fmt.Errorf("%w: %v", ErrCommandFailed, waitErr)
		}
		return fmt.Errorf("%w: %v: %s", ErrCommandFailed, waitErr, msg)
	}
	if copyErr != nil {
		return copyErr
	}

	if zw != nil {
		if err := zw.Close(); err != nil {
			return fmt.Errorf("failed to flush gzip stream: %w", err)
		}
	}
	return nil
}
