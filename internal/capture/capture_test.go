package capture

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func requireCommand(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{name: "full", opts: Options{Last: "10m", Style: "json"}, want: []string{"show", "--last", "10m", "--style", "json"}},
		{name: "no style", opts: Options{Last: "1h"}, want: []string{"show", "--last", "1h"}},
		{name: "bare", opts: Options{}, want: []string{"show"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Args(tt.opts); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Args() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	if got := OutputPath(Options{Output: "logs/sys.log"}); got != "logs/sys.log" {
		t.Errorf("Expected path unchanged, got %q", got)
	}
	if got := OutputPath(Options{Output: "logs/sys.log", Gzip: true}); got != "logs/sys.log.gz" {
		t.Errorf("Expected .gz suffix, got %q", got)
	}
	if got := OutputPath(Options{Output: "logs/sys.log.gz", Gzip: true}); got != "logs/sys.log.gz" {
		t.Errorf("Expected suffix not doubled, got %q", got)
	}
}

func TestRun_WritesOutput(t *testing.T) {
	requireCommand(t, "echo")
	out := filepath.Join(t.TempDir(), "nested", "sys.log")

	path, err := Run(context.Background(), Options{Command: "echo", Last: "5m", Style: "syslog", Output: out})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if path != out {
		t.Errorf("Expected path %q, got %q", out, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if string(data) != "show --last 5m --style syslog\n" {
		t.Errorf("Unexpected output %q", data)
	}
}

func TestRun_Gzip(t *testing.T) {
	requireCommand(t, "echo")
	out := filepath.Join(t.TempDir(), "sys.log")

	path, err := Run(context.Background(), Options{Command: "echo", Last: "5m", Output: out, Gzip: true})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasSuffix(path, ".gz") {
		t.Fatalf("Expected gzip path, got %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer func() { _ = f.Close() }()

	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("Output is not gzip: %v", err)
	}
	data, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("Failed to decompress: %v", err)
	}
	if string(data) != "show --last 5m\n" {
		t.Errorf("Unexpected output %q", data)
	}
}

func TestRun_CommandFails(t *testing.T) {
	requireCommand(t, "sh")
	out := filepath.Join(t.TempDir(), "sys.log")

	// sh tries to open a script named "show" and fails.
	_, err := Run(context.Background(), Options{Command: "sh", Output: out})
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("Expected ErrCommandFailed, got: %v", err)
	}
	if !strings.Contains(err.Error(), "show") {
		t.Errorf("Expected stderr in error, got: %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("Expected partial output to be removed")
	}
}

func TestRun_CommandNotFound(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sys.log")

	_, err := Run(context.Background(), Options{Command: "deeplog-no-such-binary", Output: out})
	if err == nil || !strings.Contains(err.Error(), "failed to start") {
		t.Errorf("Expected start failure, got: %v", err)
	}
}

func TestRun_Validation(t *testing.T) {
	if _, err := Run(context.Background(), Options{Output: "x"}); err == nil {
		t.Error("Expected error for missing command")
	}
	if _, err := Run(context.Background(), Options{Command: "echo"}); err == nil {
		t.Error("Expected error for missing output")
	}
}
