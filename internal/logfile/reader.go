// Package logfile reads log files from disk for analysis.
package logfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/olegiv/deeplog/internal/analyzer"
)

// Compile-time interface check
var _ analyzer.LogReader = (*Reader)(nil)

var (
	// ErrFileNotFound is returned when the log path does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrTooLarge is returned when a log exceeds the configured size limit.
	ErrTooLarge = errors.New("file exceeds maximum size")
)

// gzipSuffix marks files written by "fetch --gzip".
const gzipSuffix = ".gz"

// Reader reads whole log files into memory.
// Implements analyzer.LogReader interface.
type Reader struct {
	maxSizeMB int
}

// NewReader creates a reader that rejects files larger than maxSizeMB.
func NewReader(maxSizeMB int) *Reader {
	return &Reader{maxSizeMB: maxSizeMB}
}

// Read implements analyzer.LogReader.Read.
// It checks the file before reading any of it, so a missing path fails fast.
func (r *Reader) Read(sourcePath string) (string, error) {
	fileInfo, err := os.Stat(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, sourcePath)
		}
		return "", fmt.Errorf("failed to stat log file: %w", err)
	}

	if fileInfo.IsDir() {
		return "", fmt.Errorf("log path is a directory: %s", sourcePath)
	}

	// Check file permissions
	if fileInfo.Mode().Perm()&0400 == 0 {
		return "", fmt.Errorf("log file is not readable: %s", sourcePath)
	}

	maxBytes := r.maxBytes()
	if fileInfo.Size() > maxBytes {
		return "", fmt.Errorf("%w of %dMB (size: %.2fMB)",
			ErrTooLarge, r.maxSizeMB, float64(fileInfo.Size())/1024/1024)
	}

	f, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var src io.Reader = f
	if IsCompressed(sourcePath) {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer func() { _ = zr.Close() }()
		src = zr
	}

	// Read one byte past the limit so decompressed content is bounded too.
	content, err := io.ReadAll(io.LimitReader(src, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read log file: %w", err)
	}
	if int64(len(content)) > maxBytes {
		return "", fmt.Errorf("%w of %dMB after decompression", ErrTooLarge, r.maxSizeMB)
	}

	return string(content), nil
}

// GetSourceInfo implements analyzer.LogReader.GetSourceInfo.
func (r *Reader) GetSourceInfo(sourcePath string) (map[string]interface{}, error) {
	fileInfo, err := os.Stat(sourcePath)
	if err != nil {
		return nil, err
	}

	info := map[string]interface{}{
		"size_bytes": fileInfo.Size(),
		"size_mb":    float64(fileInfo.Size()) / 1024 / 1024,
		"modified":   fileInfo.ModTime(),
		"compressed": IsCompressed(sourcePath),
	}

	return info, nil
}

// IsCompressed reports whether path names a gzip file.
func IsCompressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), gzipSuffix)
}

func (r *Reader) maxBytes() int64 {
	return int64(r.maxSizeMB) * 1024 * 1024
}
