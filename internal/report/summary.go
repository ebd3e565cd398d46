// Package report records per-run outcomes of a sweep as CSV rows, one row
// per (map file, run index) pair.
package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// Row is one simulator run's outcome.
type Row struct {
	Variant    string
	MapFile    string
	RunIndex   int
	LogPath    string
	Status     string
	ExitCode   int
	DurationMs int64
}

// SummaryCSVWriter appends run rows to a CSV file. It is safe for use from
// concurrent workers.
type SummaryCSVWriter struct {
	mu sync.Mutex
	f  *os.File
	w  *csv.Writer
}

// NewSummaryCSVWriter creates (or truncates) the summary file and writes the
// header row. Parent directories are created as needed.
func NewSummaryCSVWriter(path string) (*SummaryCSVWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)

	hdr := []string{
		"variant",
		"map_file",
		"run_index",
		"log_path",
		"status",
		"exit_code",
		"duration_ms",
	}
	if err := w.Write(hdr); err != nil {
		f.Close()
		return nil, err
	}
	return &SummaryCSVWriter{f: f, w: w}, nil
}

// Write appends one row.
func (s *SummaryCSVWriter) Write(r Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := []string{
		r.Variant,
		r.MapFile,
		strconv.Itoa(r.RunIndex),
		r.LogPath,
		r.Status,
		strconv.Itoa(r.ExitCode),
		strconv.FormatInt(r.DurationMs, 10),
	}
	if err := s.w.Write(rec); err != nil {
		return err
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (s *SummaryCSVWriter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}
