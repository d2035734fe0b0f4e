package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrNoSplits indicates that every requested split failed to process.
var ErrNoSplits = errors.New("no splits processed")

// Logger is an optional interface for observability during split
// processing.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging must be best-effort; Logf should not panic.
type Logger interface {
	Logf(format string, args ...any)
}

// ProcessSplits converts <inputDir>/<split>.jsonl into
// <outputDir>/<split>.parquet for each requested split. A failing split is
// logged and skipped so one bad dump cannot take down the whole job; the
// error return is non-nil only when every split failed. The returned paths
// are the Parquet files actually written.
func ProcessSplits(inputDir, outputDir string, splits []string, logger Logger) ([]string, error) {
	var written []string
	var lastErr error

	for _, split := range splits {
		path, err := processSplit(inputDir, outputDir, split)
		if err != nil {
			lastErr = err
			if logger != nil {
				logger.Logf("skipping split %s: %v", split, err)
			}
			continue
		}
		if logger != nil {
			logger.Logf("wrote split %s to %s", split, path)
		}
		written = append(written, path)
	}

	if len(written) == 0 {
		if lastErr != nil {
			return nil, fmt.Errorf("%w: last error: %v", ErrNoSplits, lastErr)
		}
		return nil, ErrNoSplits
	}
	return written, nil
}

func processSplit(inputDir, outputDir, split string) (string, error) {
	records, err := ReadRecordsFile(filepath.Join(inputDir, split+".jsonl"))
	if err != nil {
		return "", err
	}

	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		row, err := BuildRow(rec, split, i)
		if err != nil {
			return "", err
		}
		rows = append(rows, row)
	}

	out := filepath.Join(outputDir, split+".parquet")
	if err := WriteParquet(out, rows); err != nil {
		return "", err
	}
	return out, nil
}
