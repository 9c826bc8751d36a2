// SPDX-License-Identifier: MIT

// Package dataset lists and loads 2D point sets.
//
// Two formats are read:
//
//   - .txt  - one point per line, whitespace separated; the first two fields
//     are x and y, further fields are ignored.
//   - .xlsx - the first sheet; columns A and B of each row are x and y.
//
// Blank text lines are ignored (logged at debug level). Any other record that
// does not yield two finite numbers is skipped with a warning;
// the load itself only fails on I/O or format errors. Loading an empty or
// fully malformed file returns an empty, non-nil point set.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/tourbench/logging"
	"github.com/katalvlaran/tourbench/tsp"
)

// ErrUnsupportedFormat is returned by Load for an unknown file extension.
var ErrUnsupportedFormat = errors.New("dataset: unsupported format")

const (
	extText  = ".txt"
	extExcel = ".xlsx"
)

// Supported reports whether Load can read the file at path.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extText, extExcel:
		return true
	default:
		return false
	}
}

// List returns the names of the loadable files directly under dir, sorted.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dataset: list %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !Supported(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Load reads the point set at path. logger receives one Warn record per
// skipped record and may be nil.
//
// Errors: ErrUnsupportedFormat; I/O and workbook errors.
func Load(path string, logger *slog.Logger) ([]tsp.Point, error) {
	logger = logging.OrDiscard(logger).With(slog.String("dataset", filepath.Base(path)))

	switch strings.ToLower(filepath.Ext(path)) {
	case extText:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("dataset: open %s: %w", path, err)
		}
		defer f.Close()

		return ReadText(f, logger)
	case extExcel:
		return loadExcel(path, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ReadText parses the text format from r.
func ReadText(r io.Reader, logger *slog.Logger) ([]tsp.Point, error) {
	logger = logging.OrDiscard(logger)
	points := make([]tsp.Point, 0, 64)
	sc := bufio.NewScanner(r)

	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			logger.Debug("skipping blank line", slog.Int("line", line))
			continue
		}
		p, ok := parsePoint(strings.Fields(raw))
		if !ok {
			logger.Warn("skipping invalid record", slog.Int("line", line), slog.String("record", raw))
			continue
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}

	return points, nil
}

// loadExcel reads columns A and B of the first sheet.
func loadExcel(path string, logger *slog.Logger) ([]tsp.Point, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	points := make([]tsp.Point, 0, 64)
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return points, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("dataset: read sheet %q: %w", sheets[0], err)
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		p, ok := parsePoint(row)
		if !ok {
			logger.Warn("skipping invalid record",
				slog.String("sheet", sheets[0]),
				slog.Int("row", i+1),
				slog.String("record", strings.Join(row, " ")),
			)
			continue
		}
		points = append(points, p)
	}

	return points, nil
}

// parsePoint reads x and y from the first two fields.
func parsePoint(fields []string) (tsp.Point, bool) {
	if len(fields) < 2 {
		return tsp.Point{}, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil || !finite(x) {
		return tsp.Point{}, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil || !finite(y) {
		return tsp.Point{}, false
	}

	return tsp.Point{X: x, Y: y}, true
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
