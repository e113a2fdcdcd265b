package rl

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// MonitorFile is the per-run episode log name inside each log directory.
const MonitorFile = "monitor.csv"

// Monitor appends one row per finished episode to a monitor.csv: a
// '#'-prefixed JSON comment line, then a header with columns r (return),
// l (length) and t (elapsed seconds). The plot and report drivers read the
// r column back later.
type Monitor struct {
	f     *os.File
	w     *csv.Writer
	start time.Time
}

func NewMonitor(dir, envID string) (*Monitor, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	f, err := os.Create(filepath.Join(dir, MonitorFile))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	comment, err := json.Marshal(map[string]interface{}{
		"t_start": float64(start.UnixNano()) / 1e9,
		"env_id":  envID,
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	if _, err := fmt.Fprintf(f, "#%s\n", comment); err != nil {
		f.Close()
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"r", "l", "t"}); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, err
	}
	return &Monitor{f: f, w: w, start: start}, nil
}

func (m *Monitor) RecordEpisode(ret float64, length int) error {
	row := []string{
		strconv.FormatFloat(ret, 'f', -1, 64),
		strconv.Itoa(length),
		strconv.FormatFloat(time.Since(m.start).Seconds(), 'f', 6, 64),
	}
	if err := m.w.Write(row); err != nil {
		return err
	}
	m.w.Flush()
	return m.w.Error()
}

func (m *Monitor) Close() error {
	m.w.Flush()
	if err := m.w.Error(); err != nil {
		m.f.Close()
		return err
	}
	return m.f.Close()
}

// LoadReturns reads the r column of a monitor.csv back. A missing file
// surfaces as an os.IsNotExist error so callers can warn and skip.
func LoadReturns(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	first, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}

	var r *csv.Reader
	if strings.HasPrefix(first, "#") {
		r = csv.NewReader(br)
	} else {
		// no comment line, keep the first line as part of the CSV
		r = csv.NewReader(io.MultiReader(strings.NewReader(first), br))
	}
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty monitor log", path)
	}

	col := -1
	for i, name := range records[0] {
		if name == "r" {
			col = i
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("%s: no column \"r\" in header %v", path, records[0])
	}

	returns := make([]float64, 0, len(records)-1)
	for _, rec := range records[1:] {
		v, err := strconv.ParseFloat(rec[col], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad return value %q: %w", path, rec[col], err)
		}
		returns = append(returns, v)
	}
	return returns, nil
}
