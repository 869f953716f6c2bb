package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cbishop/aircraft-sizing/internal/sizing"
)

// WriteConvergence writes the iteration-index versus gross-weight-guess
// history of one result as CSV, for plotting by external tooling.
func WriteConvergence(w io.Writer, result sizing.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"iteration", "w0_lb"}); err != nil {
		return err
	}
	for i, guess := range result.Weights.History {
		record := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(guess, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportConvergence writes one convergence CSV per scenario into the given
// directory, creating it if needed.
func ExportConvergence(dir string, results []sizing.Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create convergence directory %s: %v", dir, err)
	}
	for _, result := range results {
		path := filepath.Join(dir, convergenceFileName(result.Scenario))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %v", path, err)
		}
		if err := WriteConvergence(f, result); err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to write %s: %v", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func convergenceFileName(scenario string) string {
	name := strings.ToLower(scenario)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, name)
	return name + "-convergence.csv"
}
