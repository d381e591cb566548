package wsp

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteCSV writes points to w as comma-separated values without a header:
// one row per point and one column per coordinate. With transpose set, rows
// are dimensions and columns are points instead.
func WriteCSV(w io.Writer, points [][]float64, transpose bool) error {
	cw := csv.NewWriter(w)

	var rows int
	if transpose && len(points) > 0 {
		rows = len(points[0])
	} else {
		rows = len(points)
	}

	for r := 0; r < rows; r++ {
		var record []string
		if transpose {
			record = make([]string, len(points))
			for c, p := range points {
				record[c] = formatCoord(p[r])
			}
		} else {
			record = make([]string, len(points[r]))
			for c, v := range points[r] {
				record[c] = formatCoord(v)
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("wsp: write csv row %d: %w", r, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("wsp: write csv: %w", err)
	}
	return nil
}

// SaveCSV writes points to the file at path, replacing it if it exists.
func SaveCSV(path string, points [][]float64, transpose bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wsp: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("wsp: close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := WriteCSV(bw, points, transpose); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("wsp: write %s: %w", path, err)
	}
	return nil
}

// SaveRemainingCSV writes the active points of ps to path. A write failure
// leaves ps unchanged.
func (ps *PointSet) SaveRemainingCSV(path string, transpose bool) error {
	return SaveCSV(path, ps.Remaining(), transpose)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
