// Package input reads domain lists from the formats the audit accepts:
// Excel workbooks, CSV files with a named column, and plain text lists.
package input

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Options selects where the domains live inside a structured file.
type Options struct {
	Sheet  string // xlsx only; empty = first sheet
	Column string // header name, e.g. "Domain"
}

// ReadDomains loads the ordered domain list from path, dispatching on the
// file extension. Missing cells come back as empty strings so positions in
// the output line up with rows in the input.
func ReadDomains(path string, opts Options) ([]string, error) {
	if opts.Column == "" {
		opts.Column = "Domain"
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readExcel(path, opts)
	case ".csv":
		return readCSV(path, opts)
	default:
		return readText(path)
	}
}

func readExcel(path string, opts Options) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	col := headerIndex(rows[0], opts.Column)
	if col < 0 {
		return nil, fmt.Errorf("column %q not found in sheet %q", opts.Column, sheet)
	}

	out := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// short rows happen: excelize trims trailing empty cells
		if col < len(row) {
			out = append(out, row[col])
		} else {
			out = append(out, "")
		}
	}
	return out, nil
}

func readCSV(path string, opts Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	col := headerIndex(header, opts.Column)
	if col < 0 {
		return nil, fmt.Errorf("column %q not found in %s", opts.Column, path)
	}

	var out []string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if col < len(rec) {
			out = append(out, rec[col])
		} else {
			out = append(out, "")
		}
	}
	return out, nil
}

func readText(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var out []string
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, s.Err()
}

func headerIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}
