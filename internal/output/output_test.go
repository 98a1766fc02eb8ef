package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/hamed0406/domaincheck/internal/domain"
)

func sampleResults() []domain.ProbeResult {
	return []domain.ProbeResult{
		{
			Domain:      "example.com",
			Position:    0,
			DNSResolves: true,
			IPAddress:   "93.184.216.34",
			HTTPStatus:  domain.Code(200),
			FinalURL:    "https://example.com/",
			Protocol:    "https",
			Category:    domain.CategoryActive,
		},
		{
			Domain:     "bad input",
			Position:   1,
			HTTPStatus: domain.InvalidDomain(),
			Error:      "invalid domain format",
			Category:   domain.CategoryInactiveDNS,
		},
	}
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteAll(w, sampleResults()); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("want header + 2 rows, got %d", len(recs))
	}
	if recs[0][0] != "Domain" || recs[0][7] != "Status_Category" {
		t.Fatalf("bad header: %v", recs[0])
	}
	if recs[1][3] != "200" {
		t.Fatalf("want numeric status text, got %q", recs[1][3])
	}
	if recs[2][3] != "Invalid Domain" {
		t.Fatalf("want sentinel text, got %q", recs[2][3])
	}
	if recs[2][7] != string(domain.CategoryInactiveDNS) {
		t.Fatalf("want category column, got %q", recs[2][7])
	}
}

func TestJSONLWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	w, err := NewJSONLWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteAll(w, sampleResults()); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(lines))
	}
	var first domain.ProbeResult
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if first.Domain != "example.com" || !first.HTTPStatus.IsCode() {
		t.Fatalf("bad first line: %+v", first)
	}
}

func TestExcelWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	w, err := NewExcelWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteAll(w, sampleResults()); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("want header + 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "example.com" || rows[1][3] != "200" {
		t.Fatalf("bad data row: %v", rows[1])
	}
	if rows[2][3] != "Invalid Domain" {
		t.Fatalf("want sentinel cell, got %q", rows[2][3])
	}
}

func TestExcelWriter_RequiresPath(t *testing.T) {
	if _, err := NewExcelWriter(""); err == nil {
		t.Fatal("want error for missing output path")
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, err := New("xml", ""); err == nil {
		t.Fatal("want error for unknown format")
	}
}
