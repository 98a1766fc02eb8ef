package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hamed0406/domaincheck/internal/domain"
)

// ExcelWriter builds the result workbook in memory and saves it on footer.
// Status codes stay numeric cells; sentinel states become text, the same
// mixed column the audit sheets have always had.
type ExcelWriter struct {
	f     *excelize.File
	sheet string
	path  string
	next  int // next row to write, 1-based
}

func NewExcelWriter(outputFile string) (*ExcelWriter, error) {
	if outputFile == "" {
		return nil, fmt.Errorf("xlsx output requires an output file")
	}
	f := excelize.NewFile()
	return &ExcelWriter{f: f, sheet: f.GetSheetName(0), path: outputFile, next: 1}, nil
}

func (e *ExcelWriter) writeRow(cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, e.next)
	if err != nil {
		return err
	}
	e.next++
	return e.f.SetSheetRow(e.sheet, cell, &cells)
}

func (e *ExcelWriter) WriteHeader() error {
	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	return e.writeRow(cells)
}

func (e *ExcelWriter) WriteResult(r *domain.ProbeResult) error {
	var status interface{} = r.HTTPStatus.String()
	if r.HTTPStatus.IsCode() {
		status = r.HTTPStatus.Code
	}
	return e.writeRow([]interface{}{
		r.Domain, r.DNSResolves, r.IPAddress, status,
		r.FinalURL, r.Protocol, r.Error, string(r.Category),
	})
}

func (e *ExcelWriter) WriteFooter(_ domain.Summary) error {
	return e.f.SaveAs(e.path)
}

func (e *ExcelWriter) Close() error {
	return e.f.Close()
}
