package output

import (
	"fmt"

	"github.com/hamed0406/domaincheck/internal/domain"
)

// header matches the columns the audit spreadsheet carries.
var header = []string{
	"Domain", "DNS_Resolves", "IP_Address", "HTTP_Status",
	"Final_URL", "Protocol", "Error", "Status_Category",
}

func row(r *domain.ProbeResult) []string {
	return []string{
		r.Domain,
		fmt.Sprintf("%t", r.DNSResolves),
		r.IPAddress,
		r.HTTPStatus.String(),
		r.FinalURL,
		r.Protocol,
		r.Error,
		string(r.Category),
	}
}

// Writer is implemented by each output format.
type Writer interface {
	WriteHeader() error
	WriteResult(r *domain.ProbeResult) error
	WriteFooter(sum domain.Summary) error
	Close() error
}

// New picks a writer by format name: "csv", "jsonl", or "xlsx".
func New(format, outputFile string) (Writer, error) {
	switch format {
	case "csv", "":
		return NewCSVWriter(outputFile)
	case "jsonl":
		return NewJSONLWriter(outputFile)
	case "xlsx":
		return NewExcelWriter(outputFile)
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// WriteAll drives a writer over a finished batch.
func WriteAll(w Writer, results []domain.ProbeResult) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for i := range results {
		if err := w.WriteResult(&results[i]); err != nil {
			return err
		}
	}
	return w.WriteFooter(domain.Summarize(results))
}
