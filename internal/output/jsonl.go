package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/hamed0406/domaincheck/internal/domain"
)

// JSONLWriter emits one JSON object per line.
type JSONLWriter struct {
	enc    *json.Encoder
	closer io.Closer
}

func NewJSONLWriter(outputFile string) (*JSONLWriter, error) {
	var w io.Writer = os.Stdout
	var closer io.Closer
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return nil, err
		}
		w = f
		closer = f
	}
	return &JSONLWriter{enc: json.NewEncoder(w), closer: closer}, nil
}

func (j *JSONLWriter) WriteHeader() error { return nil }

func (j *JSONLWriter) WriteResult(r *domain.ProbeResult) error {
	return j.enc.Encode(r)
}

func (j *JSONLWriter) WriteFooter(_ domain.Summary) error { return nil }

func (j *JSONLWriter) Close() error {
	if j.closer != nil {
		return j.closer.Close()
	}
	return nil
}
