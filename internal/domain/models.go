package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// StatusKind tags the HTTPStatus value: either a real status code or one of
// the sentinel states a domain can end up in without ever producing a
// response.
type StatusKind int

const (
	StatusCode StatusKind = iota
	StatusInvalidDomain
	StatusDNSNotResolving
	StatusConnectionFailed
)

// HTTPStatus is either an integer status code (Kind == StatusCode) or a
// sentinel. The zero value is "status code 0", which never appears in a
// finished result.
type HTTPStatus struct {
	Kind StatusKind
	Code int
}

func Code(c int) HTTPStatus        { return HTTPStatus{Kind: StatusCode, Code: c} }
func InvalidDomain() HTTPStatus    { return HTTPStatus{Kind: StatusInvalidDomain} }
func DNSNotResolving() HTTPStatus  { return HTTPStatus{Kind: StatusDNSNotResolving} }
func ConnectionFailed() HTTPStatus { return HTTPStatus{Kind: StatusConnectionFailed} }

func (s HTTPStatus) IsCode() bool { return s.Kind == StatusCode }

func (s HTTPStatus) String() string {
	switch s.Kind {
	case StatusCode:
		return strconv.Itoa(s.Code)
	case StatusInvalidDomain:
		return "Invalid Domain"
	case StatusDNSNotResolving:
		return "DNS Not Resolving"
	case StatusConnectionFailed:
		return "Connection Failed"
	}
	return "Unknown"
}

// MarshalJSON keeps the spreadsheet-friendly shape: a bare integer for real
// codes, a string for sentinels.
func (s HTTPStatus) MarshalJSON() ([]byte, error) {
	if s.Kind == StatusCode {
		return json.Marshal(s.Code)
	}
	return json.Marshal(s.String())
}

func (s *HTTPStatus) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*s = Code(n)
		return nil
	}
	var txt string
	if err := json.Unmarshal(b, &txt); err != nil {
		return err
	}
	switch txt {
	case "Invalid Domain":
		*s = InvalidDomain()
	case "DNS Not Resolving":
		*s = DNSNotResolving()
	default:
		*s = ConnectionFailed()
	}
	return nil
}

// ProbeResult is the single record produced for every input domain. It is
// built once by the checker and never mutated afterwards.
type ProbeResult struct {
	Domain      string     `json:"domain"`
	Position    int        `json:"position"`
	DNSResolves bool       `json:"dns_resolves"`
	IPAddress   string     `json:"ip_address,omitempty"`
	HTTPStatus  HTTPStatus `json:"http_status"`
	FinalURL    string     `json:"final_url,omitempty"`
	Protocol    string     `json:"protocol,omitempty"`
	Error       string     `json:"error,omitempty"`
	Category    Category   `json:"category"`
}

type BatchID string

// Batch is one completed audit run, as archived by the repo layer for the
// API mode.
type Batch struct {
	ID         BatchID       `json:"id"`
	Results    []ProbeResult `json:"results"`
	Summary    Summary       `json:"summary"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
}
