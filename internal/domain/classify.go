package domain

// Category is the final liveness classification of a domain.
type Category string

const (
	CategoryActive       Category = "Active"
	CategoryClientError  Category = "Client Error"
	CategoryServerError  Category = "Server Error"
	CategoryInactiveDNS  Category = "Inactive (DNS not resolving)"
	CategoryInactiveConn Category = "Inactive (Connection Failed)"
)

// Classify maps a probe result to exactly one category. DNS failure is
// checked first and subsumes invalid-domain rejections; anything without an
// in-range status code falls through to connection-failed.
func Classify(r ProbeResult) Category {
	if !r.DNSResolves {
		return CategoryInactiveDNS
	}
	if r.HTTPStatus.IsCode() {
		switch c := r.HTTPStatus.Code; {
		case c >= 200 && c < 400:
			return CategoryActive
		case c >= 400 && c < 500:
			return CategoryClientError
		case c >= 500 && c < 600:
			return CategoryServerError
		}
	}
	return CategoryInactiveConn
}

// Summary counts results per category.
type Summary struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	ClientError  int `json:"client_error"`
	ServerError  int `json:"server_error"`
	InactiveDNS  int `json:"inactive_dns"`
	InactiveConn int `json:"inactive_conn"`
}

func Summarize(results []ProbeResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Category {
		case CategoryActive:
			s.Active++
		case CategoryClientError:
			s.ClientError++
		case CategoryServerError:
			s.ServerError++
		case CategoryInactiveDNS:
			s.InactiveDNS++
		case CategoryInactiveConn:
			s.InactiveConn++
		}
	}
	return s
}
