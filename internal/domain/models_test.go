package domain

import (
	"encoding/json"
	"testing"
)

func TestHTTPStatus_JSONShape(t *testing.T) {
	b, err := json.Marshal(Code(404))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "404" {
		t.Fatalf("status code should marshal to a bare integer, got %s", b)
	}

	b, err = json.Marshal(DNSNotResolving())
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"DNS Not Resolving"` {
		t.Fatalf("sentinel should marshal to its text, got %s", b)
	}

	var s HTTPStatus
	if err := json.Unmarshal([]byte("503"), &s); err != nil {
		t.Fatal(err)
	}
	if !s.IsCode() || s.Code != 503 {
		t.Fatalf("round trip lost the code: %+v", s)
	}
	if err := json.Unmarshal([]byte(`"Invalid Domain"`), &s); err != nil {
		t.Fatal(err)
	}
	if s.Kind != StatusInvalidDomain {
		t.Fatalf("round trip lost the sentinel: %+v", s)
	}
}
