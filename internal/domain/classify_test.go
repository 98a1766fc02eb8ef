package domain

import "testing"

func result(dns bool, status HTTPStatus) ProbeResult {
	return ProbeResult{DNSResolves: dns, HTTPStatus: status}
}

func TestClassify_DNSFailureWinsOverEverything(t *testing.T) {
	// DNS failure is checked first, even with a status code present
	r := result(false, Code(200))
	if got := Classify(r); got != CategoryInactiveDNS {
		t.Fatalf("want %q, got %q", CategoryInactiveDNS, got)
	}
	if got := Classify(result(false, InvalidDomain())); got != CategoryInactiveDNS {
		t.Fatalf("invalid domain should classify as DNS-inactive, got %q", got)
	}
}

func TestClassify_StatusBuckets(t *testing.T) {
	cases := []struct {
		code int
		want Category
	}{
		{200, CategoryActive},
		{301, CategoryActive},
		{399, CategoryActive},
		{400, CategoryClientError},
		{404, CategoryClientError},
		{499, CategoryClientError},
		{500, CategoryServerError},
		{503, CategoryServerError},
		{599, CategoryServerError},
		{199, CategoryInactiveConn},
		{600, CategoryInactiveConn},
	}
	for _, c := range cases {
		if got := Classify(result(true, Code(c.code))); got != c.want {
			t.Errorf("code %d: want %q, got %q", c.code, c.want, got)
		}
	}
}

func TestClassify_ConnectionFailed(t *testing.T) {
	if got := Classify(result(true, ConnectionFailed())); got != CategoryInactiveConn {
		t.Fatalf("want %q, got %q", CategoryInactiveConn, got)
	}
}

func TestSummarize_CountsEveryCategory(t *testing.T) {
	results := []ProbeResult{
		{Category: CategoryActive},
		{Category: CategoryActive},
		{Category: CategoryClientError},
		{Category: CategoryServerError},
		{Category: CategoryInactiveDNS},
		{Category: CategoryInactiveConn},
	}
	s := Summarize(results)
	if s.Total != 6 || s.Active != 2 || s.ClientError != 1 || s.ServerError != 1 || s.InactiveDNS != 1 || s.InactiveConn != 1 {
		t.Fatalf("bad summary: %+v", s)
	}
}
