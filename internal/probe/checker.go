package probe

import (
	"context"

	"github.com/hamed0406/domaincheck/internal/domain"
)

// Checker runs the full per-domain pipeline for one raw input string:
// validate, resolve, probe, classify. Implementations must always return a
// result, never panic or abort the batch.
type Checker interface {
	Check(ctx context.Context, raw string) domain.ProbeResult
}

// DomainChecker is the production Checker.
type DomainChecker struct {
	Resolver *Resolver
	Prober   *Prober
}

func NewDomainChecker(opts ProberOptions) *DomainChecker {
	opts.defaults()
	return &DomainChecker{
		// DNS lookups share the HTTP timeout so a stuck resolver cannot
		// outlive the probe budget.
		Resolver: NewResolver(opts.Timeout),
		Prober:   NewProber(opts),
	}
}

func (c *DomainChecker) Check(ctx context.Context, raw string) domain.ProbeResult {
	res := domain.ProbeResult{Domain: raw}

	dom, ok := Normalize(raw)
	if !ok {
		res.HTTPStatus = domain.InvalidDomain()
		res.Error = "invalid domain format"
		res.Category = domain.Classify(res)
		return res
	}
	res.Domain = dom

	resolved, ip := c.Resolver.Resolve(ctx, dom)
	if !resolved {
		res.HTTPStatus = domain.DNSNotResolving()
		res.Error = "DNS resolution failed"
		res.Category = domain.Classify(res)
		return res
	}
	res.DNSResolves = true
	res.IPAddress = ip

	out := c.Prober.Probe(ctx, dom)
	res.HTTPStatus = out.Status
	res.FinalURL = out.FinalURL
	res.Protocol = out.Protocol
	res.Error = out.Error
	res.Category = domain.Classify(res)
	return res
}
