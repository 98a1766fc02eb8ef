package probe

import (
	"context"
	"net"
	"time"
)

// Resolver answers whether a domain has an A/AAAA record, using the OS
// resolver. Failure to resolve is a normal outcome, not an error.
type Resolver struct {
	Timeout time.Duration

	lookup func(ctx context.Context, network, host string) ([]net.IP, error)
}

func NewResolver(timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	r := &net.Resolver{} // OS resolver
	return &Resolver{Timeout: timeout, lookup: r.LookupIP}
}

// Resolve returns (true, first address) when the domain resolves, otherwise
// (false, ""). The lookup is bounded by the resolver timeout so a dead
// resolver cannot block a worker indefinitely.
func (r *Resolver) Resolve(ctx context.Context, domain string) (bool, string) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	ips, err := r.lookup(ctx, "ip", domain)
	if err != nil || len(ips) == 0 {
		return false, ""
	}
	return true, ips[0].String()
}
