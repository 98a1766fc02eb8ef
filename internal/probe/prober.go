package probe

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"go.uber.org/multierr"

	"github.com/hamed0406/domaincheck/internal/domain"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var errTooManyRedirects = errors.New("too many redirects")

// ProberOptions are the tunables of a single HTTP retrieval attempt.
type ProberOptions struct {
	Timeout      time.Duration
	MaxRedirects int
	UserAgent    string
	Protocols    []string // trial order, e.g. ["https", "http"]
	SkipVerify   bool     // accept invalid TLS certs (reachability, not trust)
}

func (o *ProberOptions) defaults() {
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	if o.MaxRedirects <= 0 {
		o.MaxRedirects = 5
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if len(o.Protocols) == 0 {
		o.Protocols = []string{"https", "http"}
	}
}

// Outcome is what a full protocol-fallback probe produced for one domain
// that was already confirmed to resolve.
type Outcome struct {
	Status   domain.HTTPStatus
	FinalURL string
	Protocol string
	Error    string
}

// Prober issues GET requests against a domain, trying protocols in order.
// The first received response wins regardless of status code; transport
// failures fall through to the next protocol.
type Prober struct {
	opts   ProberOptions
	client *http.Client
}

func NewProber(opts ProberOptions) *Prober {
	opts.defaults()
	max := opts.MaxRedirects
	return &Prober{
		opts: opts,
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				TLSClientConfig:     &tls.Config{InsecureSkipVerify: opts.SkipVerify},
				MaxIdleConnsPerHost: 4,
				ForceAttemptHTTP2:   true,
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// via holds the requests already made; the cap counts
				// followed hops, so hop number len(via) is still allowed.
				if len(via) > max {
					return errTooManyRedirects
				}
				return nil
			},
		},
	}
}

// Probe tries each configured protocol exactly once. No retries: every
// failure is terminal for that protocol within this run.
func (p *Prober) Probe(ctx context.Context, dom string) Outcome {
	var attemptErrs error
	for _, proto := range p.opts.Protocols {
		target := proto + "://" + dom

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			attemptErrs = multierr.Append(attemptErrs, fmt.Errorf("%s: %v", proto, err))
			continue
		}
		req.Header.Set("User-Agent", p.opts.UserAgent)

		resp, err := p.client.Do(req)
		if err != nil {
			attemptErrs = multierr.Append(attemptErrs, errors.New(p.describe(err, proto)))
			continue
		}
		resp.Body.Close()

		return Outcome{
			Status:   domain.Code(resp.StatusCode),
			FinalURL: resp.Request.URL.String(),
			Protocol: proto,
		}
	}

	out := Outcome{Status: domain.ConnectionFailed()}
	if attemptErrs != nil {
		out.Error = attemptErrs.Error()
	}
	return out
}

// describe turns a transport error into the short per-protocol message
// recorded on the result.
func (p *Prober) describe(err error, proto string) string {
	var ue *url.Error
	switch {
	case errors.Is(err, errTooManyRedirects):
		return fmt.Sprintf("%s: too many redirects (>=%d)", proto, p.opts.MaxRedirects)
	case errors.As(err, &ue) && ue.Timeout():
		return fmt.Sprintf("%s: timeout after %s", proto, p.opts.Timeout)
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Sprintf("connection refused on %s", proto)
	}
	return fmt.Sprintf("%s: error: %v", proto, err)
}
