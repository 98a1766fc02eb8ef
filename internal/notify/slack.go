package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hamed0406/domaincheck/internal/domain"
)

var _ Notifier = (*Slack)(nil)

type Slack struct {
	Webhook string
	Client  *http.Client
}

func NewSlack(webhook string) *Slack {
	if webhook == "" {
		return nil
	}
	return &Slack{
		Webhook: webhook,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type slackPayload struct {
	Text string `json:"text"`
}

func (s *Slack) Send(ctx context.Context, title, text string) error {
	if s == nil || s.Webhook == "" {
		return errors.New("slack disabled")
	}
	body, _ := json.Marshal(slackPayload{Text: "*" + title + "*\n" + text})
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, s.Webhook, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return errors.New("slack non-2xx")
	}
	return nil
}

// SummaryText renders the per-category counts of a finished batch the way
// they show up in the run log.
func SummaryText(sum domain.Summary, elapsed time.Duration) string {
	return fmt.Sprintf(
		"Domains checked: %d in %s\nActive: %d\nClient errors (4xx): %d\nServer errors (5xx): %d\nInactive (DNS not resolving): %d\nInactive (Connection failed): %d",
		sum.Total, elapsed.Round(time.Second),
		sum.Active, sum.ClientError, sum.ServerError, sum.InactiveDNS, sum.InactiveConn,
	)
}
