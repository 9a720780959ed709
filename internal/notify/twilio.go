package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTwilioBase = "https://api.twilio.com"

// TwilioClient sends messages through Twilio's REST Messages endpoint.
type TwilioClient struct {
	AccountSID string
	AuthToken  string
	From       string

	// BaseURL overrides the Twilio API host; empty means the public API.
	// Tests point it at a local server.
	BaseURL string

	HTTPClient *http.Client
}

func (c *TwilioClient) Send(ctx context.Context, to, body string) error {
	base := c.BaseURL
	if base == "" {
		base = defaultTwilioBase
	}
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", base, c.AccountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.From)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.AccountSID, c.AuthToken)

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("twilio returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
