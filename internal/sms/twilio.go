package sms

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotConfigured indicates missing Twilio credentials.
var ErrNotConfigured = errors.New("twilio credentials are not configured")

// Sender delivers outbound SMS messages.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// TwilioConfig holds Twilio REST API credentials.
type TwilioConfig struct {
	Endpoint   string
	AccountSID string
	AuthToken  string
	FromNumber string
	TimeoutMs  int
}

// DefaultTwilioConfig returns config pointing at the public Twilio API.
func DefaultTwilioConfig() TwilioConfig {
	return TwilioConfig{
		Endpoint:  "https://api.twilio.com",
		TimeoutMs: 10000,
	}
}

// TwilioSender sends SMS through the Twilio Messages API.
type TwilioSender struct {
	cfg  TwilioConfig
	http *http.Client
}

// NewTwilioSender creates a Sender. Returns ErrNotConfigured when the
// account SID, auth token or from number is missing.
func NewTwilioSender(cfg TwilioConfig) (*TwilioSender, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return nil, ErrNotConfigured
	}
	return &TwilioSender{cfg: cfg, http: &http.Client{}}, nil
}

func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.cfg.FromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.cfg.Endpoint, s.cfg.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken)

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("twilio returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
