// Package msgraph talks to the Microsoft Graph API on behalf of linked
// calendar owners.
package msgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"resource-booking-api/internal/pkg/config"
	"resource-booking-api/internal/pkg/errs"
	"resource-booking-api/internal/usecase/commands"

	"golang.org/x/oauth2"
)

const graphTimeFormat = "2006-01-02T15:04:05.9999999"

type Client struct {
	oauth   *oauth2.Config
	baseURL string
	timeout time.Duration
	http    *http.Client
}

func NewClient(cfg config.O365Config) *Client {
	return &Client{
		oauth:   OAuthConfig(cfg),
		baseURL: cfg.APIBaseURL,
		timeout: cfg.RequestTimeout,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

func (c *Client) ExchangeCode(ctx context.Context, code string) ([]byte, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, classify(errs.Wrap(err, "token exchange failed"), 0)
	}
	return MarshalToken(token)
}

func (c *Client) Me(ctx context.Context, token []byte) (*commands.CalendarAccount, error) {
	var resp struct {
		ID                string `json:"id"`
		UserPrincipalName string `json:"userPrincipalName"`
		Mail              string `json:"mail"`
	}
	if _, err := c.call(ctx, token, http.MethodGet, "/me", nil, &resp); err != nil {
		return nil, err
	}

	email := resp.Mail
	if email == "" {
		email = resp.UserPrincipalName
	}
	return &commands.CalendarAccount{ID: resp.ID, Email: email}, nil
}

type graphEvent struct {
	ID      string        `json:"id,omitempty"`
	Subject string        `json:"subject"`
	Start   graphDateTime `json:"start"`
	End     graphDateTime `json:"end"`
}

type graphDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

func toGraphEvent(ev commands.CalendarEvent) graphEvent {
	return graphEvent{
		ID:      ev.ID,
		Subject: ev.Subject,
		Start:   graphDateTime{DateTime: ev.Begin.UTC().Format(graphTimeFormat), TimeZone: "UTC"},
		End:     graphDateTime{DateTime: ev.End.UTC().Format(graphTimeFormat), TimeZone: "UTC"},
	}
}

func fromGraphEvent(ev graphEvent) commands.CalendarEvent {
	begin, _ := time.ParseInLocation(graphTimeFormat, ev.Start.DateTime, time.UTC)
	end, _ := time.ParseInLocation(graphTimeFormat, ev.End.DateTime, time.UTC)
	return commands.CalendarEvent{
		ID:      ev.ID,
		Subject: ev.Subject,
		Begin:   begin,
		End:     end,
	}
}

func (c *Client) ListEvents(ctx context.Context, token []byte) ([]commands.CalendarEvent, []byte, error) {
	var resp struct {
		Value []graphEvent `json:"value"`
	}
	newToken, err := c.call(ctx, token, http.MethodGet, "/me/calendar/events?$top=100", nil, &resp)
	if err != nil {
		return nil, nil, err
	}

	events := make([]commands.CalendarEvent, 0, len(resp.Value))
	for _, ev := range resp.Value {
		events = append(events, fromGraphEvent(ev))
	}
	return events, newToken, nil
}

func (c *Client) CreateEvent(ctx context.Context, token []byte, ev commands.CalendarEvent) (string, []byte, error) {
	var resp graphEvent
	newToken, err := c.call(ctx, token, http.MethodPost, "/me/calendar/events", toGraphEvent(ev), &resp)
	if err != nil {
		return "", nil, err
	}
	return resp.ID, newToken, nil
}

func (c *Client) UpdateEvent(ctx context.Context, token []byte, ev commands.CalendarEvent) ([]byte, error) {
	return c.call(ctx, token, http.MethodPatch, "/me/calendar/events/"+ev.ID, toGraphEvent(ev), nil)
}

func (c *Client) DeleteEvent(ctx context.Context, token []byte, eventID string) ([]byte, error) {
	return c.call(ctx, token, http.MethodDelete, "/me/calendar/events/"+eventID, nil, nil)
}

// call performs one authenticated Graph request and returns the possibly
// refreshed token blob for the caller to persist.
func (c *Client) call(ctx context.Context, token []byte, method, path string, body any, out any) ([]byte, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	ts, err := c.tokenSource(ctx, token)
	if err != nil {
		return nil, err
	}

	current, err := ts.Token()
	if err != nil {
		return nil, classify(errs.Wrap(err, "token refresh failed"), 0)
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrap(err, "failed to marshal request body")
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build graph request")
	}
	current.SetAuthHeader(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classify(errs.Wrap(err, "graph request failed"), 0)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		apiErr := errs.New(fmt.Sprintf("graph returned %d: %s", resp.StatusCode, bytes.TrimSpace(data)))
		return nil, classify(apiErr, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, errs.Wrap(err, "failed to decode graph response")
		}
	}

	return MarshalToken(current)
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// classify marks a provider error as either an authorization failure (the
// token is dead, syncing this link is pointless until relinked) or a
// transient fault worth retrying on the next run.
func classify(err error, status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return errs.Mark(err, errs.ErrProviderAuth)
	case status == http.StatusTooManyRequests || status >= 500:
		return errs.Mark(err, errs.ErrProviderTransient)
	case status != 0:
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return errs.Mark(err, errs.ErrProviderTransient)
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		if retrieveErr.Response != nil && retrieveErr.Response.StatusCode >= 500 {
			return errs.Mark(err, errs.ErrProviderTransient)
		}
		return errs.Mark(err, errs.ErrProviderAuth)
	}

	return errs.Mark(err, errs.ErrProviderTransient)
}
