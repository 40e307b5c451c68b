package msgraph

import (
	"context"
	"encoding/json"

	"resource-booking-api/internal/pkg/config"
	"resource-booking-api/internal/pkg/errs"

	"golang.org/x/oauth2"
)

// Scopes requested for calendar linking. offline_access yields the refresh
// token that keeps the link alive between sync runs.
var Scopes = []string{"offline_access", "User.Read", "Calendars.ReadWrite"}

func OAuthConfig(cfg config.O365Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.CallbackURL,
		Scopes:       Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.AuthURL,
			TokenURL: cfg.TokenURL,
		},
	}
}

func MarshalToken(token *oauth2.Token) ([]byte, error) {
	blob, err := json.Marshal(token)
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal oauth token")
	}
	return blob, nil
}

func UnmarshalToken(blob []byte) (*oauth2.Token, error) {
	var token oauth2.Token
	if err := json.Unmarshal(blob, &token); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshal oauth token")
	}
	return &token, nil
}

// tokenSource wraps the library refresh flow so an expired access token is
// renewed transparently on the next provider call.
func (c *Client) tokenSource(ctx context.Context, blob []byte) (oauth2.TokenSource, error) {
	token, err := UnmarshalToken(blob)
	if err != nil {
		return nil, err
	}
	return c.oauth.TokenSource(ctx, token), nil
}
