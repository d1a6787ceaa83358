package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// TokenResponse is the backend's answer to a successful credential exchange.
type TokenResponse struct {
	AccessToken            string `json:"access_token"`
	TokenType              string `json:"token_type"`
	RequiresPasswordChange bool   `json:"requires_password_change"`
}

// Login exchanges credentials for a bearer token. The wire uses an
// OAuth2-style URL-encoded form whose keys are `username`/`password`;
// internally the first field is called login.
func (c *Client) Login(ctx context.Context, login, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", login)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/token", nil,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return nil, err
	}

	var token TokenResponse
	if err := c.do(req, &token); err != nil {
		return nil, err
	}
	return &token, nil
}
