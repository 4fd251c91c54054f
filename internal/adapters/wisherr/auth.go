package wisherr

import (
	"context"
	"errors"
	"fmt"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	"github.com/wisherr/wisherr-ui/internal/domain/model"
)

// Login exchanges credentials for a bearer token (POST /auth/login).
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", errors.New("username and password are required")
	}

	body := map[string]string{"username": username, "password": password}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.post(ctx, "", "/auth/login", body, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", errors.New("login response missing access token")
	}
	return resp.AccessToken, nil
}

// Register creates a new account (POST /auth/register) and returns its id.
func (c *Client) Register(ctx context.Context, username, email, password string) (int64, error) {
	if username == "" || email == "" || password == "" {
		return 0, errors.New("username, email and password are required")
	}

	body := map[string]string{"username": username, "email": email, "password": password}
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.post(ctx, "", "/auth/register", body, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// Me resolves the current user profile from a bearer token (GET /auth/me).
func (c *Client) Me(ctx context.Context, token string) (domainauth.User, error) {
	if token == "" {
		return domainauth.User{}, errors.New("token is required")
	}

	var user domainauth.User
	if err := c.get(ctx, token, "/auth/me", &user); err != nil {
		return domainauth.User{}, err
	}
	return user, nil
}

// ExchangeOIDCToken trades a verified OpenID Connect ID token for a backend
// access token (POST /auth/oidc/exchange).
func (c *Client) ExchangeOIDCToken(ctx context.Context, rawIDToken string) (string, error) {
	if rawIDToken == "" {
		return "", errors.New("id token is required")
	}

	body := map[string]string{"id_token": rawIDToken}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.post(ctx, "", "/auth/oidc/exchange", body, &resp); err != nil {
		return "", fmt.Errorf("exchange oidc token: %w", err)
	}
	return resp.AccessToken, nil
}

// UpdateProfile updates the current user's profile fields (PUT /auth/me).
func (c *Client) UpdateProfile(ctx context.Context, token string, in map[string]any) (domainauth.User, error) {
	var user domainauth.User
	if err := c.put(ctx, token, "/auth/me", in, &user); err != nil {
		return domainauth.User{}, err
	}
	return user, nil
}

// SiteInfo fetches public branding data (GET /public/site-info).
func (c *Client) SiteInfo(ctx context.Context) (model.SiteInfo, error) {
	var info model.SiteInfo
	if err := c.get(ctx, "", "/public/site-info", &info); err != nil {
		return model.SiteInfo{}, err
	}
	return info, nil
}
