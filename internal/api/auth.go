package api

import "context"

// Credentials are the login form payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. The token is not
// installed on the client; callers decide when to adopt it.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	if err := checkParams(creds); err != nil {
		return "", err
	}
	payload, err := c.post(ctx, "/auth/login", creds)
	if err != nil {
		return "", err
	}
	resp, err := decodeEntity[loginResponse](payload)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Me resolves the authenticated principal, including the server-assigned
// role. The role is never taken from client input.
func (c *Client) Me(ctx context.Context) (Principal, error) {
	payload, err := c.get(ctx, "/me", nil)
	if err != nil {
		return Principal{}, err
	}
	return decodeEntity[Principal](payload)
}
