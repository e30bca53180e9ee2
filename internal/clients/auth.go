package clients

import (
	"context"
	"net/http"

	"github.com/casafurnish/storefront-gateway/internal/models"
)

// AuthSession is what a successful login/register yields: the upstream bearer
// token plus the user it identifies.
type AuthSession struct {
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expires_in"`
	User      models.User `json:"user"`
}

type AuthAPI interface {
	Login(ctx context.Context, req *models.LoginRequest) (*AuthSession, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*AuthSession, error)
	Me(ctx context.Context, token string) (*models.User, error)
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
}

type authClient struct {
	c *Client
}

func NewAuthClient(c *Client) AuthAPI {
	return &authClient{c: c}
}

type authSessionPayload struct {
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expires_in"`
	User      userPayload `json:"user"`
}

func (p *authSessionPayload) toSession() (*AuthSession, error) {
	user, err := p.User.toModel()
	if err != nil {
		return nil, err
	}

	return &AuthSession{Token: p.Token, ExpiresIn: p.ExpiresIn, User: user}, nil
}

func (a *authClient) Login(ctx context.Context, req *models.LoginRequest) (*AuthSession, error) {

	var payload authSessionPayload

	if err := a.c.do(ctx, http.MethodPost, "/auth/login", nil, "", req, &payload); err != nil {
		return nil, err
	}

	return payload.toSession()
}

func (a *authClient) Register(ctx context.Context, req *models.RegisterRequest) (*AuthSession, error) {

	var payload authSessionPayload

	if err := a.c.do(ctx, http.MethodPost, "/auth/register", nil, "", req, &payload); err != nil {
		return nil, err
	}

	return payload.toSession()
}

func (a *authClient) Me(ctx context.Context, token string) (*models.User, error) {

	var payload userPayload

	if err := a.c.do(ctx, http.MethodGet, "/auth/me", nil, token, nil, &payload); err != nil {
		return nil, err
	}

	user, err := payload.toModel()
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (a *authClient) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	return a.c.do(ctx, http.MethodPost, "/auth/reset-password", nil, "", req, nil)
}
