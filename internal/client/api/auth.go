package api

import "context"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	TOTP     string `json:"totp,omitempty" validate:"omitempty,len=6,numeric"`
}

type RegisterRequest struct {
	FirstNames string `json:"first_names" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
}

// Login authenticates the session. The server sets a session cookie which
// lands in the client's jar; callers wanting the authoritative identity
// re-fetch it via GetMe rather than trusting the login echo.
func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	_, err := put[struct {
		Email string `json:"email"`
	}](ctx, c, "/api/v1/auth/login", req)
	return err
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	_, err := put[ack](ctx, c, "/api/v1/auth/register", req)
	return err
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := put[ack](ctx, c, "/api/v1/auth/logout", nil)
	return err
}

// Ping hits the API greeting endpoint. Used by the online-status watcher.
func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := put[ack](ctx, c, "/api/v1/get/", nil)
	return err
}
