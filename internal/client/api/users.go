package api

import (
	"context"

	"github.com/egiraffe/egiraffe-cli/internal/client/models"
)

type UpdateMeRequest struct {
	FirstNames *string `json:"first_names,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Password   *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

func (c *HTTPClient) GetMe(ctx context.Context) (*models.User, error) {
	resp, err := put[struct {
		User models.User `json:"user"`
	}](ctx, c, "/api/v1/get/me", nil)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) UpdateMe(ctx context.Context, req UpdateMeRequest) (*models.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	resp, err := put[struct {
		User models.User `json:"user"`
	}](ctx, c, "/api/v1/do/me", req)
	if err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) GetMyBalance(ctx context.Context) (int, error) {
	resp, err := put[struct {
		Balance int `json:"ecs_balance"`
	}](ctx, c, "/api/v1/get/my-ecs-balance", nil)
	if err != nil {
		return 0, err
	}
	return resp.Balance, nil
}
