package api

import (
	"context"

	"github.com/egiraffe/egiraffe-cli/internal/client/models"
)

type CreateProfRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateProf registers an instructor that uploads can reference via held_by.
func (c *HTTPClient) CreateProf(ctx context.Context, req CreateProfRequest) (*models.Prof, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	resp, err := put[struct {
		Prof models.Prof `json:"prof"`
	}](ctx, c, "/api/v1/profs/create", req)
	if err != nil {
		return nil, err
	}
	return &resp.Prof, nil
}
