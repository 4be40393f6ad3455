package api

import (
	"context"

	"github.com/egiraffe/egiraffe-cli/internal/client/models"
)

func (c *HTTPClient) GetUniversities(ctx context.Context) ([]models.University, error) {
	resp, err := put[struct {
		Universities []models.University `json:"universities"`
	}](ctx, c, "/api/v1/get/universities", nil)
	if err != nil {
		return nil, err
	}
	return resp.Universities, nil
}
