package api

import (
	"context"

	"github.com/egiraffe/egiraffe-cli/internal/client/models"
)

// SystemTransactionRequest credits or debits a user's EC balance through
// the system ledger. The server performs the transaction atomically and
// audits it; the client only issues the request and surfaces the outcome.
type SystemTransactionRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	DeltaEC int    `json:"delta_ec"`
	Reason  string `json:"reason,omitempty"`
}

func (c *HTTPClient) GetAllUsers(ctx context.Context) ([]models.User, error) {
	resp, err := put[struct {
		Users []models.User `json:"users"`
	}](ctx, c, "/api/v1/admin/users/get-users", nil)
	if err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *HTTPClient) GetUserBalance(ctx context.Context, userID string) (int, error) {
	resp, err := put[struct {
		Balance int `json:"ecs_balance"`
	}](ctx, c, "/api/v1/ecs/get-user-balance", map[string]string{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (c *HTTPClient) CreateSystemTransaction(ctx context.Context, req SystemTransactionRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	_, err := put[ack](ctx, c, "/api/v1/ecs/create-system-transaction", req)
	return err
}
