package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/egiraffe/egiraffe-cli/internal/client/api"
	"github.com/egiraffe/egiraffe-cli/internal/client/models"
)

// Me shows the current account as the server sees it.
func (a *App) Me(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	return runPage(ctx, a.client.GetMe, func(user *models.User) {
		printlnFn("ID:         " + user.ID)
		printlnFn("Name:       " + user.FirstNames + " " + user.LastName)
		printlnFn("Role:       " + user.Role.String())
		printlnFn("2FA:        " + yesNo(user.TOTPEnabled))
	})
}

// UpdateMe patches the own account; empty inputs leave a field unchanged.
func (a *App) UpdateMe(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	firstNames, err := getSimpleText(a.reader, "New first names (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "New last name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getSimpleText(a.reader, "New password (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	var req api.UpdateMeRequest
	if firstNames != "" {
		req.FirstNames = &firstNames
	}
	if lastName != "" {
		req.LastName = &lastName
	}
	if password != "" {
		req.Password = &password
	}

	user, err := a.client.UpdateMe(ctx, req)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Updated: " + user.FirstNames + " " + user.LastName)
	return nil
}

// Balance shows the own EC balance.
func (a *App) Balance(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	return runPage(ctx, a.client.GetMyBalance, func(balance int) {
		printlnFn(fmt.Sprintf("Balance: %d EC", balance))
	})
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
