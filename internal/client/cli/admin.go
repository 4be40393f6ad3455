package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/egiraffe/egiraffe-cli/internal/client/api"
	"github.com/egiraffe/egiraffe-cli/internal/client/models"
)

// Users lists all accounts with their role levels.
func (a *App) Users(ctx context.Context) error {
	if !a.hasRole(models.AuthLevelAdmin) {
		printlnFn("Not authorized")
		return nil
	}
	return runPage(ctx, a.client.GetAllUsers, func(users []models.User) {
		if len(users) == 0 {
			printlnFn("No users found")
			return
		}
		for _, user := range users {
			printlnFn(fmt.Sprintf("%s  %s %s  %s", user.ID, user.FirstNames, user.LastName, user.Role.String()))
		}
	})
}

// Grant books a system EC transaction for a user: "grant <user-id>
// <delta-ec> [reason...]". The delta may be negative; the server rejects a
// transaction that would overdraw the balance, and that rejection is shown
// verbatim.
func (a *App) Grant(ctx context.Context, args []string) error {
	if !a.hasRole(models.AuthLevelAdmin) {
		printlnFn("Not authorized")
		return nil
	}

	userID := args[0]
	delta, err := strconv.Atoi(args[1])
	if err != nil {
		printlnFn("Delta must be an integer number of ECs")
		return nil
	}
	reason := strings.Join(args[2:], " ")

	req := api.SystemTransactionRequest{UserID: userID, DeltaEC: delta, Reason: reason}
	if err := a.client.CreateSystemTransaction(ctx, req); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	balance, err := a.client.GetUserBalance(ctx, userID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Booked %+d EC for %s, new balance %d EC", delta, userID, balance))
	return nil
}
