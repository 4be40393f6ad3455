package cli

import (
	"context"
	"os"

	"github.com/egiraffe/egiraffe-cli/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials (plus the TOTP code for accounts with
// two-factor enabled) and authenticates through the session store, which
// re-fetches the identity on success. The server's failure message is
// surfaced as-is.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	totp, err := getSimpleText(a.reader, "Enter TOTP code (leave empty if 2FA is disabled)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, api.LoginRequest{Email: email, Password: password, TOTP: totp}); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	printlnFn("Logged in as " + email)
	return nil
}

// Register prompts for the account fields and creates a new account. The
// user still has to log in afterwards.
func (a *App) Register(ctx context.Context) error {
	firstNames, err := getSimpleText(a.reader, "Enter first names", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	req := api.RegisterRequest{FirstNames: firstNames, LastName: lastName, Email: email, Password: password}
	if err := a.session.Register(ctx, req); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Success! You can now log in.")
	return nil
}

// Logout clears the local identity unconditionally; the server call behind
// it is fire-and-forget.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out")
	return nil
}
