// Package models defines the marketplace entities the client works with.
// All of them are server-owned; the client only holds in-memory copies.
package models

// AuthLevel is the ordered authorization tier of a user. Higher values
// include every permission of the levels below, so role checks compare
// with >= against a threshold.
type AuthLevel int

const (
	// AuthLevelAnyone describes anonymous users who are not logged in.
	AuthLevelAnyone AuthLevel = 0

	// AuthLevelRegularUser describes users without special permissions.
	AuthLevelRegularUser AuthLevel = 1

	// AuthLevelModerator describes users with moderator permissions.
	AuthLevelModerator AuthLevel = 2

	// AuthLevelAdmin describes users with admin permissions.
	AuthLevelAdmin AuthLevel = 3
)

func (l AuthLevel) String() string {
	switch l {
	case AuthLevelAnyone:
		return "Guest"
	case AuthLevelRegularUser:
		return "User"
	case AuthLevelModerator:
		return "Moderator"
	case AuthLevelAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}

// User is the redacted view of an account as returned by the server.
// Sensitive material (password hash, TOTP secret) is withheld server-side.
type User struct {
	ID          string    `json:"id"`
	FirstNames  string    `json:"first_names"`
	LastName    string    `json:"last_name"`
	TOTPEnabled bool      `json:"totp_enabled"`
	Role        AuthLevel `json:"user_role"`
}
