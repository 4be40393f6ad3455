package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/egiraffe/egiraffe-cli/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	hasRole(level models.AuthLevel) bool

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error

	Me(ctx context.Context) error
	UpdateMe(ctx context.Context) error
	Balance(ctx context.Context) error

	Courses(ctx context.Context, query string) error
	Universities(ctx context.Context) error
	NewCourse(ctx context.Context) error
	NewProf(ctx context.Context) error

	Uploads(ctx context.Context, courseID string) error
	Show(ctx context.Context, uploadID string) error
	Buy(ctx context.Context, uploadID string) error
	Library(ctx context.Context, args []string) error
	Upload(ctx context.Context) error

	ModUploads(ctx context.Context) error
	ModFiles(ctx context.Context) error
	SetFileApproval(ctx context.Context, fileID string, approved bool) error

	Users(ctx context.Context) error
	Grant(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the Egiraffe CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Help lists only the commands the current role can see; the hiding is
// cosmetic, every gated handler surfaces the server's own rejection.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("eg %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp(a)

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "me":
			_ = a.Me(ctx)

		case "update":
			_ = a.UpdateMe(ctx)

		case "balance":
			_ = a.Balance(ctx)

		case "courses":
			_ = a.Courses(ctx, strings.Join(args, " "))

		case "unis":
			_ = a.Universities(ctx)

		case "newcourse":
			_ = a.NewCourse(ctx)

		case "newprof":
			_ = a.NewProf(ctx)

		case "uploads":
			if len(args) != 1 {
				printlnFn("Usage: uploads <course-id>")
				continue
			}
			_ = a.Uploads(ctx, args[0])

		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <upload-id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "buy":
			if len(args) != 1 {
				printlnFn("Usage: buy <upload-id>")
				continue
			}
			_ = a.Buy(ctx, args[0])

		case "library":
			_ = a.Library(ctx, args)

		case "upload":
			_ = a.Upload(ctx)

		case "mod":
			if len(args) != 1 || (args[0] != "uploads" && args[0] != "files") {
				printlnFn("Usage: mod uploads|files")
				continue
			}
			if args[0] == "uploads" {
				_ = a.ModUploads(ctx)
			} else {
				_ = a.ModFiles(ctx)
			}

		case "approve", "reject":
			if len(args) != 1 {
				printlnFn("Usage: " + cmd + " <file-id>")
				continue
			}
			_ = a.SetFileApproval(ctx, args[0], cmd == "approve")

		case "users":
			_ = a.Users(ctx)

		case "grant":
			if len(args) < 2 {
				printlnFn("Usage: grant <user-id> <delta-ec> [reason...]")
				continue
			}
			_ = a.Grant(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	if !a.isLoggedIn() {
		printlnFn("Available commands: login, register, courses [query], uploads <course-id>, show <upload-id>, unis, exit")
		return
	}
	printlnFn("Available commands: courses [query], uploads <course-id>, show <upload-id>, buy <upload-id>, library, upload, me, update, balance, unis, logout, exit")
	if a.hasRole(models.AuthLevelModerator) {
		printlnFn("Moderation: newcourse, newprof, mod uploads|files, approve <file-id>, reject <file-id>")
	}
	if a.hasRole(models.AuthLevelAdmin) {
		printlnFn("Admin: users, grant <user-id> <delta-ec> [reason...]")
	}
}
