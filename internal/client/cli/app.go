package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/egiraffe/egiraffe-cli/internal/client/api"
	"github.com/egiraffe/egiraffe-cli/internal/client/config"
	"github.com/egiraffe/egiraffe-cli/internal/client/models"
	"github.com/egiraffe/egiraffe-cli/internal/client/session"
	"github.com/egiraffe/egiraffe-cli/internal/client/viewstate"
	"github.com/egiraffe/egiraffe-cli/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// App wires the pages together: one API client, one session store, and the
// per-page view state (course search, library sort) shared across commands.
type App struct {
	config  *config.Config
	client  api.Client
	session *session.Store
	log     logging.Logger

	search      *CourseSearch
	librarySort *viewstate.SortState

	Mode   Mode
	reader *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	apiClient, err := api.NewHTTPClient(c.BaseURL, log)
	if err != nil {
		return nil, err
	}
	return newAppWithClient(c, apiClient, log), nil
}

func newAppWithClient(c *config.Config, client api.Client, log logging.Logger) *App {
	return &App{
		config:      c,
		client:      client,
		session:     session.NewStore(client, log),
		log:         log,
		search:      NewCourseSearch(client, c.SearchDebounce),
		librarySort: viewstate.NewSortState("date"),
		Mode:        ModeOnline,
		reader:      bufio.NewReader(os.Stdin),
	}
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		printlnFn("Switched to " + string(mode) + " mode")
	}
}

// Run bootstraps the identity from an existing session cookie (a failure is
// the normal anonymous case), starts the connectivity watcher and hands
// control to the REPL.
func (a *App) Run(ctx context.Context) {
	a.session.Init(ctx)

	// Pages raise this flag when an anonymous user hits a gated affordance.
	unsubscribe := a.session.LoginPrompt().Subscribe(func(show bool) {
		if show {
			printlnFn("Login required: type 'login' to sign in")
		}
	})
	defer unsubscribe()

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Identity() != nil
}

func (a *App) hasRole(level models.AuthLevel) bool {
	return a.session.HasRole(level)
}

// requireLogin raises the shared login prompt when anonymous. Gating is
// advisory: the server decides authorization on every call anyway.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	a.session.LoginPrompt().Set(true)
	return false
}

func (a *App) getStatus() string {
	s := ""
	if user := a.session.Identity(); user != nil {
		s = user.FirstNames + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

// StartOnlineStatusWatcher periodically pings the backend and flips the
// connectivity mode shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.client.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
