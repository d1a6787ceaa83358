package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/ErikMirg/BSC-Portal/internal/client/api"
	"github.com/ErikMirg/BSC-Portal/internal/client/config"
	"github.com/ErikMirg/BSC-Portal/internal/client/services"
	"github.com/ErikMirg/BSC-Portal/internal/client/session"
	"github.com/ErikMirg/BSC-Portal/internal/logging"
)

// App wires the portal services to the interactive terminal loop.
type App struct {
	config   *config.Config
	session  session.Store
	auth     services.AuthService
	profiles services.ProfileService
	state    services.AuthState
	reader   *bufio.Reader
	log      logging.Logger
}

// NewApp builds the application: the per-origin session store, the API
// client bound to it and the services on top.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	store, err := session.NewFileStore(c.StateDir, c.ServerBaseURL)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	gw := api.New(c.ServerBaseURL, c.RequestTimeout, store, log)

	return &App{
		config:   c,
		session:  store,
		auth:     services.NewAuthService(gw, store, log),
		profiles: services.NewProfileService(gw, log),
		state:    services.StateChecking,
		reader:   bufio.NewReader(os.Stdin),
		log:      log,
	}, nil
}

// Run probes the stored session once and enters the command loop.
func (a *App) Run(ctx context.Context) {
	printlnFn("Portal CLI (type 'help' for commands)")
	printlnFn("Checking authorization...")

	a.state = a.auth.Check(ctx)
	if a.state == services.StateAuthenticated {
		printlnFn("Session restored.")
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.state == services.StateAuthenticated
}

func (a *App) status() string {
	return a.state.String()
}
