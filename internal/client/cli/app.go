package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/calcfront/internal/client/api"
	"github.com/dmitrijs2005/calcfront/internal/client/config"
	"github.com/dmitrijs2005/calcfront/internal/client/services"
	"github.com/dmitrijs2005/calcfront/internal/client/session"
	"github.com/dmitrijs2005/calcfront/internal/logging"
)

// App wires the CLI views to the application services. It is constructed
// once per process; the session store inside it is the single source of
// truth for identity and balance.
type App struct {
	config  *config.Config
	store   *session.Store
	auth    *services.AuthService
	ops     *services.OperationService
	browser *services.Browser
	logger  logging.Logger
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := session.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store, err := session.NewStore(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("error restoring session: %w", err)
	}

	apiClient := api.NewHTTPClient(cfg.APIBaseURL)

	return &App{
		config:  cfg,
		store:   store,
		auth:    services.NewAuthService(apiClient, store),
		ops:     services.NewOperationService(apiClient, store),
		browser: services.NewBrowser(apiClient, store),
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, a.statusLine, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.store.State().LoggedIn()
}

// statusLine is the REPL prompt header: username and balance when logged in,
// "guest" otherwise.
func (a *App) statusLine() string {
	st := a.store.State()
	if !st.LoggedIn() {
		return "guest"
	}

	name := ""
	if st.Username != nil {
		name = *st.Username
	}
	if st.Balance != nil && *st.Balance != "" {
		return fmt.Sprintf("%s, balance: %s", name, *st.Balance)
	}
	return name
}
