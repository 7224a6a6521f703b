package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/cashtrack/cashtrack/internal/api"
	"github.com/cashtrack/cashtrack/internal/auth"
	"github.com/cashtrack/cashtrack/internal/config"
	"github.com/cashtrack/cashtrack/internal/dashboard"
	"github.com/cashtrack/cashtrack/internal/logging"
	"github.com/cashtrack/cashtrack/internal/profile"
	"github.com/cashtrack/cashtrack/internal/storage"

	_ "modernc.org/sqlite"
)

// App wires the client pieces together behind the REPL commands.
type App struct {
	config  *config.Config
	client  api.Client
	store   *auth.Store
	dash    *dashboard.Dashboard
	profile *profile.Service
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewDefault()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	client := api.NewHTTPClient(c.APIBaseURL, api.WithTimeout(c.HTTPTimeout))
	store := auth.NewStore(client, storage.NewSQLiteStorage(db), log)
	dash := dashboard.New(ctx, client, dashboard.Options{
		PageLimit:   c.PageLimit,
		TrendMonths: c.TrendMonths,
	})

	return &App{
		config:  c,
		client:  client,
		store:   store,
		dash:    dash,
		profile: profile.NewService(client),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

func (a *App) status() string {
	if user := a.store.User(); user != nil {
		return user.Email
	}
	return "not logged in"
}

// Run restores a persisted session, primes the dashboard when one exists, and
// drops into the REPL.
func (a *App) Run(ctx context.Context) {
	if err := a.store.Restore(ctx); err != nil {
		printlnFn("Could not restore session:", err.Error())
	}
	if a.isLoggedIn() {
		a.dash.RefreshAll(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
