package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/planandgo/internal/client/client"
	"github.com/dmitrijs2005/planandgo/internal/client/config"
	"github.com/dmitrijs2005/planandgo/internal/client/session"
	"github.com/dmitrijs2005/planandgo/internal/client/services"
	"github.com/dmitrijs2005/planandgo/internal/filex"
	"github.com/dmitrijs2005/planandgo/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	authService         services.AuthService
	profileService      services.ProfileService
	badgeService        services.BadgeService
	routeService        services.RouteService
	notificationService services.NotificationService
	feedbackService     services.FeedbackService

	reader *bufio.Reader
	out    io.Writer

	mu       sync.Mutex
	loggedIn bool
	userName string
}

// NewApp opens the local state database at c.StatePath and wires the API
// client and services around it. Call Close when done.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if _, err := filex.EnsureParentDir(c.StatePath); err != nil {
		return nil, err
	}

	store, db, err := session.Open(ctx, c.StatePath)
	if err != nil {
		logger.Error(ctx, "error initializing state database", "path", c.StatePath, "error", err)
		return nil, err
	}

	app := newApp(c, logger, store, os.Stdin, os.Stdout)
	app.db = db
	return app, nil
}

func newApp(c *config.Config, logger logging.Logger, store session.Store, in io.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		logger: logger,
		reader: bufio.NewReader(in),
		out:    out,
	}

	api := client.New(c.BaseURL, store,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger.With("component", "api")),
		client.WithOnUnauthenticated(a.onUnauthenticated),
	)

	a.authService = services.NewAuthService(api, store)
	a.profileService = services.NewProfileService(api)
	a.badgeService = services.NewBadgeService(api)
	a.routeService = services.NewRouteService(api)
	a.notificationService = services.NewNotificationService(api)
	a.feedbackService = services.NewFeedbackService(api)
	return a
}

// Run restores a saved session, then serves the REPL until the user exits
// or input ends.
func (a *App) Run(ctx context.Context) error {
	user, ok, err := a.authService.Restore(ctx)
	if err != nil {
		a.logger.Warn(ctx, "could not restore session", "error", err)
	}
	if ok {
		a.setLoggedIn(user.DisplayName())
	}

	a.printf("Welcome to PlanAndGo CLI (type 'help' for commands)\n")
	if ok {
		a.printf("Restored session for %s\n", a.displayUser())
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// onUnauthenticated is the API client's hook: the stored session could not
// be refreshed, so the user has to log in again.
func (a *App) onUnauthenticated(ctx context.Context) {
	a.mu.Lock()
	was := a.loggedIn
	a.loggedIn = false
	a.userName = ""
	a.mu.Unlock()

	a.logger.Info(ctx, "session expired")
	if was {
		a.printf("Your session has expired. Please log in again.\n")
	}
}

func (a *App) setLoggedIn(userName string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loggedIn = true
	a.userName = userName
}

func (a *App) setLoggedOut() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loggedIn = false
	a.userName = ""
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loggedIn
}

func (a *App) displayUser() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.userName == "" {
		return "unknown user"
	}
	return a.userName
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.loggedIn {
		return ""
	}
	if a.userName == "" {
		return "(logged in)"
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
