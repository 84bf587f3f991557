package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/bloodstream/bloodstream-go/internal/api"
	"github.com/bloodstream/bloodstream-go/internal/config"
	"github.com/bloodstream/bloodstream-go/internal/logging"
	"github.com/bloodstream/bloodstream-go/internal/notify"
	"github.com/bloodstream/bloodstream-go/internal/realtime"
	"github.com/bloodstream/bloodstream-go/internal/services"
	"github.com/bloodstream/bloodstream-go/internal/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// App ties the client together for interactive use.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session *session.Store
	inbox   *notify.Store
	channel *realtime.Client

	auth          services.AuthService
	requests      services.RequestsService
	appointments  services.AppointmentsService
	banks         services.BloodBanksService
	cards         services.BloodCardsService
	notifications services.NotificationsService

	reader *bufio.Reader
}

// NewApp opens the session database, restores any saved session, and wires
// the API client, domain services, and realtime channel.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNop()
	}

	db, err := session.OpenDB(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(db, log)
	if err := store.Load(ctx); err != nil {
		log.Warn(ctx, "loading saved session", "error", err)
	}

	app := &App{
		config:  cfg,
		log:     log,
		db:      db,
		session: store,
		inbox:   notify.NewStore(),
		reader:  bufio.NewReader(os.Stdin),
	}

	notifier := consoleNotifier{}
	apiClient := api.New(api.Options{
		BaseURL:  cfg.APIBaseURL,
		Timeout:  cfg.HTTPTimeout,
		Session:  store,
		Notifier: notifier,
		Logger:   log,
		LoginRedirect: func() {
			app.channel.Disconnect()
		},
	})

	app.channel = realtime.New(realtime.Options{
		URL:           cfg.SocketURL,
		Session:       store,
		Notifications: app.inbox,
		Notifier:      notifier,
		Logger:        log,
		Policy: realtime.ReconnectPolicy{
			InitialDelay: cfg.ReconnectInitialDelay,
			MaxDelay:     cfg.ReconnectMaxDelay,
			Multiplier:   2,
			MaxAttempts:  cfg.ReconnectMaxAttempts,
		},
	})

	app.auth = services.NewAuthService(apiClient, store)
	app.requests = services.NewRequestsService(apiClient)
	app.appointments = services.NewAppointmentsService(apiClient)
	app.banks = services.NewBloodBanksService(apiClient)
	app.cards = services.NewBloodCardsService(apiClient)
	app.notifications = services.NewNotificationsService(apiClient)

	return app, nil
}

// Run starts the REPL and releases resources when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close tears down the realtime channel and the session database.
func (a *App) Close() {
	a.channel.Disconnect()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

// consoleNotifier prints transient notices between prompts.
type consoleNotifier struct{}

func (consoleNotifier) Notify(n notify.Notice) {
	msg := n.Message
	if n.Title != "" {
		if msg != "" {
			msg = n.Title + ": " + msg
		} else {
			msg = n.Title
		}
	}
	printlnFn(fmt.Sprintf("[%s] %s", strings.ToUpper(string(n.Severity)), msg))
}
