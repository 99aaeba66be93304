package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/milavault/milavault/internal/client/config"
	"github.com/milavault/milavault/internal/client/db"
	"github.com/milavault/milavault/internal/client/draft"
	"github.com/milavault/milavault/internal/client/remote"
	"github.com/milavault/milavault/internal/client/session"
	"github.com/milavault/milavault/internal/client/vault"
	"github.com/milavault/milavault/internal/logging"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

type App struct {
	config *config.Config
	store  remote.RecordStore
	ctrl   *vault.Controller
	edit   *session.Edit
	notes  *session.Notes
	Mode   Mode
	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	repos, err := db.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	drafts := draft.NewStore(ctx, repos.Drafts, logger)

	store, err := remote.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	ctrl := vault.NewController(store, drafts, logger)
	notes := session.NewNotes(drafts, ctrl)
	edit := session.NewEdit(drafts, notes, ctrl)

	return &App{
		config: c,
		store:  store,
		ctrl:   ctrl,
		edit:   edit,
		notes:  notes,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	_, ok := a.store.CurrentUser()
	return ok
}

// StartOnlineStatusWatcher periodically probes the server and flips the
// connectivity mode when reachability changes.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.store.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
