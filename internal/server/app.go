// Package server initializes and runs the vault server: it wires the
// Postgres-backed repositories into the services, starts the gRPC
// endpoint and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/milavault/milavault/internal/logging"
	"github.com/milavault/milavault/internal/server/config"
	"github.com/milavault/milavault/internal/server/db"
	"github.com/milavault/milavault/internal/server/services"

	gs "github.com/milavault/milavault/internal/server/grpc"
)

// loginTokenCleanupInterval is how often expired login links are purged.
const loginTokenCleanupInterval = time.Hour

type App struct {
	config        *config.Config
	logger        logging.Logger
	manager       db.RepositoryManager
	userService   *services.UserService
	personService *services.PersonService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	m, err := db.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := services.NewUserService(m, cfg)
	ps := services.NewPersonService(m.People())

	return &App{
		config:        cfg,
		logger:        logger,
		manager:       m,
		userService:   us,
		personService: ps,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.personService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

// startLoginTokenJanitor periodically removes expired login links so the
// table does not grow without bound.
func (app *App) startLoginTokenJanitor(ctx context.Context) {
	ticker := time.NewTicker(loginTokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := app.manager.LoginTokens().DeleteExpired(ctx); err != nil {
				app.logger.Warn(ctx, "login token cleanup failed", "error", err)
			}
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	go app.startLoginTokenJanitor(ctx)

	wg.Wait()

}
