package plateful

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/plateful/plateful-backend/internal/cache"
	"github.com/plateful/plateful-backend/internal/config"
	"github.com/plateful/plateful-backend/internal/events"
	"github.com/plateful/plateful-backend/internal/lib/jwt"
	"github.com/plateful/plateful-backend/internal/lib/rabbitmq"
	"github.com/plateful/plateful-backend/internal/migrations"
	authservice "github.com/plateful/plateful-backend/internal/services/auth"
	restaurantservice "github.com/plateful/plateful-backend/internal/services/restaurant"
	searchservice "github.com/plateful/plateful-backend/internal/services/search"
	userservice "github.com/plateful/plateful-backend/internal/services/user"
	votingservice "github.com/plateful/plateful-backend/internal/services/voting"
	"github.com/plateful/plateful-backend/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	var pub events.Publisher
	if cfg.RabbitMQ.URL != "" {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, 5, 3*time.Second)
		if err != nil {
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(conn, cfg.RabbitMQ.ActivityQueue)
		if err != nil {
			return nil, err
		}
		pub = events.NewRabbitPublisher(ch, cfg.RabbitMQ.ActivityQueue)
	} else {
		logger.Warn("rabbitmq url is empty, activity events disabled")
	}

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	authService := authservice.New(db, jwtMaker)
	restaurantService := restaurantservice.New(db, cacheRedis, logger)
	searchService := searchservice.New(db)
	votingService := votingservice.New(db, cacheRedis, pub, logger)
	userService := userservice.New(db, pub, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, jwtMaker,
		authService, restaurantService, searchService, votingService, userService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
