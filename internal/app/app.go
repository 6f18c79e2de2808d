// AngelaMos | 2026
// app.go

package app

import (
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/templates/casetrail/internal/auth"
	"github.com/carterperez-dev/templates/casetrail/internal/communication"
	"github.com/carterperez-dev/templates/casetrail/internal/config"
	"github.com/carterperez-dev/templates/casetrail/internal/core"
	"github.com/carterperez-dev/templates/casetrail/internal/export"
	"github.com/carterperez-dev/templates/casetrail/internal/health"
	"github.com/carterperez-dev/templates/casetrail/internal/middleware"
	"github.com/carterperez-dev/templates/casetrail/internal/pages"
	"github.com/carterperez-dev/templates/casetrail/internal/server"
	"github.com/carterperez-dev/templates/casetrail/internal/timeline"
	"github.com/carterperez-dev/templates/casetrail/internal/user"
)

// Deps are the long-lived resources the application is assembled from.
// Redis is optional.
type Deps struct {
	Config *config.Config
	DB     *core.Database
	Redis  *core.Redis
	Logger *slog.Logger
}

type App struct {
	Server   *server.Server
	Health   *health.Handler
	Sessions auth.SessionStore
}

// New builds every service and mounts the full route tree on a server that
// has not started listening yet.
func New(deps Deps) (*App, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sessions, err := newSessionStore(cfg.Session, deps.Redis)
	if err != nil {
		return nil, err
	}

	userSvc := user.NewService(user.NewRepository(deps.DB.DB))
	authSvc := auth.NewService(userSvc, sessions)
	timelineSvc := timeline.NewService(deps.DB.DB)
	commSvc := communication.NewService(communication.NewRepository(deps.DB.DB))
	exportSvc := export.NewService(timelineSvc)

	pagesHandler, err := pages.NewHandler(timelineSvc, commSvc, userSvc)
	if err != nil {
		return nil, err
	}

	healthHandler := health.NewHandler(dependencies(deps)...)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Tracing)
	router.Use(middleware.Session(authSvc, cfg.Session.CookieName))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.CORS(cfg.CORS))
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(
		middleware.NewRateLimiter(redisClient(deps.Redis), middleware.RateLimitConfig{
			Limit:      middleware.LimitFromConfig(cfg.RateLimit),
			KeyFunc:    middleware.KeyByUser,
			FailOpen:   true,
			BypassFunc: middleware.BypassHealth,
		}).Handler,
	)

	healthHandler.RegisterRoutes(router)
	pagesHandler.RegisterRoutes(router)

	requireAuth := middleware.RequireAuth

	router.Route("/api", func(r chi.Router) {
		auth.NewHandler(authSvc, auth.CookieConfig{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.App.Environment == "production",
		}).RegisterRoutes(r)

		user.NewHandler(userSvc).RegisterRoutes(r, requireAuth)
		timeline.NewHandler(timelineSvc).RegisterRoutes(r, requireAuth)
		communication.NewHandler(commSvc).RegisterRoutes(r, requireAuth)
		export.NewHandler(exportSvc).RegisterRoutes(r, requireAuth)
	})

	return &App{
		Server:   srv,
		Health:   healthHandler,
		Sessions: sessions,
	}, nil
}

func newSessionStore(cfg config.SessionConfig, rdb *core.Redis) (auth.SessionStore, error) {
	switch cfg.Store {
	case config.SessionStoreRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis session store requires a redis connection")
		}
		return auth.NewRedisSessionStore(rdb.Client, cfg.TTL), nil
	case config.SessionStoreMemory, "":
		return auth.NewMemorySessionStore(cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unsupported session store %q", cfg.Store)
	}
}

func dependencies(deps Deps) []health.Dependency {
	checks := []health.Dependency{{Name: "database", Checker: deps.DB}}

	redisCheck := health.Dependency{Name: "redis", Optional: true}
	if deps.Redis != nil {
		redisCheck.Checker = deps.Redis
		redisCheck.Optional = false
	}
	return append(checks, redisCheck)
}

func redisClient(rdb *core.Redis) *redis.Client {
	if rdb == nil {
		return nil
	}
	return rdb.Client
}
