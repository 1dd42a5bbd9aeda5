package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"

	"github.com/aidar/turmas/internal/config"
	"github.com/aidar/turmas/internal/events"
	"github.com/aidar/turmas/internal/handler"
	"github.com/aidar/turmas/internal/metrics"
	"github.com/aidar/turmas/internal/middleware"
	"github.com/aidar/turmas/internal/repository"
	"github.com/aidar/turmas/internal/repository/postgres"
	"github.com/aidar/turmas/internal/repository/sqlite"
	"github.com/aidar/turmas/internal/service"
	"github.com/aidar/turmas/pkg/logging"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config  *config.Config
	logger  *slog.Logger
	clock   clockwork.Clock
	metrics *metrics.Metrics

	pool   *pgxpool.Pool // PostgreSQL (STORAGE_DRIVER=postgres)
	sqlDB  *sql.DB       // SQLite (STORAGE_DRIVER=sqlite)
	groups repository.GroupRepository
	roster repository.PlayerRepository

	nats      *events.NATSPublisher
	publisher events.Publisher

	router http.Handler
	server *http.Server
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	// Инициализируем структурированный логгер
	logger := logging.Setup(os.Stdout, cfg.Log.Format, cfg.Log.Level)

	app := &App{
		config:  cfg,
		logger:  logger,
		clock:   clockwork.NewRealClock(),
		metrics: metrics.New(),
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	// Подключаемся к хранилищу
	if err := a.connectStorage(ctx); err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	// Подключаемся к брокеру событий
	if err := a.connectEvents(); err != nil {
		return fmt.Errorf("failed to connect to event broker: %w", err)
	}

	// Настраиваем HTTP сервер и роутинг
	a.setupServer()

	a.logger.Info("Application initialized successfully", "storage", a.config.Storage.Driver)
	return nil
}

// connectStorage открывает хранилище, выбранное в STORAGE_DRIVER
func (a *App) connectStorage(ctx context.Context) error {
	switch a.config.Storage.Driver {
	case config.StorageDriverSQLite:
		db, err := sqlite.Open(a.config.Storage.SQLitePath)
		if err != nil {
			return err
		}
		a.sqlDB = db
		a.groups = sqlite.NewGroupRepository(db)
		a.roster = sqlite.NewPlayerRepository(db)
		a.logger.Info("Opened SQLite database", "path", a.config.Storage.SQLitePath)
		return nil
	default:
		if err := a.connectDB(ctx); err != nil {
			return err
		}
		a.groups = postgres.NewGroupRepository(a.pool)
		a.roster = postgres.NewPlayerRepository(a.pool)
		return nil
	}
}

// connectDB устанавливает подключение к PostgreSQL с connection pool и применяет миграции
func (a *App) connectDB(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	// Настраиваем размеры connection pool
	poolConfig.MaxConns = a.config.Database.MaxConns
	poolConfig.MinConns = a.config.Database.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем подключение к БД
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return err
	}

	a.pool = pool
	a.logger.Info("Connected to database")
	return nil
}

// connectEvents подключается к NATS, если задан EVENTS_NATS_URL
func (a *App) connectEvents() error {
	if a.config.Events.NATSURL == "" {
		a.publisher = metrics.NewMetricPublisher(events.NopPublisher{}, a.metrics)
		return nil
	}

	natsCfg := events.DefaultNATSConfig()
	natsCfg.URL = a.config.Events.NATSURL
	natsCfg.SubjectPrefix = a.config.Events.SubjectPrefix

	publisher, err := events.NewNATSPublisher(natsCfg, a.logger)
	if err != nil {
		return err
	}

	a.nats = publisher
	a.publisher = metrics.NewMetricPublisher(publisher, a.metrics)
	a.logger.Info("Publishing events to NATS", "url", natsCfg.URL, "prefix", natsCfg.SubjectPrefix)
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer() {
	// Инициализируем слой сервисов (бизнес-логика)
	groupService := service.NewGroupService(a.groups, a.publisher, a.clock)
	playerService := service.NewPlayerService(a.roster, a.groups, service.NewTeamSplitter(), a.publisher, a.clock)
	statsService := service.NewStatsService(a.groups)
	authService := service.NewAuthService(a.config.JWT.Secret, a.config.JWT.GetExpiration(), a.clock)

	// Инициализируем HTTP обработчики
	authHandler := handler.NewAuthHandler(authService)
	groupHandler := handler.NewGroupHandler(groupService)
	playerHandler := handler.NewPlayerHandler(playerService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Настраиваем роутер
	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: a.config.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)
	r.Use(middleware.Metrics(a.metrics))

	// Публичные эндпоинты (без авторизации)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
	})

	// Health check для мониторинга
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			a.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Handle("/metrics", a.metrics.Handler())

	// Эндпоинты групп и состава (требуют JWT токен, если авторизация включена)
	r.Group(func(r chi.Router) {
		if a.config.Auth.Enabled {
			r.Use(middleware.AuthMiddleware(authService))
		}

		r.Route("/groups", func(r chi.Router) {
			r.Get("/", groupHandler.ListGroups)
			r.Post("/", groupHandler.CreateGroup)

			r.Route("/{group}", func(r chi.Router) {
				r.Delete("/", groupHandler.RemoveGroup)
				r.Get("/players", playerHandler.ListPlayers)
				r.Post("/players", playerHandler.AddPlayer)
				r.Delete("/players/{player}", playerHandler.RemovePlayer)
				r.Post("/shuffle", playerHandler.ShuffleTeams)
				r.Get("/stats", statsHandler.GetGroupStats)
			})
		})

		r.Get("/stats", statsHandler.GetStats)
	})

	a.router = r

	// Создаем HTTP сервер с настройками таймаутов
	addr := a.config.Server.Addr()
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// Handler возвращает настроенный роутер (используется в тестах)
func (a *App) Handler() http.Handler {
	return a.router
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Serve инициализирует приложение и обслуживает запросы до отмены ctx.
// Ресурсы освобождаются на любом пути выхода, включая ошибки инициализации.
func (a *App) Serve(ctx context.Context, shutdownTimeout time.Duration) (err error) {
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = errors.Join(err, a.Shutdown(shutdownCtx))
	}()

	if err := a.Initialize(ctx); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.Run()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		return nil
	}
}

// Shutdown корректно останавливает приложение.
// Безопасно вызывать после частичной инициализации.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	var errs []error

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown server: %w", err))
		}
	}

	// Дожидаемся отправки событий
	if a.nats != nil {
		if err := a.nats.Close(); err != nil {
			a.logger.Warn("Failed to drain NATS connection", "error", err)
		}
		a.nats = nil
	}

	// Закрываем подключения к базе данных
	if a.pool != nil {
		a.pool.Close()
	}
	if a.sqlDB != nil {
		if err := a.sqlDB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close sqlite database: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
