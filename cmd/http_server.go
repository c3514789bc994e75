package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	gormSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/homeledger/homeledger/internal"
	"github.com/homeledger/homeledger/internal/core/events"
	"github.com/homeledger/homeledger/internal/expense"
	expensePostgres "github.com/homeledger/homeledger/internal/expense/postgres"
	"github.com/homeledger/homeledger/internal/income"
	incomePostgres "github.com/homeledger/homeledger/internal/income/postgres"
	"github.com/homeledger/homeledger/internal/projection"
	projectionPostgres "github.com/homeledger/homeledger/internal/projection/postgres"
	"github.com/homeledger/homeledger/internal/siteconfig"
	siteconfigPostgres "github.com/homeledger/homeledger/internal/siteconfig/postgres"
	"github.com/homeledger/homeledger/internal/transport"
	"github.com/homeledger/homeledger/internal/transport/rest"
	"github.com/homeledger/homeledger/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	GormDB   *gorm.DB
	SQLDB    *sql.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Bus      *events.EventBus
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.SQLDB, deps.Config.Database.Driver,
		deps.Handlers, deps.Config.Server.Origins(), deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.SQLDB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	gormDB, sqlDB, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	bus := events.NewEventBus(lg)
	registerActivityLog(bus, lg)

	baseHandler := transport.NewBaseHandler(lg)

	incomeRepo := incomePostgres.NewIncomeRepository(gormDB)
	incomeService := income.NewService(incomeRepo, bus, lg)

	expenseRepo := expensePostgres.NewExpenseRepository(gormDB)
	expenseService := expense.NewService(expenseRepo, bus, lg)

	overrideRepo := projectionPostgres.NewOverrideRepository(gormDB)
	projectionService := projection.NewService(
		incomeRepo, expenseRepo, overrideRepo, bus, lg,
		config.Projection.Horizon(), config.Projection.MaxHorizon())

	configRepo := siteconfigPostgres.NewConfigRepository(gormDB)
	configService := siteconfig.NewService(configRepo, lg)

	return &Dependencies{
		Config: config,
		GormDB: gormDB,
		SQLDB:  sqlDB,
		Router: chi.NewRouter(),
		Handlers: rest.Handlers{
			Income:     income.NewHandler(baseHandler, incomeService),
			Expense:    expense.NewHandler(baseHandler, expenseService),
			Projection: projection.NewHandler(baseHandler, projectionService),
			SiteConfig: siteconfig.NewHandler(baseHandler, configService),
		},
		Bus:    bus,
		Logger: lg,
	}, nil
}

// initDB opens the database by configured driver. Postgres goes through sqlx
// on the pgx stdlib driver with GORM layered on the same connection; sqlite
// is opened by GORM directly and the underlying *sql.DB is reused for health
// checks.
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, *sql.DB, error) {
	if cfg.IsSQLite() {
		gormDB, err := gorm.Open(gormSqlite.Open(cfg.Source), &gorm.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to access sqlite connection: %w", err)
		}
		if err := sqlDB.Ping(); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("failed to ping sqlite database: %w", err)
		}
		return gormDB, sqlDB, nil
	}

	dbConn, err := sqlx.Connect("pgx", cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: dbConn.DB}), &gorm.Config{})
	if err != nil {
		_ = dbConn.Close()
		return nil, nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return gormDB, dbConn.DB, nil
}

// registerActivityLog subscribes a logging consumer to every domain event, so
// the server journal doubles as a household activity feed.
func registerActivityLog(bus *events.EventBus, lg *slog.Logger) {
	logEvent := func(ctx context.Context, event events.Event) error {
		lg.Info("activity",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"data", event.Payload())
		return nil
	}

	for _, eventType := range []string{
		events.EventExpenseCreated,
		events.EventExpenseDeleted,
		events.EventInstallmentStatusChanged,
		events.EventIncomeChanged,
		events.EventOverrideSaved,
	} {
		bus.Subscribe(eventType, logEvent)
	}
}
