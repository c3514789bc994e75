package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/homeledger/homeledger/internal/expense"
	"github.com/homeledger/homeledger/internal/income"
	"github.com/homeledger/homeledger/internal/projection"
	"github.com/homeledger/homeledger/internal/siteconfig"
	"github.com/homeledger/homeledger/internal/transport/middleware"
	"github.com/homeledger/homeledger/internal/transport/swagger"
)

type Handlers struct {
	Income     *income.Handler
	Expense    *expense.Handler
	Projection *projection.Handler
	SiteConfig *siteconfig.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, driver string, handlers Handlers, allowedOrigins []string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db, driver)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if handlers.Income != nil {
			r.Route("/incomes", func(ir chi.Router) {
				ir.Post("/", handlers.Income.CreateIncome)
				ir.Get("/", handlers.Income.ListIncomes)
				ir.Get("/{id}", handlers.Income.GetIncome)
				ir.Patch("/{id}", handlers.Income.UpdateIncome)
				ir.Delete("/{id}", handlers.Income.DeleteIncome)
			})
		}

		if handlers.Expense != nil {
			r.Route("/expenses", func(er chi.Router) {
				er.Post("/", handlers.Expense.CreateExpense)
				er.Get("/", handlers.Expense.ListExpenses)
				er.Get("/{id}", handlers.Expense.GetExpense)
				er.Patch("/{id}", handlers.Expense.UpdateExpense)
				er.Delete("/{id}", handlers.Expense.DeleteExpense)
			})
			r.Patch("/installments/{id}", handlers.Expense.UpdateInstallmentStatus)
		}

		if handlers.Projection != nil {
			r.Route("/projection", func(pr chi.Router) {
				pr.Get("/", handlers.Projection.GetProjection)
				pr.Get("/summary", handlers.Projection.GetSummary)
				pr.Get("/overrides", handlers.Projection.ListOverrides)
				pr.Put("/{year}/{month}", handlers.Projection.SaveOverride)
				pr.Delete("/{year}/{month}", handlers.Projection.DeleteOverride)
			})
		}

		if handlers.SiteConfig != nil {
			r.Route("/config", func(cr chi.Router) {
				cr.Get("/", handlers.SiteConfig.ListConfig)
				cr.Get("/{key}", handlers.SiteConfig.GetConfig)
				cr.Patch("/", handlers.SiteConfig.UpdateConfig)
			})
		}
	})
}
