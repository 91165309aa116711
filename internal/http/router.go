package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/MrJamesThe3rd/nomina/internal/http/advance"
	"github.com/MrJamesThe3rd/nomina/internal/http/employee"
	"github.com/MrJamesThe3rd/nomina/internal/http/importsheet"
	"github.com/MrJamesThe3rd/nomina/internal/http/novelty"
	"github.com/MrJamesThe3rd/nomina/internal/http/payroll"
	"github.com/MrJamesThe3rd/nomina/internal/http/settings"
)

type Handlers struct {
	Employees *employee.Handler
	Novelties *novelty.Handler
	Advances  *advance.Handler
	Settings  *settings.Handler
	Payroll   *payroll.Handler
	Import    *importsheet.Handler
}

func New(logger *slog.Logger, allowedOrigins []string, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	router.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	router.Use(middleware.CleanPath)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/health"))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Employees.Routes(r)
		})

		r.Route("/novelties", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Novelties.Routes(r)
		})

		r.Route("/advances", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Advances.Routes(r)
		})

		r.Route("/settings/rates", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Settings.Routes(r)
		})

		r.Route("/payroll", h.Payroll.Routes)
		r.Route("/import", h.Import.Routes)
	})

	return router
}

// NewLogger builds the JSON logger shared by the request logger and the
// rest of the process.
func NewLogger(appName string, level slog.Level) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(slog.String("app", appName))
}
