package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/chamcong-app/chamcong-backend-go/internal/handler/http/middleware"
	"github.com/chamcong-app/chamcong-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	JWTService        jwt.Service
	AuthHandler       AuthHandler
	ShiftHandler      ShiftHandler
	AttendanceHandler AttendanceHandler
	StatusHandler     StatusHandler
	SettingsHandler   SettingsHandler
	HolidayHandler    HolidayHandler
	ReportHandler     ReportHandler
	FrontendURL       string
	Env               string
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "chamcong"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/refresh", cfg.AuthHandler.RefreshToken)
			r.Post("/logout", cfg.AuthHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(cfg.JWTService.JWTAuth()))

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", cfg.ShiftHandler.List)
				r.Post("/", cfg.ShiftHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", cfg.ShiftHandler.Get)
					r.Put("/", cfg.ShiftHandler.Update)
					r.Delete("/", cfg.ShiftHandler.Delete)
					r.Post("/activate", cfg.ShiftHandler.Activate)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/button-state", cfg.AttendanceHandler.ButtonState)
				r.Post("/punch", cfg.AttendanceHandler.Punch)
				r.Post("/confirm-rapid-press", cfg.AttendanceHandler.ConfirmRapidPress)
				r.Get("/logs", cfg.AttendanceHandler.LogsForDate)
			})

			r.Route("/statuses", func(r chi.Router) {
				r.Get("/", cfg.StatusHandler.ListByMonth)
				r.Route("/{date}", func(r chi.Router) {
					r.Put("/", cfg.StatusHandler.SetManual)
					r.Post("/recalculate", cfg.StatusHandler.Recalculate)
					r.Put("/times", cfg.StatusHandler.UpdateTimes)
					r.Delete("/", cfg.StatusHandler.Delete)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", cfg.SettingsHandler.Get)
				r.Put("/", cfg.SettingsHandler.Update)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", cfg.HolidayHandler.List)
				r.Post("/", cfg.HolidayHandler.Add)
				r.Delete("/{date}", cfg.HolidayHandler.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/monthly", cfg.ReportHandler.Monthly)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
