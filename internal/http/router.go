package http

import (
	"net/http"

	"jotbot/internal/bot"
	"jotbot/internal/config"
	"jotbot/internal/http/handler"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(cfg config.Config, svc *bot.Service, scanner *bot.Scanner) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "X-Scan-Secret"},
			AllowCredentials: cfg.CORSAllowCredentials,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	wh := &handler.WebhookHandler{Svc: svc}
	r.Post("/webhook", wh.Receive)

	sh := &handler.ScanHandler{Scanner: scanner, Secret: cfg.ScanSecret}
	r.Post("/scan", sh.Trigger)

	return r
}
