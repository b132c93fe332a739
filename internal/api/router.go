package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/rendi001-code/projekrela/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rendi001-code/projekrela/internal/api/handlers"
	"github.com/rendi001-code/projekrela/internal/api/middleware"
	"github.com/rendi001-code/projekrela/internal/config"
	"github.com/rs/cors"
)

const maxJSONBody = 10 << 10 // 10kb, matches the previous deployment

func SetupRouter(h *handlers.Handler) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	mainMux.HandleFunc("/register", middleware.MaxBytes(maxJSONBody, h.Register))
	mainMux.HandleFunc("/login", middleware.MaxBytes(maxJSONBody, h.Login))
	mainMux.HandleFunc("/send-message", h.SendMessage)
	mainMux.HandleFunc("/messages", h.GetMessages)
	mainMux.HandleFunc("/ask-rela-ai", middleware.MaxBytes(maxJSONBody, h.AskRelaAI))

	googleMux := http.NewServeMux()
	googleMux.HandleFunc("/login", h.HandleGoogleLogin)
	googleMux.HandleFunc("/callback", h.HandleGoogleCallback)

	mainMux.Handle("/auth/google/",
		http.StripPrefix("/auth/google", googleMux),
	)

	// Static assets and uploaded attachments
	mainMux.Handle("/", http.FileServer(http.Dir(config.Envs.PublicDir)))

	// ---------- PROTECTED ROUTES ----------
	protectedMux := http.NewServeMux()
	protectedMux.HandleFunc("/me", h.Me)
	protectedMux.HandleFunc("/auth/logout", h.Logout)

	mainMux.Handle("/api/v1/",
		http.StripPrefix(
			"/api/v1",
			middleware.AuthMiddleware(protectedMux),
		),
	)

	log.Println("Router initialized")
	limiter := middleware.NewRateLimiter(100, 15*time.Minute)
	handler := c.Handler(mainMux)
	handler = middleware.SecureHeaders(handler)
	handler = limiter.Middleware(handler)
	handler = middleware.Logger(handler)
	return handler
}
