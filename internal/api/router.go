package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/anvitha1105/Capstone-finalreview/internal/api/handler"
	"github.com/anvitha1105/Capstone-finalreview/internal/api/middleware"
	"github.com/anvitha1105/Capstone-finalreview/internal/metrics"
	"github.com/anvitha1105/Capstone-finalreview/internal/services/auth"
	"github.com/anvitha1105/Capstone-finalreview/internal/services/games"
	"github.com/anvitha1105/Capstone-finalreview/internal/services/scores"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	AuthService   *auth.Service
	GamesService  *games.Service
	ScoresService *scores.Service
	Metrics       *metrics.Metrics
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.Metrics)
	gamesHandler := handler.NewGamesHandler(cfg.GamesService, cfg.Metrics)
	scoresHandler := handler.NewScoresHandler(cfg.ScoresService, cfg.Metrics)

	identityMiddleware := middleware.Identity(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	metricsMiddleware := middleware.Metrics(cfg.Metrics)

	// Exposition endpoint sits outside the API prefix and its middleware
	r.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	api.Use(metricsMiddleware)

	// Credential endpoints carry no session
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	// Everything identity-gated resolves the caller up front; requests
	// without a token act as the shared guest
	me := api.PathPrefix("/auth/me").Subrouter()
	me.Use(identityMiddleware)
	me.HandleFunc("", authHandler.Me).Methods(http.MethodGet)

	gamesRoutes := api.PathPrefix("/games").Subrouter()
	gamesRoutes.Use(identityMiddleware)
	gamesRoutes.HandleFunc("/ai-image/data", gamesHandler.ImageData).Methods(http.MethodGet)
	gamesRoutes.HandleFunc("/text-ai/data", gamesHandler.TextData).Methods(http.MethodGet)
	gamesRoutes.HandleFunc("/memory/data", gamesHandler.MemoryData).Methods(http.MethodGet)
	gamesRoutes.HandleFunc("/logical-reasoning/data", gamesHandler.PuzzleData).Methods(http.MethodGet)
	gamesRoutes.HandleFunc("/logical-reasoning/submit", gamesHandler.PuzzleSubmit).Methods(http.MethodPost)
	gamesRoutes.HandleFunc("/audio-recognition/data", gamesHandler.AudioData).Methods(http.MethodGet)
	gamesRoutes.HandleFunc("/audio-recognition/submit", gamesHandler.AudioSubmit).Methods(http.MethodPost)
	gamesRoutes.HandleFunc("/creative-writing/prompt", gamesHandler.WritingPrompt).Methods(http.MethodGet)
	gamesRoutes.HandleFunc("/creative-writing/submit", gamesHandler.WritingSubmit).Methods(http.MethodPost)

	scoresRoutes := api.PathPrefix("/scores").Subrouter()
	scoresRoutes.Use(identityMiddleware)
	scoresRoutes.HandleFunc("", scoresHandler.Submit).Methods(http.MethodPost)

	statsRoutes := api.PathPrefix("/stats").Subrouter()
	statsRoutes.Use(identityMiddleware)
	statsRoutes.HandleFunc("/user", scoresHandler.UserStats).Methods(http.MethodGet)

	// Leaderboard and health need no identity
	api.HandleFunc("/leaderboard", scoresHandler.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
