package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"showscout/internal/recommend"
)

// Manifest is the static agent descriptor served at /.well-known/agent.json.
type Manifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// App bundles the handler dependencies: the recommendation pipeline, the
// logger, and the static manifest.
type App struct {
	Recommender *recommend.Service
	Logger      zerolog.Logger
	Manifest    Manifest
}

func NewApp(svc *recommend.Service, logger zerolog.Logger, manifest Manifest) *App {
	return &App{Recommender: svc, Logger: logger, Manifest: manifest}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{"error": map[string]string{"code": code, "message": message}})
}
