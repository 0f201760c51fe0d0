package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"showscout/internal/domain"
)

type invokeRequest struct {
	Input domain.RecommendationRequest `json:"input"`
}

type invokeResponse struct {
	Output domain.RecommendationResponse `json:"output"`
	Usage  usagePayload                  `json:"usage"`
	Model  string                        `json:"model,omitempty"`
}

type usagePayload struct {
	TotalTokens int `json:"total_tokens"`
}

// Invoke is the single entrypoint: POST /entrypoints/recommend/invoke.
func (a *App) Invoke(w http.ResponseWriter, r *http.Request) {
	var req invokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	result, err := a.Recommender.Recommend(r.Context(), req.Input)
	if err != nil {
		a.pipelineError(w, err)
		return
	}
	a.json(w, http.StatusOK, invokeResponse{
		Output: result.Response,
		Usage:  usagePayload{TotalTokens: result.Usage.TotalTokens},
		Model:  result.Model,
	})
}

// pipelineError maps the pipeline's error taxonomy onto HTTP statuses. Any
// non-2xx means "no recommendations produced"; retrying or adjusting the
// filters is up to the caller.
func (a *App) pipelineError(w http.ResponseWriter, err error) {
	var malformed *domain.MalformedOutputError
	var schema *domain.SchemaViolationError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		a.error(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, domain.ErrNotConfigured):
		a.error(w, http.StatusServiceUnavailable, "not_configured", "llm provider is not configured")
	case errors.Is(err, domain.ErrEmptyResult):
		a.error(w, http.StatusUnprocessableEntity, "empty_result", err.Error())
	case errors.As(err, &malformed):
		a.error(w, http.StatusBadGateway, "malformed_output", err.Error())
	case errors.As(err, &schema):
		a.error(w, http.StatusBadGateway, "schema_violation", err.Error())
	default:
		a.error(w, http.StatusBadGateway, "provider_error", "llm call failed")
	}
}
