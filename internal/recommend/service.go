// Package recommend implements the request pipeline: normalize filters,
// build the model prompt, invoke the gateway, validate the structured
// output, and assemble the response envelope.
package recommend

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"showscout/internal/domain"
	"showscout/internal/middleware"
	"showscout/internal/providers/llm"
)

// DefaultBaseline is the recommendation count used when both the request
// and the configuration stay silent.
const DefaultBaseline = 5

type Options struct {
	// Completer may be nil when no provider credential is configured; every
	// call then fails with domain.ErrNotConfigured before any network I/O.
	Completer llm.Completer
	Baseline  int
	Logger    zerolog.Logger
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

// Service runs the whole pipeline for one request. It holds only read-only
// state, so a single instance serves concurrent requests.
type Service struct {
	llm      llm.Completer
	baseline int
	logger   zerolog.Logger
	now      func() time.Time
}

// Result pairs the response envelope with the call's usage accounting, which
// the HTTP layer reports alongside the output.
type Result struct {
	Response domain.RecommendationResponse
	Model    string
	Usage    llm.Usage
}

func NewService(opts Options) *Service {
	baseline := opts.Baseline
	if baseline <= 0 {
		baseline = DefaultBaseline
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		llm:      opts.Completer,
		baseline: ClampCount(baseline),
		logger:   opts.Logger,
		now:      now,
	}
}

// Recommend executes one request end to end. Every stage failure aborts the
// call; no partial response and no fallback list is ever produced.
func (s *Service) Recommend(ctx context.Context, req domain.RecommendationRequest) (*Result, error) {
	count, err := ValidateRequest(req, s.baseline)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	filters := NormalizeFilters(req)
	prompt := BuildPrompt(filters, count)
	if s.llm == nil {
		return nil, s.fail(ctx, domain.ErrNotConfigured)
	}
	completion, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	recs, err := ParseRecommendations(completion.Text, count, s.now())
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	total := len(recs)
	// TotalMatches reports the batch size before any truncation.
	if len(recs) > count {
		recs = recs[:count]
	}
	return &Result{
		Response: domain.RecommendationResponse{
			Recommendations: recs,
			TotalMatches:    total,
			FiltersApplied:  filters,
			FallbackApplied: false,
		},
		Model: completion.Model,
		Usage: completion.Usage,
	}, nil
}

func (s *Service) fail(ctx context.Context, err error) error {
	s.logger.Error().
		Err(err).
		Str("request_id", middleware.RequestIDFromContext(ctx)).
		Msg("recommendation pipeline failed")
	return err
}
