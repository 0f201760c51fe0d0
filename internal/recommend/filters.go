package recommend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"showscout/internal/domain"
)

const (
	// MinCount and MaxCount bound how many recommendations one call may ask
	// for, whether the count comes from the request or from configuration.
	MinCount = 1
	MaxCount = 10
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest checks the raw request shape and resolves the effective
// recommendation count. Whitespace-only filters count as absent; at least
// one of genre, mood or platform must remain.
func ValidateRequest(req domain.RecommendationRequest, baseline int) (int, error) {
	trimmed := req
	trimmed.Genre = trimField(req.Genre)
	trimmed.Mood = trimField(req.Mood)
	trimmed.Platform = trimField(req.Platform)
	if trimmed.Genre == nil && trimmed.Mood == nil && trimmed.Platform == nil {
		return 0, fmt.Errorf("%w: at least one of genre, mood or platform is required", domain.ErrInvalidRequest)
	}
	if err := validate.Struct(trimmed); err != nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidRequest, describeFieldErrors(err))
	}
	if req.NumberOfRecommendations != nil {
		return *req.NumberOfRecommendations, nil
	}
	return ClampCount(baseline), nil
}

// NormalizeFilters derives the canonical filter set: trimmed, lower-cased,
// blank fields collapsed to nil. Total function, no failure modes.
func NormalizeFilters(req domain.RecommendationRequest) domain.NormalizedFilters {
	filters := domain.NormalizedFilters{IncludeClassics: true}
	if req.IncludeClassics != nil {
		filters.IncludeClassics = *req.IncludeClassics
	}
	filters.Genre = normalizeField(req.Genre)
	filters.Mood = normalizeField(req.Mood)
	filters.Platform = normalizeField(req.Platform)
	return filters
}

// ClampCount forces a configured count into the allowed window.
func ClampCount(count int) int {
	if count < MinCount {
		return MinCount
	}
	if count > MaxCount {
		return MaxCount
	}
	return count
}

func trimField(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

func normalizeField(v *string) *string {
	t := trimField(v)
	if t == nil {
		return nil
	}
	lowered := strings.ToLower(*t)
	return &lowered
}

func describeFieldErrors(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := jsonFieldName(fe.Field())
		switch fe.Tag() {
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s validation", field, fe.Tag()))
		}
	}
	return strings.Join(parts, ", ")
}

func jsonFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}
