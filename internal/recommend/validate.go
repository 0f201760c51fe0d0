package recommend

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"showscout/internal/domain"
)

// Wire shapes for the model's raw output. Field names mirror ExampleJSON.
type recommendationsPayload struct {
	Recommendations []recommendationPayload `json:"recommendations"`
}

type recommendationPayload struct {
	Title            string          `json:"title"`
	Synopsis         string          `json:"synopsis"`
	WhyItMadeTheList string          `json:"whyItMadeTheList"`
	WhereToWatch     []string        `json:"whereToWatch"`
	Metadata         metadataPayload `json:"metadata"`
}

type metadataPayload struct {
	Year   int      `json:"year"`
	Genres []string `json:"genres"`
	Moods  []string `json:"moods"`
	Rating float64  `json:"rating"`
	Tone   string   `json:"tone"`
}

// ParseRecommendations turns raw model text into validated, normalized
// recommendations or fails. Markdown fences and surrounding prose are
// stripped before parsing; everything after that is strict. Any schema
// violation rejects the whole batch.
func ParseRecommendations(raw string, requested int, now time.Time) ([]domain.Recommendation, error) {
	cleaned := extractJSONFragment(raw)
	if cleaned == "" || !json.Valid([]byte(cleaned)) {
		return nil, &domain.MalformedOutputError{Raw: raw, Err: errors.New("output is not valid JSON")}
	}
	var payload recommendationsPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		// Parseable JSON that does not fit the wire shape is a schema
		// problem, not a malformed-output problem.
		return nil, &domain.SchemaViolationError{Violations: []string{err.Error()}}
	}
	if len(payload.Recommendations) == 0 {
		return nil, domain.ErrEmptyResult
	}
	if len(payload.Recommendations) > requested {
		return nil, &domain.SchemaViolationError{Violations: []string{
			fmt.Sprintf("recommendations has %d entries, requested at most %d", len(payload.Recommendations), requested),
		}}
	}
	var violations []string
	for i, rec := range payload.Recommendations {
		violations = append(violations, checkRecommendation(i, rec, now)...)
	}
	if len(violations) > 0 {
		return nil, &domain.SchemaViolationError{Violations: violations}
	}
	out := make([]domain.Recommendation, 0, len(payload.Recommendations))
	for _, rec := range payload.Recommendations {
		out = append(out, normalizeRecommendation(toRecommendation(rec)))
	}
	return out, nil
}

func checkRecommendation(index int, rec recommendationPayload, now time.Time) []string {
	var violations []string
	report := func(format string, args ...any) {
		violations = append(violations, fmt.Sprintf("recommendations[%d]: ", index)+fmt.Sprintf(format, args...))
	}
	if strings.TrimSpace(rec.Title) == "" {
		report("title is required")
	}
	if strings.TrimSpace(rec.Synopsis) == "" {
		report("synopsis is required")
	}
	if strings.TrimSpace(rec.WhyItMadeTheList) == "" {
		report("whyItMadeTheList is required")
	}
	if len(rec.WhereToWatch) > Schema.MaxListItems {
		report("whereToWatch has %d entries, max %d", len(rec.WhereToWatch), Schema.MaxListItems)
	}
	if len(rec.Metadata.Genres) > Schema.MaxListItems {
		report("metadata.genres has %d entries, max %d", len(rec.Metadata.Genres), Schema.MaxListItems)
	}
	if len(rec.Metadata.Moods) > Schema.MaxListItems {
		report("metadata.moods has %d entries, max %d", len(rec.Metadata.Moods), Schema.MaxListItems)
	}
	if rec.Metadata.Year < Schema.MinYear || rec.Metadata.Year > Schema.MaxYear(now) {
		report("metadata.year %d is outside [%d, %d]", rec.Metadata.Year, Schema.MinYear, Schema.MaxYear(now))
	}
	if rec.Metadata.Rating < Schema.MinRating || rec.Metadata.Rating > Schema.MaxRating {
		report("metadata.rating %v is outside [%v, %v]", rec.Metadata.Rating, Schema.MinRating, Schema.MaxRating)
	}
	if utf8.RuneCountInString(strings.TrimSpace(rec.Metadata.Tone)) > Schema.MaxToneLength {
		report("metadata.tone exceeds %d characters", Schema.MaxToneLength)
	}
	return violations
}

func toRecommendation(rec recommendationPayload) domain.Recommendation {
	return domain.Recommendation{
		Title:            rec.Title,
		Synopsis:         rec.Synopsis,
		WhyItMadeTheList: rec.WhyItMadeTheList,
		WhereToWatch:     rec.WhereToWatch,
		Metadata: domain.RecommendationMetadata{
			Year:   rec.Metadata.Year,
			Genres: rec.Metadata.Genres,
			Moods:  rec.Metadata.Moods,
			Rating: rec.Metadata.Rating,
			Tone:   rec.Metadata.Tone,
		},
	}
}

// normalizeRecommendation canonicalizes one validated recommendation.
// Idempotent: applying it twice yields the same value as once.
func normalizeRecommendation(rec domain.Recommendation) domain.Recommendation {
	rec.Title = strings.TrimSpace(rec.Title)
	rec.Synopsis = strings.TrimSpace(rec.Synopsis)
	rec.WhyItMadeTheList = strings.TrimSpace(rec.WhyItMadeTheList)
	rec.WhereToWatch = compactList(rec.WhereToWatch)
	rec.Metadata.Genres = compactList(rec.Metadata.Genres)
	rec.Metadata.Moods = compactList(rec.Metadata.Moods)
	rec.Metadata.Rating = math.Round(rec.Metadata.Rating*10) / 10
	rec.Metadata.Tone = strings.TrimSpace(rec.Metadata.Tone)
	if rec.Metadata.Tone == "" {
		rec.Metadata.Tone = Schema.DefaultTone
	}
	return rec
}

// compactList trims entries and drops the ones that end up empty, keeping
// the original order.
func compactList(items []string) []string {
	var result []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		result = append(result, item)
	}
	return result
}

func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
