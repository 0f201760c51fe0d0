package recommend

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"showscout/internal/domain"
)

var testNow = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

func validItemJSON(title string) string {
	return fmt.Sprintf(`{
		"title": %q,
		"synopsis": "A show about things.",
		"whyItMadeTheList": "Matches the requested mood.",
		"whereToWatch": ["Netflix"],
		"metadata": {"year": 2020, "genres": ["drama"], "moods": ["tense"], "rating": 8.2, "tone": "dark"}
	}`, title)
}

func batchJSON(items ...string) string {
	return `{"recommendations": [` + strings.Join(items, ",") + `]}`
}

func TestParseRecommendationsHappyPath(t *testing.T) {
	t.Parallel()
	raw := batchJSON(validItemJSON("First"), validItemJSON("Second"))
	recs, err := ParseRecommendations(raw, 3, testNow)
	if err != nil {
		t.Fatalf("ParseRecommendations returned error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	if recs[0].Title != "First" || recs[1].Title != "Second" {
		t.Fatalf("order not preserved: %q, %q", recs[0].Title, recs[1].Title)
	}
}

func TestParseRecommendationsStripsCodeFences(t *testing.T) {
	t.Parallel()
	raw := "```json\n" + batchJSON(validItemJSON("Fenced")) + "\n```"
	recs, err := ParseRecommendations(raw, 1, testNow)
	if err != nil {
		t.Fatalf("ParseRecommendations returned error: %v", err)
	}
	if recs[0].Title != "Fenced" {
		t.Fatalf("Title = %q, want Fenced", recs[0].Title)
	}
}

func TestParseRecommendationsStripsSurroundingProse(t *testing.T) {
	t.Parallel()
	raw := "Sure, here you go: " + batchJSON(validItemJSON("Wrapped")) + " Hope that helps!"
	recs, err := ParseRecommendations(raw, 1, testNow)
	if err != nil {
		t.Fatalf("ParseRecommendations returned error: %v", err)
	}
	if recs[0].Title != "Wrapped" {
		t.Fatalf("Title = %q, want Wrapped", recs[0].Title)
	}
}

func TestParseRecommendationsMalformedOutput(t *testing.T) {
	t.Parallel()
	raw := `{"recommendations": [` // truncated JSON
	_, err := ParseRecommendations(raw, 3, testNow)
	var malformed *domain.MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("err = %v, want MalformedOutputError", err)
	}
	if malformed.Raw != raw {
		t.Fatalf("Raw = %q, want original text", malformed.Raw)
	}
}

func TestParseRecommendationsEmptyResult(t *testing.T) {
	t.Parallel()
	_, err := ParseRecommendations(`{"recommendations": []}`, 3, testNow)
	if !errors.Is(err, domain.ErrEmptyResult) {
		t.Fatalf("err = %v, want ErrEmptyResult", err)
	}
}

func TestParseRecommendationsOverCount(t *testing.T) {
	t.Parallel()
	raw := batchJSON(validItemJSON("A"), validItemJSON("B"), validItemJSON("C"))
	_, err := ParseRecommendations(raw, 2, testNow)
	var schema *domain.SchemaViolationError
	if !errors.As(err, &schema) {
		t.Fatalf("err = %v, want SchemaViolationError", err)
	}
}

func TestParseRecommendationsTypeMismatchIsSchemaViolation(t *testing.T) {
	t.Parallel()
	raw := `{"recommendations": [{"title": "X", "synopsis": "s", "whyItMadeTheList": "w",
		"whereToWatch": [], "metadata": {"year": "nineteen-ninety", "genres": [], "moods": [], "rating": 5, "tone": "flat"}}]}`
	_, err := ParseRecommendations(raw, 1, testNow)
	var schema *domain.SchemaViolationError
	if !errors.As(err, &schema) {
		t.Fatalf("err = %v, want SchemaViolationError", err)
	}
}

func TestParseRecommendationsFieldViolations(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		raw  string
	}{
		{name: "year too old", raw: batchJSON(strings.Replace(validItemJSON("X"), `"year": 2020`, `"year": 1949`, 1))},
		{name: "year too far out", raw: batchJSON(strings.Replace(validItemJSON("X"), `"year": 2020`, `"year": 2028`, 1))},
		{name: "rating above ten", raw: batchJSON(strings.Replace(validItemJSON("X"), `"rating": 8.2`, `"rating": 10.5`, 1))},
		{name: "rating negative", raw: batchJSON(strings.Replace(validItemJSON("X"), `"rating": 8.2`, `"rating": -0.1`, 1))},
		{name: "blank title", raw: batchJSON(strings.Replace(validItemJSON("X"), `"title": "X"`, `"title": "   "`, 1))},
		{name: "tone too long", raw: batchJSON(strings.Replace(validItemJSON("X"), `"tone": "dark"`, `"tone": "`+strings.Repeat("x", 33)+`"`, 1))},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseRecommendations(tc.raw, 3, testNow)
			var schema *domain.SchemaViolationError
			if !errors.As(err, &schema) {
				t.Fatalf("err = %v, want SchemaViolationError", err)
			}
		})
	}
}

func TestParseRecommendationsNormalizes(t *testing.T) {
	t.Parallel()
	raw := `{"recommendations": [{
		"title": "  Severance  ",
		"synopsis": " split memories ",
		"whyItMadeTheList": " fits ",
		"whereToWatch": [" Apple TV+ ", "", "  "],
		"metadata": {"year": 2022, "genres": ["sci-fi", " "], "moods": ["cerebral"], "rating": 8.649, "tone": "  "}
	}]}`
	recs, err := ParseRecommendations(raw, 1, testNow)
	if err != nil {
		t.Fatalf("ParseRecommendations returned error: %v", err)
	}
	rec := recs[0]
	if rec.Title != "Severance" {
		t.Fatalf("Title = %q", rec.Title)
	}
	if len(rec.WhereToWatch) != 1 || rec.WhereToWatch[0] != "Apple TV+" {
		t.Fatalf("WhereToWatch = %#v", rec.WhereToWatch)
	}
	if len(rec.Metadata.Genres) != 1 || rec.Metadata.Genres[0] != "sci-fi" {
		t.Fatalf("Genres = %#v", rec.Metadata.Genres)
	}
	if rec.Metadata.Rating != 8.6 {
		t.Fatalf("Rating = %v, want 8.6", rec.Metadata.Rating)
	}
	if rec.Metadata.Tone != Schema.DefaultTone {
		t.Fatalf("Tone = %q, want %q", rec.Metadata.Tone, Schema.DefaultTone)
	}
}

func TestNormalizeRecommendationIsIdempotent(t *testing.T) {
	t.Parallel()
	rec := domain.Recommendation{
		Title:            "  The Wire ",
		Synopsis:         " Baltimore ",
		WhyItMadeTheList: " essential ",
		WhereToWatch:     []string{" HBO ", ""},
		Metadata: domain.RecommendationMetadata{
			Year:   2002,
			Genres: []string{"crime", " "},
			Moods:  []string{"gritty"},
			Rating: 9.2499,
			Tone:   "",
		},
	}
	once := normalizeRecommendation(rec)
	twice := normalizeRecommendation(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalization not idempotent:\nonce:  %#v\ntwice: %#v", once, twice)
	}
}
