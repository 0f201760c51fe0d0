package recommend

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"showscout/internal/domain"
)

// BuildPrompt renders the full model instruction for one request. Pure
// function of (filters, count): identical inputs produce byte-identical
// text.
func BuildPrompt(filters domain.NormalizedFilters, count int) string {
	caser := cases.Title(language.English)
	sb := &strings.Builder{}
	sb.WriteString("You are a television concierge recommending TV shows. Viewer preferences: ")
	fmt.Fprintf(sb, "genre=%s, mood=%s, platform=%s, include classics=%t. ",
		restate(caser, filters.Genre),
		restate(caser, filters.Mood),
		restate(caser, filters.Platform),
		filters.IncludeClassics)
	fmt.Fprintf(sb, "Return exactly %d recommendations, never more than %d. ", count, count)
	sb.WriteString("Respond strictly with JSON matching this shape: ")
	sb.WriteString(Schema.ExampleJSON())
	fmt.Fprintf(sb, ". Every metadata.year must be %d or later and no further out than next calendar year, rating must be between %.0f and %.0f with one decimal place, tone at most %d characters, and no list may exceed %d entries. ",
		Schema.MinYear, Schema.MinRating, Schema.MaxRating, Schema.MaxToneLength, Schema.MaxListItems)
	sb.WriteString(`If you cannot comply, return {"recommendations": []}. Return JSON only, no commentary.`)
	return sb.String()
}

// restate renders one filter for the instruction text, title-cased for
// readability, with the literal "any" standing in for an absent filter.
func restate(caser cases.Caser, v *string) string {
	if v == nil {
		return "any"
	}
	return caser.String(*v)
}
