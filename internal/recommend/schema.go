package recommend

import "time"

// OutputSchema describes the JSON contract the model has to honor. The
// prompt builder renders its example and bounds from this value and the
// validator enforces the same value, so the two cannot drift apart. The
// prompt is only a request; this schema is the actual interface.
type OutputSchema struct {
	MinYear       int
	MaxYearAhead  int
	MinRating     float64
	MaxRating     float64
	MaxListItems  int
	MaxToneLength int
	DefaultTone   string
}

// Schema is the single recommendation contract shared by the prompt builder
// and the validator.
var Schema = OutputSchema{
	MinYear:       1950,
	MaxYearAhead:  1,
	MinRating:     0,
	MaxRating:     10,
	MaxListItems:  10,
	MaxToneLength: 32,
	DefaultTone:   "balanced",
}

// MaxYear is the newest acceptable release year: shows announced for next
// year are fine, anything further out is treated as hallucinated.
func (s OutputSchema) MaxYear(now time.Time) int {
	return now.Year() + s.MaxYearAhead
}

// ExampleJSON is embedded verbatim in the prompt so the model sees the exact
// field names and nesting it must produce.
func (s OutputSchema) ExampleJSON() string {
	return `{"recommendations":[{"title":"Severance","synopsis":"Office workers have their memories surgically split between work and home.","whyItMadeTheList":"A cerebral slow-burn mystery that rewards attentive viewers.","whereToWatch":["Apple TV+"],"metadata":{"year":2022,"genres":["sci-fi","thriller"],"moods":["cerebral","tense"],"rating":8.7,"tone":"` + s.DefaultTone + `"}}]}`
}
