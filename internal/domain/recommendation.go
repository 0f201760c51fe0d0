package domain

// RecommendationRequest is the raw, untrusted input for one invoke call. The
// three filter fields are optional but at least one must carry a value.
type RecommendationRequest struct {
	Genre                   *string `json:"genre,omitempty" validate:"omitempty,min=1,max=32"`
	Mood                    *string `json:"mood,omitempty" validate:"omitempty,min=1,max=32"`
	Platform                *string `json:"platform,omitempty" validate:"omitempty,min=1,max=32"`
	IncludeClassics         *bool   `json:"includeClassics,omitempty"`
	NumberOfRecommendations *int    `json:"numberOfRecommendations,omitempty" validate:"omitempty,min=1,max=10"`
}

// NormalizedFilters is the canonical filter set derived exactly once per
// request. Absent filters stay nil and are rendered as JSON null when echoed.
type NormalizedFilters struct {
	Genre           *string `json:"genre"`
	Mood            *string `json:"mood"`
	Platform        *string `json:"platform"`
	IncludeClassics bool    `json:"includeClassics"`
}

// RecommendationMetadata carries the structured facts about one show.
type RecommendationMetadata struct {
	Year   int      `json:"year"`
	Genres []string `json:"genres"`
	Moods  []string `json:"moods"`
	Rating float64  `json:"rating"`
	Tone   string   `json:"tone"`
}

// Recommendation is a single validated, normalized show suggestion. It only
// ever exists for the duration of one request.
type Recommendation struct {
	Title            string                 `json:"title"`
	Synopsis         string                 `json:"synopsis"`
	WhyItMadeTheList string                 `json:"whyItMadeTheList"`
	WhereToWatch     []string               `json:"whereToWatch"`
	Metadata         RecommendationMetadata `json:"metadata"`
}

// RecommendationResponse is the envelope returned to the caller.
// FallbackApplied is reserved for a local non-LLM path that does not exist
// yet; it is always false.
type RecommendationResponse struct {
	Recommendations []Recommendation  `json:"recommendations"`
	TotalMatches    int               `json:"totalMatches"`
	FiltersApplied  NormalizedFilters `json:"filtersApplied"`
	FallbackApplied bool              `json:"fallbackApplied"`
}
