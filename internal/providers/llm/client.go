// Package llm wraps the external model providers behind a single
// prompt-in, JSON-string-out exchange. Callers get the raw text plus the
// call's token accounting; interpreting the text is the pipeline's job.
package llm

import "context"

// Usage is the per-call token accounting reported by the provider. It is
// part of the completion value, never accumulated on the client, so figures
// cannot bleed between concurrent requests.
type Usage struct {
	PromptTokens int
	OutputTokens int
	TotalTokens  int
}

// Completion is the result of one exchange.
type Completion struct {
	Text  string
	Model string
	Usage Usage
}

// Completer is the contract the pipeline depends on: exactly one attempt,
// no retry, any transport or provider error propagates unmodified. The
// single-exchange shape leaves room to swap in a multi-step pipeline later
// without touching callers.
type Completer interface {
	Complete(ctx context.Context, prompt string) (*Completion, error)
}
