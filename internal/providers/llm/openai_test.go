package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"showscout/internal/domain"
)

func TestOpenAICompleteSuccess(t *testing.T) {
	t.Parallel()
	var captured *http.Request
	client := NewOpenAIClient(OpenAIOptions{
		APIKey:       "dummy",
		Organization: "org-123",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			captured = r
			return jsonResponse(http.StatusOK, `{
				"model": "gpt-4o-mini-2024-07-18",
				"choices": [{"message": {"content": "{\"recommendations\": []}"}}],
				"usage": {"prompt_tokens": 80, "completion_tokens": 40, "total_tokens": 120}
			}`), nil
		})},
	})
	completion, err := client.Complete(context.Background(), "recommend shows")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if completion.Text != `{"recommendations": []}` {
		t.Fatalf("Text = %q", completion.Text)
	}
	if completion.Usage.TotalTokens != 120 {
		t.Fatalf("TotalTokens = %d, want 120", completion.Usage.TotalTokens)
	}
	if completion.Model != "gpt-4o-mini-2024-07-18" {
		t.Fatalf("Model = %q", completion.Model)
	}
	if got := captured.Header.Get("Authorization"); got != "Bearer dummy" {
		t.Fatalf("Authorization = %q", got)
	}
	if got := captured.Header.Get("OpenAI-Organization"); got != "org-123" {
		t.Fatalf("OpenAI-Organization = %q", got)
	}
	if !strings.HasSuffix(captured.URL.Path, "/chat/completions") {
		t.Fatalf("unexpected path %q", captured.URL.Path)
	}
}

func TestOpenAICompleteNotConfigured(t *testing.T) {
	t.Parallel()
	client := NewOpenAIClient(OpenAIOptions{
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			t.Fatal("no network call expected without a credential")
			return nil, nil
		})},
	})
	_, err := client.Complete(context.Background(), "prompt")
	if !errors.Is(err, domain.ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestOpenAICompleteDefaultsModel(t *testing.T) {
	t.Parallel()
	client := NewOpenAIClient(OpenAIOptions{APIKey: "dummy"})
	if client.model != openAIDefaultModel {
		t.Fatalf("model = %q, want %q", client.model, openAIDefaultModel)
	}
}

func TestOpenAICompleteStatusError(t *testing.T) {
	t.Parallel()
	client := NewOpenAIClient(OpenAIOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusUnauthorized, `{}`), nil
		})},
	})
	_, err := client.Complete(context.Background(), "prompt")
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Fatalf("err = %v, want status surfaced", err)
	}
}

func TestOpenAICompleteEmptyChoices(t *testing.T) {
	t.Parallel()
	client := NewOpenAIClient(OpenAIOptions{
		APIKey: "dummy",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"choices": []}`), nil
		})},
	})
	if _, err := client.Complete(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for empty choices, got nil")
	}
}
