package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicQuestionJSON = `{"questions":[{"id":1,"type":"MCQ","question":"What does the select statement do?"}]}`

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{
		client: &client,
		model:  "claude-haiku-4-5",
	}
}

func anthropicMessageBody(text string) map[string]any {
	return map[string]any{
		"id":   "msg_test",
		"type": "message",
		"role": "assistant",
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
		"model":       "claude-haiku-4-5",
		"stop_reason": "end_turn",
		"usage": map[string]any{
			"input_tokens":  220,
			"output_tokens": 95,
		},
	}
}

func TestAnthropicGenerate(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessageBody(anthropicQuestionJSON))
	}

	p := newTestAnthropicProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "You write technical interview questions.",
		Messages:  []Message{{Role: RoleUser, Content: "5 questions on Goroutines"}},
		MaxTokens: 2048,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != anthropicQuestionJSON {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 220 || resp.Usage.OutputTokens != 95 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestAnthropicAppliesPurposeBudget(t *testing.T) {
	var gotMaxTokens float64
	handler := func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotMaxTokens, _ = body["max_tokens"].(float64)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessageBody(`"Work on Channels next."`))
	}

	p := newTestAnthropicProvider(t, handler)
	ctx := WithPurpose(context.Background(), PurposeCareerAdvice)
	if _, err := p.Generate(ctx, Request{
		Messages: []Message{{Role: RoleUser, Content: "advise me"}},
	}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if int(gotMaxTokens) != budgetFor(PurposeCareerAdvice) {
		t.Errorf("max_tokens sent = %d, want the advice budget %d",
			int(gotMaxTokens), budgetFor(PurposeCareerAdvice))
	}
}

func TestAnthropicRateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"type": "error",
			"error": map[string]any{
				"type":    "rate_limit_error",
				"message": "Rate limit exceeded",
			},
		})
	}

	p := newTestAnthropicProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "5 questions on SQL"}},
		MaxTokens: 100,
	})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %T (%v), want ErrRateLimit", err, err)
	}
	if rl.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", rl.Provider)
	}
}

func TestAnthropicServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"type": "error",
			"error": map[string]any{
				"type":    "api_error",
				"message": "Internal server error",
			},
		})
	}

	p := newTestAnthropicProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "5 questions on SQL"}},
		MaxTokens: 100,
	})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T (%v), want ErrProviderUnavailable", err, err)
	}
}

func TestAnthropicModelSelection(t *testing.T) {
	cases := []struct {
		configured string
		want       string
	}{
		{"", "claude-haiku-4-5"},
		{"haiku", "claude-haiku-4-5"},
		{"sonnet", "claude-sonnet-4-5"},
		{"claude-sonnet-4-5-20250929", "claude-sonnet-4-5-20250929"}, // pass-through
	}
	for _, tc := range cases {
		p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "test-key", Model: tc.configured})
		if err != nil {
			t.Fatalf("NewAnthropicProvider(%q): %v", tc.configured, err)
		}
		if p.ModelID() != tc.want {
			t.Errorf("model for %q = %q, want %q", tc.configured, p.ModelID(), tc.want)
		}
	}
}
