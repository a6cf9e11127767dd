package llm

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// chatServer serves one canned Chat Completions reply and captures the
// decoded request body.
func chatServer(t *testing.T, status int, body map[string]any, seen *map[string]any) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			_ = json.NewDecoder(r.Body).Decode(seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/v1"
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1760000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 90, "completion_tokens": 30, "total_tokens": 120},
	}
}

func TestOpenAIProvider_StructuredOutput(t *testing.T) {
	var seen map[string]any
	url := chatServer(t, http.StatusOK,
		chatCompletion(`{"courseId":"cs-wits","rationale":"coding interest"}`, "stop"), &seen)

	p, err := NewOpenAIProvider(Settings{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp, err := p.Generate(t.Context(), Request{
		System:    "You advise school leavers.",
		Messages:  []Message{{Role: RoleUser, Content: "Pick one course."}},
		Schema:    pickSchema(),
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 90 || resp.Usage.OutputTokens != 30 {
		t.Fatalf("unexpected usage %+v", resp.Usage)
	}

	msgs, _ := seen["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(msgs))
	}
	format, _ := seen["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Fatalf("expected json_schema response format, got %v", format["type"])
	}
}

func TestOpenAIProvider_Truncated(t *testing.T) {
	url := chatServer(t, http.StatusOK, chatCompletion(`{"courseId":`, "length"), nil)
	p, _ := NewOpenAIProvider(Settings{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url})

	_, err := p.Generate(t.Context(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}, Schema: pickSchema()})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	body := chatCompletion("", "stop")
	body["choices"] = []map[string]any{}
	url := chatServer(t, http.StatusOK, body, nil)
	p, _ := NewOpenAIProvider(Settings{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url})

	_, err := p.Generate(t.Context(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestOpenAIProvider_ErrorMapping(t *testing.T) {
	rlURL := chatServer(t, http.StatusTooManyRequests, map[string]any{
		"error": map[string]any{"type": "tokens", "message": "slow down", "code": "rate_limit_exceeded"},
	}, nil)
	p, _ := NewOpenAIProvider(Settings{APIKey: "k", Model: "gpt-4o-mini", BaseURL: rlURL})
	_, err := p.Generate(t.Context(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T (%v)", err, err)
	}

	downURL := chatServer(t, http.StatusBadGateway, map[string]any{
		"error": map[string]any{"type": "server_error", "message": "upstream"},
	}, nil)
	p, _ = NewOpenAIProvider(Settings{APIKey: "k", Model: "gpt-4o-mini", BaseURL: downURL})
	_, err = p.Generate(t.Context(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestOpenRouterProvider(t *testing.T) {
	var seen map[string]any
	url := chatServer(t, http.StatusOK, chatCompletion(`{"courseId":"law-wits","rationale":"debate"}`, "stop"), &seen)

	p, err := NewOpenRouterProvider(Settings{APIKey: "sk-or", Model: "claude-haiku", BaseURL: url})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "claude-haiku" {
		t.Fatalf("openrouter model IDs should pass through, got %q", p.ModelID())
	}
	if _, err := p.Generate(t.Context(), Request{Messages: []Message{{Role: RoleUser, Content: "x"}}, Schema: pickSchema()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen["model"] != "claude-haiku" {
		t.Fatalf("request model = %v", seen["model"])
	}

	if _, err := NewOpenRouterProvider(Settings{Model: "x"}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}
