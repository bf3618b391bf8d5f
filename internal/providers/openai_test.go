package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAI_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Error("Missing or wrong Authorization header")
		}

		var req openaiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Model != "gpt-4o-mini" {
			t.Errorf("model = %q, want gpt-4o-mini", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("messages = %+v, want system then user", req.Messages)
		}

		resp := openaiResponse{
			Choices: []openaiChoice{
				{Message: openaiMessage{Role: "assistant", Content: "feat: add oauth"}},
			},
			Usage: openaiUsage{TotalTokens: 50},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	o := &OpenAI{
		apiKey:  "test-key",
		model:   "gpt-4o-mini",
		baseURL: server.URL,
		client:  server.Client(),
	}

	resp, err := o.Generate(context.Background(), Request{
		SystemPrompt: "test",
		UserPrompt:   "test",
		MaxTokens:    10,
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if resp.Content != "feat: add oauth" {
		t.Errorf("Content = %q, want %q", resp.Content, "feat: add oauth")
	}
	if resp.TokensUsed != 50 {
		t.Errorf("TokensUsed = %d, want 50", resp.TokensUsed)
	}
}

func TestOpenAI_RateLimit(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts <= 2 {
			w.WriteHeader(429)
			w.Write([]byte(`{"error":"rate limited"}`))
			return
		}
		resp := openaiResponse{
			Choices: []openaiChoice{
				{Message: openaiMessage{Role: "assistant", Content: "chore: update"}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	o := &OpenAI{
		apiKey:  "test-key",
		model:   "gpt-4o-mini",
		baseURL: server.URL,
		client:  server.Client(),
	}

	resp, err := o.Generate(context.Background(), Request{
		SystemPrompt: "test",
		UserPrompt:   "test",
	})
	if err != nil {
		t.Fatalf("Generate error after retries: %v", err)
	}
	if resp.Content != "chore: update" {
		t.Errorf("Content = %q, want %q", resp.Content, "chore: update")
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts (2 retries), got %d", attempts)
	}
}

func TestOpenAI_AuthError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(401)
		w.Write([]byte(`{"error":"invalid api key"}`))
	}))
	defer server.Close()

	o := &OpenAI{
		apiKey:  "bad-key",
		model:   "gpt-4o-mini",
		baseURL: server.URL,
		client:  server.Client(),
	}

	_, err := o.Generate(context.Background(), Request{UserPrompt: "test"})
	if err == nil {
		t.Fatal("expected auth error")
	}
	if !IsAuthError(err) {
		t.Errorf("IsAuthError = false for %v", err)
	}
	if attempts != 1 {
		t.Errorf("auth errors must not be retried, got %d attempts", attempts)
	}
}

func TestOpenAI_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(openaiResponse{})
	}))
	defer server.Close()

	o := &OpenAI{
		apiKey:  "test-key",
		model:   "gpt-4o-mini",
		baseURL: server.URL,
		client:  server.Client(),
	}

	if _, err := o.Generate(context.Background(), Request{UserPrompt: "test"}); err == nil {
		t.Error("expected error for a response with no choices")
	}
}

func TestNewOpenAI_RequiresKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	if _, err := NewOpenAI(""); err == nil {
		t.Error("missing OPENAI_API_KEY should be an error")
	}
}

func TestNewOpenAI_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("AUTOCOMMIT_OPENAI_BASE_URL", "")

	o, err := NewOpenAI("")
	if err != nil {
		t.Fatal(err)
	}
	if o.model != DefaultOpenAIModel {
		t.Errorf("model = %q, want %q", o.model, DefaultOpenAIModel)
	}
	if o.baseURL != defaultOpenAIURL {
		t.Errorf("baseURL = %q, want %q", o.baseURL, defaultOpenAIURL)
	}
}
