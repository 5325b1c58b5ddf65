package coach

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func completionResponse(text string) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": text}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestFeedbackSuccess(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse("Great start! Try adding a twist.")))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	reply, err := c.Feedback(context.Background(), "seed prompt", "my five what-ifs", "Module: Brainstorming, Step: Practice")
	if err != nil {
		t.Fatalf("Feedback: %v", err)
	}
	if reply != "Great start! Try adding a twist." {
		t.Errorf("reply = %q", reply)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.MaxTokens != 500 {
		t.Errorf("max_tokens = %d", gotReq.MaxTokens)
	}
	if gotReq.Temperature != 0.7 {
		t.Errorf("temperature = %v", gotReq.Temperature)
	}
	if len(gotReq.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(gotReq.Messages))
	}
	sys := gotReq.Messages[0]
	if sys.Role != "system" || !strings.Contains(sys.Content, "writing coach for StoryLab") {
		t.Errorf("system message = %+v", sys)
	}
	if !strings.Contains(sys.Content, "Context: Module: Brainstorming, Step: Practice") {
		t.Errorf("system message missing context label: %q", sys.Content)
	}
	if !strings.Contains(sys.Content, "Learning objective: seed prompt") {
		t.Errorf("system message missing seed prompt: %q", sys.Content)
	}
	user := gotReq.Messages[1]
	if user.Role != "user" || !strings.Contains(user.Content, "my five what-ifs") {
		t.Errorf("user message = %+v", user)
	}
}

func TestFeedbackValidatesBeforeNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(completionResponse("should not be reached")))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	cases := []struct {
		name, seed, input string
	}{
		{"blank input", "seed", "   "},
		{"empty input", "seed", ""},
		{"missing seed", "", "real input"},
	}
	for _, tc := range cases {
		if _, err := c.Feedback(context.Background(), tc.seed, tc.input, "ctx"); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("%s: error = %v, want ErrInvalidRequest", tc.name, err)
		}
	}
	if calls != 0 {
		t.Errorf("upstream called %d times, want 0", calls)
	}
}

func TestFeedbackMissingKey(t *testing.T) {
	c := NewClient("")
	if _, err := c.Feedback(context.Background(), "seed", "input", "ctx"); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("error = %v, want ErrMissingCredential", err)
	}
}

func TestFeedbackUpstreamRejectsKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("stale-key", srv.URL)
	if _, err := c.Feedback(context.Background(), "seed", "input", "ctx"); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("error = %v, want ErrMissingCredential", err)
	}
}

func TestFeedbackUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	_, err := c.Feedback(context.Background(), "seed", "input", "ctx")
	if err == nil {
		t.Fatal("Feedback succeeded against failing upstream")
	}
	if errors.Is(err, ErrMissingCredential) {
		t.Fatalf("HTTP 500 mapped to credential error: %v", err)
	}
}

func TestFeedbackEmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	if _, err := c.Feedback(context.Background(), "seed", "input", "ctx"); err == nil {
		t.Fatal("Feedback succeeded with no choices")
	}
}
