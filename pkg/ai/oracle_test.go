package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/saiydurnetcom/nexuspm/pkg/config"
)

func chatBody(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
}

// oracleServer returns a mock chat-completions server that replies with the
// given message content.
func oracleServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); !strings.HasPrefix(auth, "Bearer ") {
			t.Fatalf("missing bearer auth, got %q", auth)
		}
		var payload ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if len(payload.Messages) != 2 {
			t.Fatalf("expected system+user messages, got %d", len(payload.Messages))
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(chatBody(content))
	}))
}

func configuredClient(url string) *Client {
	return NewClient(&config.AIConfig{
		APIURL:  url,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 5 * time.Second,
	}, nil, nil)
}

func TestGenerateSuggestions_Unconfigured_ServesFallback(t *testing.T) {
	notes := strings.Repeat("a", 250)
	client := NewClient(&config.AIConfig{}, nil, nil)

	drafts := client.GenerateSuggestions(context.Background(), notes, nil, nil)

	if len(drafts) != 3 {
		t.Fatalf("expected 3 fallback drafts, got %d", len(drafts))
	}
	wantTitles := []string{
		"Create project plan document based on meeting discussion",
		"Schedule follow-up meeting to review progress",
		"Send meeting summary email to all participants",
	}
	wantConfidences := []float64{0.85, 0.78, 0.92}
	for i, d := range drafts {
		if d.SuggestedTask != wantTitles[i] {
			t.Fatalf("draft %d title %q, want %q", i, d.SuggestedTask, wantTitles[i])
		}
		if d.ConfidenceScore != wantConfidences[i] {
			t.Fatalf("draft %d confidence %v, want %v", i, d.ConfidenceScore, wantConfidences[i])
		}
	}
	if drafts[0].OriginalText != notes[0:100] {
		t.Fatalf("draft 0 excerpt should be notes[0:100]")
	}
	if drafts[1].OriginalText != notes[100:200] {
		t.Fatalf("draft 1 excerpt should be notes[100:200]")
	}
	if drafts[2].OriginalText != notes[200:250] {
		t.Fatalf("draft 2 excerpt should be the remaining tail")
	}
}

func TestGenerateSuggestions_Unconfigured_EmptyNotes(t *testing.T) {
	client := NewClient(&config.AIConfig{}, nil, nil)
	drafts := client.GenerateSuggestions(context.Background(), "", nil, nil)
	for i, d := range drafts {
		if d.OriginalText != "General meeting discussion" {
			t.Fatalf("draft %d excerpt %q, want placeholder", i, d.OriginalText)
		}
	}
}

func TestGenerateSuggestions_Unconfigured_MultibyteNotes(t *testing.T) {
	// 250 two-byte runes: byte-indexed slicing would split a rune at
	// offset 100
	notes := strings.Repeat("é", 250)
	client := NewClient(&config.AIConfig{}, nil, nil)

	drafts := client.GenerateSuggestions(context.Background(), notes, nil, nil)

	if len(drafts) != 3 {
		t.Fatalf("expected 3 drafts, got %d", len(drafts))
	}
	for i, d := range drafts {
		if !utf8.ValidString(d.OriginalText) {
			t.Fatalf("draft %d excerpt is not valid UTF-8", i)
		}
	}
	if drafts[0].OriginalText != strings.Repeat("é", 100) {
		t.Fatalf("draft 0 should hold the first 100 characters")
	}
	if drafts[2].OriginalText != strings.Repeat("é", 50) {
		t.Fatalf("draft 2 should hold the remaining 50 characters")
	}
}

func TestGenerateSuggestions_MultibyteExcerptFill(t *testing.T) {
	notes := strings.Repeat("汉", 150)
	ts := oracleServer(t, `[{"confidenceScore":0.6}]`)
	defer ts.Close()

	drafts := configuredClient(ts.URL).GenerateSuggestions(context.Background(), notes, nil, nil)

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if !utf8.ValidString(drafts[0].OriginalText) {
		t.Fatalf("excerpt is not valid UTF-8")
	}
	if drafts[0].OriginalText != strings.Repeat("汉", 100) {
		t.Fatalf("excerpt should be the first 100 characters")
	}
}

func TestGenerateSuggestions_BareArrayResponse(t *testing.T) {
	content := `[{"originalText":"we need a deploy pipeline","suggestedTask":"Set up CI/CD","suggestedDescription":"Automate deploys","confidenceScore":0.9}]`
	ts := oracleServer(t, content)
	defer ts.Close()

	drafts := configuredClient(ts.URL).GenerateSuggestions(context.Background(), "notes", nil, nil)

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].SuggestedTask != "Set up CI/CD" || drafts[0].ConfidenceScore != 0.9 {
		t.Fatalf("unexpected draft: %+v", drafts[0])
	}
}

func TestGenerateSuggestions_WrappedResponse(t *testing.T) {
	for _, key := range []string{"suggestions", "tasks", "items", "data"} {
		content := `{"` + key + `":[{"originalText":"x","suggestedTask":"Do thing","confidenceScore":0.5}]}`
		ts := oracleServer(t, content)

		drafts := configuredClient(ts.URL).GenerateSuggestions(context.Background(), "notes", nil, nil)
		ts.Close()

		if len(drafts) != 1 || drafts[0].SuggestedTask != "Do thing" {
			t.Fatalf("wrapper key %q: unexpected drafts %+v", key, drafts)
		}
	}
}

func TestGenerateSuggestions_MarkdownFencedResponse(t *testing.T) {
	content := "```json\n{\"suggestions\":[{\"originalText\":\"x\",\"suggestedTask\":\"Fenced task\",\"confidenceScore\":0.7}]}\n```"
	ts := oracleServer(t, content)
	defer ts.Close()

	drafts := configuredClient(ts.URL).GenerateSuggestions(context.Background(), "notes", nil, nil)

	if len(drafts) != 1 || drafts[0].SuggestedTask != "Fenced task" {
		t.Fatalf("unexpected drafts: %+v", drafts)
	}
}

func TestGenerateSuggestions_NullConfidenceDefaults(t *testing.T) {
	ts := oracleServer(t, `[{"originalText":"x","suggestedTask":"t","confidenceScore":null}]`)
	defer ts.Close()

	drafts := configuredClient(ts.URL).GenerateSuggestions(context.Background(), "notes", nil, nil)

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].ConfidenceScore != 0.8 {
		t.Fatalf("null confidence should default to 0.8, got %v", drafts[0].ConfidenceScore)
	}
}

func TestGenerateSuggestions_ConfidenceNormalization(t *testing.T) {
	content := `[
		{"originalText":"a","suggestedTask":"t1","confidenceScore":1.7},
		{"originalText":"b","suggestedTask":"t2","confidenceScore":-0.2},
		{"originalText":"c","suggestedTask":"t3"},
		{"originalText":"d","suggestedTask":"t4","confidenceScore":"high"},
		{"originalText":"e","suggestedTask":"t5","confidenceScore":null}
	]`
	ts := oracleServer(t, content)
	defer ts.Close()

	drafts := configuredClient(ts.URL).GenerateSuggestions(context.Background(), "notes", nil, nil)

	if len(drafts) != 5 {
		t.Fatalf("expected 5 drafts, got %d", len(drafts))
	}
	want := []float64{1.0, 0.0, 0.8, 0.8, 0.8}
	for i, w := range want {
		if drafts[i].ConfidenceScore != w {
			t.Fatalf("draft %d confidence %v, want %v", i, drafts[i].ConfidenceScore, w)
		}
	}
}

func TestGenerateSuggestions_MissingFieldsFilled(t *testing.T) {
	notes := strings.Repeat("n", 150)
	content := `[{"confidenceScore":0.6}]`
	ts := oracleServer(t, content)
	defer ts.Close()

	drafts := configuredClient(ts.URL).GenerateSuggestions(context.Background(), notes, nil, nil)

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].OriginalText != notes[:100] {
		t.Fatalf("missing originalText should default to notes excerpt")
	}
	if drafts[0].SuggestedTask != "Review meeting notes and define follow-up task" {
		t.Fatalf("missing suggestedTask should default to placeholder, got %q", drafts[0].SuggestedTask)
	}
}

func TestGenerateSuggestions_ServerError_ServesFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	drafts := configuredClient(ts.URL).GenerateSuggestions(context.Background(), "some notes", nil, nil)

	if len(drafts) != 3 {
		t.Fatalf("expected 3 fallback drafts, got %d", len(drafts))
	}
	if drafts[0].SuggestedTask != "Create project plan document based on meeting discussion" {
		t.Fatalf("expected fallback drafts, got %+v", drafts[0])
	}
}

func TestGenerateSuggestions_UnparsableContent_ServesFallback(t *testing.T) {
	ts := oracleServer(t, "I could not find any tasks, sorry!")
	defer ts.Close()

	drafts := configuredClient(ts.URL).GenerateSuggestions(context.Background(), "some notes", nil, nil)

	if len(drafts) != 3 {
		t.Fatalf("expected 3 fallback drafts, got %d", len(drafts))
	}
}

type recordSettings struct {
	settings *Settings
}

func (r *recordSettings) AISettings(context.Context) (*Settings, error) {
	return r.settings, nil
}

func TestGenerateSuggestions_SettingsRecordWinsOverEnv(t *testing.T) {
	var gotModel string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload ChatRequest
		json.NewDecoder(r.Body).Decode(&payload)
		gotModel = payload.Model
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(chatBody(`[{"originalText":"x","suggestedTask":"t","confidenceScore":0.5}]`))
	}))
	defer ts.Close()

	provider := &recordSettings{settings: &Settings{
		APIURL: ts.URL,
		APIKey: "record-key",
		Model:  "record-model",
	}}
	client := NewClient(&config.AIConfig{
		APIURL: "http://env-should-not-be-called.invalid",
		APIKey: "env-key",
		Model:  "env-model",
	}, provider, nil)

	drafts := client.GenerateSuggestions(context.Background(), "notes", nil, nil)

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if gotModel != "record-model" {
		t.Fatalf("expected settings record model, got %q", gotModel)
	}
}
