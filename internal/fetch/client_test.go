package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_LLMTopics(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"cluster_key":"agents","topic":"LLM Agents","size":2,"paper_ids":["a1","a2"]}]`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithAPIKey("test-key"))

	topics, err := client.LLMTopics(context.Background())
	if err != nil {
		t.Fatalf("LLMTopics: %v", err)
	}

	if gotPath != "/v1/relations/llm_topics" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if len(topics) != 1 || topics[0].ClusterKey != "agents" {
		t.Errorf("topics = %+v", topics)
	}
}

func TestClient_NoBaseURL(t *testing.T) {
	client := NewClient()

	_, err := client.Theories(context.Background())
	if !errors.Is(err, ErrNoExportURL) {
		t.Errorf("got err %v, want %v", err, ErrNoExportURL)
	}
}

func TestClient_HTTPErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", 401, ErrAuthError},
		{"forbidden", 403, ErrAuthError},
		{"not found", 404, ErrNotFound},
		{"rate limited", 429, ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(WithBaseURL(server.URL))
			_, err := client.PsychPapers(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got err %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.Subtopics(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("got err %v, want *APIError", err)
	}
	if apiErr.StatusCode != 500 {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
}

func TestClient_InvalidResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.LLMPapers(context.Background())
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("got err %v, want %v", err, ErrInvalidResponse)
	}
}
