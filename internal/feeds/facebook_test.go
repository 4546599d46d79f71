package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sayantonsadhu/portfolio-be/internal/models"
)

func TestFetchPostsNormalizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/my-page/posts" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("access_token") != "token-123" {
			t.Errorf("missing access token in %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("limit") != "5" {
			t.Errorf("limit: got %q, want 5", r.URL.Query().Get("limit"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [
			{"id": "p1", "message": "first", "created_time": "2024-01-01T10:00:00+0000",
			 "full_picture": "https://cdn.example.com/small.jpg", "permalink_url": "https://facebook.com/p1",
			 "attachments": {"data": [{"media": {"image": {"src": "https://cdn.example.com/full.jpg"}}}]}},
			{"id": "p2", "message": "second", "created_time": "2024-01-02T10:00:00+0000",
			 "full_picture": "https://cdn.example.com/p2.jpg", "permalink_url": "https://facebook.com/p2"}
		]}`))
	}))
	defer server.Close()

	client := NewFacebookClient(WithFacebookBaseURL(server.URL))
	posts, err := client.FetchPosts(context.Background(), models.FacebookSettings{
		PageID:      "my-page",
		AccessToken: "token-123",
		PostsLimit:  5,
		Enabled:     true,
	})
	if err != nil {
		t.Fatalf("FetchPosts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	// The attachment image wins over full_picture when present.
	if posts[0].Image != "https://cdn.example.com/full.jpg" {
		t.Errorf("posts[0].Image: got %q", posts[0].Image)
	}
	if posts[1].Image != "https://cdn.example.com/p2.jpg" {
		t.Errorf("posts[1].Image: got %q", posts[1].Image)
	}
	if posts[0].Link != "https://facebook.com/p1" {
		t.Errorf("posts[0].Link: got %q", posts[0].Link)
	}
}

func TestFetchPostsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "Invalid OAuth access token"}}`))
	}))
	defer server.Close()

	client := NewFacebookClient(WithFacebookBaseURL(server.URL))
	_, err := client.FetchPosts(context.Background(), models.FacebookSettings{
		PageID: "my-page", AccessToken: "bad", PostsLimit: 5,
	})
	if err == nil {
		t.Fatal("expected error for upstream 400")
	}
}

func TestConnectionTest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("access_token") == "good-token" {
			w.Write([]byte(`{"name": "Sayanton Sadhu Photography", "fan_count": 1204}`))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "Invalid OAuth access token"}}`))
	}))
	defer server.Close()

	client := NewFacebookClient(WithFacebookBaseURL(server.URL))

	result := client.TestConnection(context.Background(), "my-page", "good-token")
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.PageName != "Sayanton Sadhu Photography" || result.Followers != 1204 {
		t.Errorf("unexpected result: %+v", result)
	}

	result = client.TestConnection(context.Background(), "my-page", "bad-token")
	if result.Success {
		t.Fatal("expected failure for bad token")
	}
	if result.Message != "Failed to connect: Invalid OAuth access token" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}
