package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sayantonsadhu/portfolio-be/internal/models"
)

func TestFetchVideosNormalizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("channelId") != "UC123" || q.Get("key") != "api-key" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		if q.Get("order") != "date" || q.Get("maxResults") != "6" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": [
			{"id": {"videoId": "v1"},
			 "snippet": {"title": "Asha & Rohan", "description": "Wedding film",
			  "publishedAt": "2024-03-10T08:00:00Z",
			  "thumbnails": {"high": {"url": "https://i.ytimg.com/v1/hq.jpg"},
			                 "medium": {"url": "https://i.ytimg.com/v1/mq.jpg"}}}},
			{"id": {"videoId": "v2"},
			 "snippet": {"title": "Teaser", "publishedAt": "2024-03-01T08:00:00Z",
			  "thumbnails": {"medium": {"url": "https://i.ytimg.com/v2/mq.jpg"}}}},
			{"id": {}, "snippet": {"title": "a channel result, not a video"}}
		]}`))
	}))
	defer server.Close()

	client := NewYouTubeClient(WithYouTubeBaseURL(server.URL))
	videos, err := client.FetchVideos(context.Background(), models.YouTubeSettings{
		ChannelID: "UC123",
		APIKey:    "api-key",
		MaxVideos: 6,
		Enabled:   true,
	})
	if err != nil {
		t.Fatalf("FetchVideos: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("got %d videos, want 2 (idless items skipped)", len(videos))
	}
	if videos[0].Thumbnail != "https://i.ytimg.com/v1/hq.jpg" {
		t.Errorf("videos[0].Thumbnail: got %q", videos[0].Thumbnail)
	}
	// Falls back to the medium thumbnail when high is missing.
	if videos[1].Thumbnail != "https://i.ytimg.com/v2/mq.jpg" {
		t.Errorf("videos[1].Thumbnail: got %q", videos[1].Thumbnail)
	}
}

func TestFetchVideosUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewYouTubeClient(WithYouTubeBaseURL(server.URL))
	_, err := client.FetchVideos(context.Background(), models.YouTubeSettings{
		ChannelID: "UC123", APIKey: "expired", MaxVideos: 6,
	})
	if err == nil {
		t.Fatal("expected error for upstream 403")
	}
}
