package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sayantonsadhu/portfolio-be/internal/models"
)

type fakeFacebookSettings struct {
	settings models.FacebookSettings
}

func (f *fakeFacebookSettings) GetOrCreate() (models.FacebookSettings, error) {
	return f.settings, nil
}

func (f *fakeFacebookSettings) Update(models.FacebookSettingsUpdate) (models.FacebookSettings, error) {
	return f.settings, nil
}

type fakeYouTubeSettings struct {
	settings models.YouTubeSettings
}

func (f *fakeYouTubeSettings) GetOrCreate() (models.YouTubeSettings, error) {
	return f.settings, nil
}

func (f *fakeYouTubeSettings) Update(models.YouTubeSettingsUpdate) (models.YouTubeSettings, error) {
	return f.settings, nil
}

func TestServiceCachesPosts(t *testing.T) {
	var fetches atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		w.Write([]byte(`{"data": [{"id": "p1", "message": "hello"}]}`))
	}))
	defer server.Close()

	fb := &fakeFacebookSettings{settings: models.FacebookSettings{
		PageID: "my-page", AccessToken: "token", PostsLimit: 5, Enabled: true,
	}}
	svc := NewService(fb, &fakeYouTubeSettings{},
		NewFacebookClient(WithFacebookBaseURL(server.URL)),
		NewYouTubeClient(), time.Minute)

	ctx := context.Background()
	posts := svc.GetPosts(ctx)
	if len(posts) != 1 || posts[0].ID != "p1" {
		t.Fatalf("unexpected posts: %+v", posts)
	}
	svc.GetPosts(ctx)
	svc.GetPosts(ctx)
	if got := fetches.Load(); got != 1 {
		t.Errorf("upstream fetches: got %d, want 1 (cache should serve repeats)", got)
	}

	svc.Invalidate()
	svc.GetPosts(ctx)
	if got := fetches.Load(); got != 2 {
		t.Errorf("upstream fetches after Invalidate: got %d, want 2", got)
	}
}

func TestServiceDisabledIntegrationYieldsEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("disabled integration must not hit the upstream API")
	}))
	defer server.Close()

	fb := &fakeFacebookSettings{settings: models.FacebookSettings{
		PageID: "my-page", AccessToken: "token", PostsLimit: 5, Enabled: false,
	}}
	yt := &fakeYouTubeSettings{settings: models.YouTubeSettings{Enabled: false}}
	svc := NewService(fb, yt,
		NewFacebookClient(WithFacebookBaseURL(server.URL)),
		NewYouTubeClient(WithYouTubeBaseURL(server.URL)), time.Minute)

	if posts := svc.GetPosts(context.Background()); posts == nil || len(posts) != 0 {
		t.Errorf("expected empty non-nil post list, got %#v", posts)
	}
	if videos := svc.GetVideos(context.Background()); videos == nil || len(videos) != 0 {
		t.Errorf("expected empty non-nil video list, got %#v", videos)
	}
}

func TestServiceUpstreamFailureYieldsEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fb := &fakeFacebookSettings{settings: models.FacebookSettings{
		PageID: "my-page", AccessToken: "token", PostsLimit: 5, Enabled: true,
	}}
	svc := NewService(fb, &fakeYouTubeSettings{},
		NewFacebookClient(WithFacebookBaseURL(server.URL)),
		NewYouTubeClient(), time.Minute)

	if posts := svc.GetPosts(context.Background()); posts == nil || len(posts) != 0 {
		t.Errorf("expected empty non-nil post list, got %#v", posts)
	}
}
