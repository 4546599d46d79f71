package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sayantonsadhu/portfolio-be/internal/auth"
	"github.com/sayantonsadhu/portfolio-be/internal/database"
	"github.com/sayantonsadhu/portfolio-be/internal/feeds"
	"github.com/sayantonsadhu/portfolio-be/internal/metrics"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
	"github.com/sayantonsadhu/portfolio-be/internal/upload"
	"github.com/sayantonsadhu/portfolio-be/internal/websocket"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full router against an in-memory database.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	auth.Init("test-secret")

	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	store, err := upload.NewStore(t.TempDir())
	require.NoError(t, err)

	hub := websocket.NewHub()
	go hub.Run()

	eventService := services.NewEventService(db, hub)
	facebookService := services.NewFacebookService(db)
	youtubeService := services.NewYouTubeService(db)
	facebookClient := feeds.NewFacebookClient()
	youtubeClient := feeds.NewYouTubeClient()
	feedService := feeds.NewService(facebookService, youtubeService, facebookClient, youtubeClient, 0)

	router := NewRouter(Dependencies{
		Hub:     hub,
		Store:   store,
		Metrics: metrics.New(),

		CredentialService: services.NewCredentialService(db, "admin", "admin123"),
		SettingsService:   services.NewSettingsService(db),
		CarouselService:   services.NewCarouselService(db),
		WeddingService:    services.NewWeddingService(db),
		FilmService:       services.NewFilmService(db),
		AboutService:      services.NewAboutService(db),
		PackageService:    services.NewPackageService(db),
		InquiryService:    services.NewInquiryService(db),
		SectionService:    services.NewSectionService(db),
		SocialService:     services.NewSocialService(db),
		FacebookService:   facebookService,
		YouTubeService:    youtubeService,
		EventService:      eventService,
		DashboardService:  services.NewDashboardService(db, store),

		FeedService:    feedService,
		FacebookClient: facebookClient,

		CORSOrigins: []string{"*"},
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func login(t *testing.T, server *httptest.Server, username, password string) (string, int) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := http.Post(server.URL+"/api/admin/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode
	}
	var result map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Equal(t, "bearer", result["token_type"])
	return result["access_token"], resp.StatusCode
}

func doAuthed(t *testing.T, server *httptest.Server, method, path, token string, body []byte) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, server.URL+path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{
		"/api/admin/credentials",
		"/api/admin/contact",
		"/api/admin/dashboard",
		"/api/admin/events",
	} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		require.Equal(t, "Not authenticated", body["detail"], path)
	}
}

func TestLoginFlow(t *testing.T) {
	server := newTestServer(t)

	_, status := login(t, server, "admin", "wrong")
	require.Equal(t, http.StatusUnauthorized, status)
	_, status = login(t, server, "ghost", "admin123")
	require.Equal(t, http.StatusUnauthorized, status)

	token, status := login(t, server, "admin", "admin123")
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, token)

	resp := doAuthed(t, server, http.MethodGet, "/api/admin/credentials", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	require.Equal(t, "admin", info["username"])
	_, leaked := info["password_hash"]
	require.False(t, leaked, "password hash must never be serialized")
}

func TestChangeCredentialsFlow(t *testing.T) {
	server := newTestServer(t)

	token, _ := login(t, server, "admin", "admin123")

	// Wrong old password is rejected.
	body, _ := json.Marshal(map[string]interface{}{
		"old_password": "nope", "new_password": "brand-new-pass",
	})
	resp := doAuthed(t, server, http.MethodPut, "/api/admin/credentials", token, body)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Short new password is rejected.
	body, _ = json.Marshal(map[string]interface{}{
		"old_password": "admin123", "new_password": "abc",
	})
	resp = doAuthed(t, server, http.MethodPut, "/api/admin/credentials", token, body)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// A valid rotation takes effect immediately.
	body, _ = json.Marshal(map[string]interface{}{
		"old_password": "admin123", "new_username": "sayanton", "new_password": "brand-new-pass",
	})
	resp = doAuthed(t, server, http.MethodPut, "/api/admin/credentials", token, body)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, status := login(t, server, "admin", "admin123")
	require.Equal(t, http.StatusUnauthorized, status)
	newToken, status := login(t, server, "sayanton", "brand-new-pass")
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, newToken)
}

func TestPublicContentProvisionsDefaults(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/settings")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var settings map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&settings))
	require.NotEmpty(t, settings["siteName"])

	resp, err = http.Get(server.URL + "/api/sections/films")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/sections/bogus")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPublicFeedsNeverError(t *testing.T) {
	server := newTestServer(t)

	// Integrations are provisioned disabled; both feeds come back as
	// empty JSON arrays.
	for _, path := range []string{"/api/facebook/posts", "/api/youtube/videos"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		var list []interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		require.Empty(t, list, path)
	}

	// The public Facebook settings never include the access token.
	resp, err := http.Get(server.URL + "/api/facebook/settings")
	require.NoError(t, err)
	defer resp.Body.Close()
	var settings map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&settings))
	_, leaked := settings["accessToken"]
	require.False(t, leaked, "access token must not be public")
}

func TestContactInquiryFlow(t *testing.T) {
	server := newTestServer(t)

	body, _ := json.Marshal(map[string]string{
		"name":    "Mira",
		"email":   "mira@example.com",
		"phone":   "+91 90000 00000",
		"message": "Looking for a December wedding shoot",
	})
	resp, err := http.Post(server.URL+"/api/contact", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	token, _ := login(t, server, "admin", "admin123")
	resp = doAuthed(t, server, http.MethodGet, "/api/admin/contact", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var inquiries []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&inquiries))
	require.Len(t, inquiries, 1)
	require.Equal(t, "Mira", inquiries[0]["name"])
}

func TestUploadsServe404ForUnknownFiles(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/uploads/nope.jpg")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDashboardStats(t *testing.T) {
	server := newTestServer(t)

	token, _ := login(t, server, "admin", "admin123")
	resp := doAuthed(t, server, http.MethodGet, "/api/admin/dashboard", token, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	for _, key := range []string{"weddings", "packages"} {
		require.Contains(t, stats, key, fmt.Sprintf("missing %s count", key))
	}
}
