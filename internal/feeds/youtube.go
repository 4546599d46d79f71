package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sayantonsadhu/portfolio-be/internal/models"
)

// DefaultYouTubeBaseURL is the YouTube Data API v3 endpoint.
const DefaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3"

// YouTubeClient fetches channel uploads from the YouTube Data API.
type YouTubeClient struct {
	baseURL    string
	httpClient *http.Client
}

// YouTubeOption configures a YouTubeClient.
type YouTubeOption func(*YouTubeClient)

// WithYouTubeBaseURL sets a custom base URL (useful for testing with a mock server).
func WithYouTubeBaseURL(u string) YouTubeOption {
	return func(c *YouTubeClient) {
		c.baseURL = u
	}
}

// WithYouTubeHTTPClient sets a custom HTTP client.
func WithYouTubeHTTPClient(client *http.Client) YouTubeOption {
	return func(c *YouTubeClient) {
		c.httpClient = client
	}
}

// NewYouTubeClient creates a new Data API client.
func NewYouTubeClient(opts ...YouTubeOption) *YouTubeClient {
	c := &YouTubeClient{
		baseURL:    DefaultYouTubeBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			PublishedAt string `json:"publishedAt"`
			Thumbnails  struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
				Medium struct {
					URL string `json:"url"`
				} `json:"medium"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// FetchVideos retrieves and normalizes the channel's newest uploads.
func (c *YouTubeClient) FetchVideos(ctx context.Context, settings models.YouTubeSettings) ([]models.YouTubeVideo, error) {
	query := url.Values{}
	query.Set("key", settings.APIKey)
	query.Set("channelId", settings.ChannelID)
	query.Set("part", "snippet,id")
	query.Set("order", "date")
	query.Set("type", "video")
	query.Set("maxResults", strconv.Itoa(settings.MaxVideos))

	endpoint := c.baseURL + "/search?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube api returned status %d", resp.StatusCode)
	}

	var body youtubeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	videos := make([]models.YouTubeVideo, 0, len(body.Items))
	for _, item := range body.Items {
		if item.ID.VideoID == "" {
			continue
		}
		thumbnail := item.Snippet.Thumbnails.High.URL
		if thumbnail == "" {
			thumbnail = item.Snippet.Thumbnails.Medium.URL
		}
		videos = append(videos, models.YouTubeVideo{
			VideoID:     item.ID.VideoID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			Thumbnail:   thumbnail,
			PublishedAt: item.Snippet.PublishedAt,
		})
	}
	return videos, nil
}
