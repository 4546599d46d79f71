// Package feeds implements the outbound Facebook Graph and YouTube Data API
// clients and the in-memory cache the public feed endpoints serve from.
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

// DefaultGraphBaseURL is the Facebook Graph API endpoint.
const DefaultGraphBaseURL = "https://graph.facebook.com/v18.0"

// FacebookClient fetches page posts from the Facebook Graph API.
type FacebookClient struct {
	baseURL    string
	httpClient *http.Client
}

// FacebookOption configures a FacebookClient.
type FacebookOption func(*FacebookClient)

// WithFacebookBaseURL sets a custom base URL (useful for testing with a mock server).
func WithFacebookBaseURL(u string) FacebookOption {
	return func(c *FacebookClient) {
		c.baseURL = u
	}
}

// WithFacebookHTTPClient sets a custom HTTP client.
func WithFacebookHTTPClient(client *http.Client) FacebookOption {
	return func(c *FacebookClient) {
		c.httpClient = client
	}
}

// NewFacebookClient creates a new Graph API client.
func NewFacebookClient(opts ...FacebookOption) *FacebookClient {
	c := &FacebookClient{
		baseURL:    DefaultGraphBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Graph API wire types. Only the fields we read are mapped.
type graphPostsResponse struct {
	Data []graphPost `json:"data"`
}

type graphPost struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	CreatedTime string `json:"created_time"`
	FullPicture string `json:"full_picture"`
	Permalink   string `json:"permalink_url"`
	Attachments *struct {
		Data []struct {
			Media *struct {
				Image *struct {
					Src string `json:"src"`
				} `json:"image"`
			} `json:"media"`
		} `json:"data"`
	} `json:"attachments"`
}

type graphPageResponse struct {
	Name     string `json:"name"`
	FanCount int    `json:"fan_count"`
	Error    *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// FetchPosts retrieves and normalizes the most recent page posts.
func (c *FacebookClient) FetchPosts(ctx context.Context, settings models.FacebookSettings) ([]models.FacebookPost, error) {
	query := url.Values{}
	query.Set("fields", "id,message,created_time,full_picture,permalink_url,attachments{media,description,url}")
	query.Set("limit", strconv.Itoa(settings.PostsLimit))
	query.Set("access_token", settings.AccessToken)

	endpoint := fmt.Sprintf("%s/%s/posts?%s", c.baseURL, url.PathEscape(settings.PageID), query.Encode())
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
		return nil, fmt.Errorf("facebook api returned status %d", resp.StatusCode)
	}

	var body graphPostsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	posts := make([]models.FacebookPost, 0, len(body.Data))
	for _, p := range body.Data {
		post := models.FacebookPost{
			ID:          p.ID,
			Message:     p.Message,
			CreatedTime: p.CreatedTime,
			Image:       p.FullPicture,
			Link:        p.Permalink,
		}
		// Attachments usually carry a higher-resolution image.
		if p.Attachments != nil && len(p.Attachments.Data) > 0 {
			if media := p.Attachments.Data[0].Media; media != nil && media.Image != nil && media.Image.Src != "" {
				post.Image = media.Image.Src
			}
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// TestResult reports the outcome of a connection test against a page.
type TestResult struct {
	Success   bool   `json:"success"`
	PageName  string `json:"pageName,omitempty"`
	Followers int    `json:"followers,omitempty"`
	Message   string `json:"message"`
}

// TestConnection checks that a pageId/token pair can read the page.
func (c *FacebookClient) TestConnection(ctx context.Context, pageID, accessToken string) TestResult {
	query := url.Values{}
	query.Set("fields", "name,fan_count,picture")
	query.Set("access_token", accessToken)

	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, url.PathEscape(pageID), query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return TestResult{Success: false, Message: "Error: " + err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return TestResult{Success: false, Message: "Error: " + err.Error()}
	}
	defer resp.Body.Close()

	var body graphPageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return TestResult{Success: false, Message: "Error: " + err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		msg := "Unknown error"
		if body.Error != nil {
			msg = body.Error.Message
		}
		return TestResult{Success: false, Message: "Failed to connect: " + msg}
	}

	return TestResult{
		Success:   true,
		PageName:  body.Name,
		Followers: body.FanCount,
		Message:   "Connection successful!",
	}
}
