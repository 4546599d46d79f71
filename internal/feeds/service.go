package feeds

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/models"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
)

// Service serves the public Facebook and YouTube feeds through a small
// in-memory cache so page loads do not hit the third-party APIs.
type Service struct {
	fbSettings services.FacebookServiceProvider
	ytSettings services.YouTubeServiceProvider
	fb         *FacebookClient
	yt         *YouTubeClient
	ttl        time.Duration

	mu       sync.RWMutex
	posts    []models.FacebookPost
	postsAt  time.Time
	videos   []models.YouTubeVideo
	videosAt time.Time
}

// NewService creates a feed Service.
func NewService(fbSettings services.FacebookServiceProvider, ytSettings services.YouTubeServiceProvider, fb *FacebookClient, yt *YouTubeClient, ttl time.Duration) *Service {
	return &Service{
		fbSettings: fbSettings,
		ytSettings: ytSettings,
		fb:         fb,
		yt:         yt,
		ttl:        ttl,
	}
}

// GetPosts returns cached Facebook posts, refreshing synchronously when the
// cache is stale. A disabled or unconfigured integration and upstream
// failures all yield an empty list, never an error to the public site.
func (s *Service) GetPosts(ctx context.Context) []models.FacebookPost {
	s.mu.RLock()
	fresh := time.Since(s.postsAt) < s.ttl
	posts := s.posts
	s.mu.RUnlock()
	if fresh {
		return posts
	}
	return s.refreshPosts(ctx)
}

// GetVideos returns cached YouTube videos, refreshing synchronously when the
// cache is stale.
func (s *Service) GetVideos(ctx context.Context) []models.YouTubeVideo {
	s.mu.RLock()
	fresh := time.Since(s.videosAt) < s.ttl
	videos := s.videos
	s.mu.RUnlock()
	if fresh {
		return videos
	}
	return s.refreshVideos(ctx)
}

// Refresh re-fetches both feeds. Used by the background refresher.
func (s *Service) Refresh(ctx context.Context) {
	s.refreshPosts(ctx)
	s.refreshVideos(ctx)
}

func (s *Service) refreshPosts(ctx context.Context) []models.FacebookPost {
	posts := []models.FacebookPost{}

	settings, err := s.fbSettings.GetOrCreate()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load Facebook settings")
	} else if settings.Enabled && settings.PageID != "" && settings.AccessToken != "" {
		fetched, err := s.fb.FetchPosts(ctx, settings)
		if err != nil {
			log.Error().Err(err).Msg("Failed to fetch Facebook posts")
		} else {
			posts = fetched
		}
	}

	s.mu.Lock()
	s.posts = posts
	s.postsAt = time.Now()
	s.mu.Unlock()
	return posts
}

func (s *Service) refreshVideos(ctx context.Context) []models.YouTubeVideo {
	videos := []models.YouTubeVideo{}

	settings, err := s.ytSettings.GetOrCreate()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load YouTube settings")
	} else if settings.Enabled && settings.ChannelID != "" && settings.APIKey != "" {
		fetched, err := s.yt.FetchVideos(ctx, settings)
		if err != nil {
			log.Error().Err(err).Msg("Failed to fetch YouTube videos")
		} else {
			videos = fetched
		}
	}

	s.mu.Lock()
	s.videos = videos
	s.videosAt = time.Now()
	s.mu.Unlock()
	return videos
}

// Invalidate clears the cache so the next read refetches. Called when an
// admin changes integration settings.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.postsAt = time.Time{}
	s.videosAt = time.Time{}
	s.mu.Unlock()
}
