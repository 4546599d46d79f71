package models

// FacebookSettings configures the Facebook Graph API feed. Singleton.
// AccessToken is only ever returned on the admin endpoint.
type FacebookSettings struct {
	ID          string `json:"id"`
	PageID      string `json:"pageId"`
	AccessToken string `json:"accessToken"`
	PostsLimit  int    `json:"postsLimit"`
	Enabled     bool   `json:"enabled"`
}

// FacebookSettingsUpdate carries a partial settings update.
type FacebookSettingsUpdate struct {
	PageID      *string `json:"pageId"`
	AccessToken *string `json:"accessToken"`
	PostsLimit  *int    `json:"postsLimit"`
	Enabled     *bool   `json:"enabled"`
}

// FacebookPost is a normalized page post served to the public site.
type FacebookPost struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	CreatedTime string `json:"created_time"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link,omitempty"`
}

// YouTubeSettings configures the YouTube Data API feed. Singleton.
// APIKey is only ever returned on the admin endpoint.
type YouTubeSettings struct {
	ID                 string `json:"id"`
	ChannelID          string `json:"channel_id"`
	APIKey             string `json:"api_key"`
	MaxVideos          int    `json:"max_videos"`
	Enabled            bool   `json:"enabled"`
	SectionTitle       string `json:"section_title"`
	SectionDescription string `json:"section_description"`
}

// YouTubeSettingsUpdate carries a partial settings update.
type YouTubeSettingsUpdate struct {
	ChannelID          *string `json:"channel_id"`
	APIKey             *string `json:"api_key"`
	MaxVideos          *int    `json:"max_videos"`
	Enabled            *bool   `json:"enabled"`
	SectionTitle       *string `json:"section_title"`
	SectionDescription *string `json:"section_description"`
}

// YouTubeVideo is a normalized channel video served to the public site.
type YouTubeVideo struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	PublishedAt string `json:"published_at"`
}
