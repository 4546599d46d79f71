package models

// Film is the featured wedding film shown on the landing page.
type Film struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	VideoURL   string `json:"videoUrl"`
	Thumbnail  string `json:"thumbnail"`
	IsFeatured bool   `json:"isFeatured"`
}

// FilmUpdate replaces the featured film's title and video.
type FilmUpdate struct {
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
}
