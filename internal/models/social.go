package models

// SocialMediaLinks holds the footer social links. Singleton.
type SocialMediaLinks struct {
	ID        string  `json:"id"`
	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
	YouTube   *string `json:"youtube"`
	Twitter   *string `json:"twitter"`
	LinkedIn  *string `json:"linkedin"`
	Pinterest *string `json:"pinterest"`
	TikTok    *string `json:"tiktok"`
	Enabled   bool    `json:"enabled"`
}

// SocialMediaLinksUpdate carries a partial links update.
type SocialMediaLinksUpdate struct {
	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
	YouTube   *string `json:"youtube"`
	Twitter   *string `json:"twitter"`
	LinkedIn  *string `json:"linkedin"`
	Pinterest *string `json:"pinterest"`
	TikTok    *string `json:"tiktok"`
	Enabled   *bool   `json:"enabled"`
}
