package models

// SiteSettings holds site-wide contact and branding details. Singleton.
type SiteSettings struct {
	ID       string  `json:"id"`
	SiteName string  `json:"siteName"`
	LogoURL  *string `json:"logoUrl"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
	Address  string  `json:"address"`
}

// SiteSettingsUpdate carries a partial settings update; nil fields are left unchanged.
type SiteSettingsUpdate struct {
	SiteName *string `json:"siteName"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Address  *string `json:"address"`
}
