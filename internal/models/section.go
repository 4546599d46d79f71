package models

// SectionContent holds the CMS-editable heading copy for one page section
// (films, about, contact, weddings, packages).
type SectionContent struct {
	ID          string  `json:"id"`
	SectionKey  string  `json:"section_key"`
	Title       string  `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
}

// SectionContentUpdate carries a partial section update.
type SectionContentUpdate struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`
}
