package models

// About is the photographer bio section. Singleton.
type About struct {
	ID    string `json:"id"`
	Image string `json:"image"`
	Name  string `json:"name"`
	Bio   string `json:"bio"`
}
