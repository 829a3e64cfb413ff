package models

// PageSection is one editable block of a content page.
type PageSection struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Enabled bool   `json:"enabled"`
}

// PageContent is an admin-editable page definition.
type PageContent struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Path     string        `json:"path"`
	Sections []PageSection `json:"sections"`
}
