package models

// Brand identifies one browsable maker on the source catalog.
type Brand struct {
	Slug    string `json:"slug"` // e.g. "samsung-phones-9"
	Name    string `json:"name"`
	Devices string `json:"devices,omitempty"` // device count text, e.g. "1423 devices"
}

// ModelRef identifies one phone on a brand listing page. Its Slug is the
// detail page path (including the .php suffix) used to resolve the full record.
type ModelRef struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// PageResult is one listing page of a brand.
type PageResult struct {
	PageURL  string     `json:"page_url"`
	Models   []ModelRef `json:"models"`
	HasNext  bool       `json:"has_next"`
	NextPage int        `json:"next_page,omitempty"`
}
