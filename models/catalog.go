package models

// Category is a node of the marketplace category taxonomy.
type Category struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	IconURL  string     `json:"icon_url,omitempty"`
	ParentID string     `json:"parent_id,omitempty"`
	Children []Category `json:"children,omitempty"`
}

// Region is a geographic area used to scope item searches.
type Region struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
}
