package model

// Link is a reference surfaced in the generated README
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}
