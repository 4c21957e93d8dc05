package models

// Card is the display contract handed to renderers (chat message, HTTP
// response, terminal). It only carries semantic values.
type Card struct {
	Title     string `json:"title" yaml:"title"`
	Subtitle  string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Body      string `json:"body" yaml:"body"`
	URL       string `json:"url" yaml:"url"`
	Thumbnail string `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Footer    string `json:"footer" yaml:"footer"`
	Color     string `json:"color" yaml:"color"`
}

// Heading renders "title (subtitle)", or just the title when there is no subtitle.
func (c Card) Heading() string {
	if c.Subtitle == "" {
		return c.Title
	}
	return c.Title + " (" + c.Subtitle + ")"
}
