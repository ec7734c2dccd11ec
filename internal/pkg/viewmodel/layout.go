package viewmodel

// Meta holds the document head tags of a page
type Meta struct {
	Title       string
	Description string
	URL         string
}

type Layout struct {
	Page            string
	BackgroundColor string
	Meta            Meta
	IsDev           bool
}
