package models

// Review sources.
const (
	SourceAPI         = "api"
	SourceProductPage = "product_page"
)

// RawProduct is a product as discovered during listing traversal, before
// name/price deduplication. It still carries the category it was found under.
type RawProduct struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price,omitempty"`
	URL      string `json:"url"`
	Category string `json:"category,omitempty"`
}

// Product is a deduplicated catalog entry. The category tag is dropped.
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	URL   string `json:"url"`
}

type Testimonial struct {
	Comment string `json:"comment"`
}

// Review is a normalized customer review. Date is an ISO calendar date in
// UTC whose year matched the configured target year; Text is always
// non-empty. Rating keeps whatever scalar the source provided.
type Review struct {
	ProductID string `json:"product_id,omitempty"`
	Date      string `json:"date"`
	Text      string `json:"text"`
	Rating    any    `json:"rating,omitempty"`
	Author    string `json:"author,omitempty"`
	Source    string `json:"source"`
}

type Meta struct {
	Source       string `json:"source"`
	ScrapedAtUTC string `json:"scraped_at_utc"`
}

// Snapshot is the single document produced per run. It is rebuilt from
// scratch every time, never patched in place.
type Snapshot struct {
	Meta         Meta          `json:"meta"`
	Products     []Product     `json:"products"`
	Testimonials []Testimonial `json:"testimonials"`
	Reviews      []Review      `json:"reviews"`
}
