package domain

import "strings"

// PlaceholderRoute marks a card that has no destination page yet. Activating it
// navigates nowhere.
const PlaceholderRoute = "#"

type PageKind string

const (
	PageBeaches   PageKind = "beaches"
	PageCities    PageKind = "cities"
	PageHeritage  PageKind = "heritage"
	PagePackages  PageKind = "packages"
	PageDiscounts PageKind = "discounts"
)

var PageKindsOrdered = []PageKind{
	PageBeaches,
	PageCities,
	PageHeritage,
	PagePackages,
	PageDiscounts,
}

func ParsePageKind(raw string) (PageKind, bool) {
	candidate := PageKind(strings.ToLower(strings.TrimSpace(raw)))
	for _, kind := range PageKindsOrdered {
		if kind == candidate {
			return kind, true
		}
	}
	return "", false
}

// Route is the shell path that renders the page itself.
func (k PageKind) Route() string {
	return "/" + string(k)
}

func IsPlaceholderRoute(route string) bool {
	trimmed := strings.TrimSpace(route)
	return trimmed == "" || trimmed == PlaceholderRoute
}

type Hero struct {
	Headline      string  `json:"headline"`
	Subheadline   string  `json:"subheadline,omitempty"`
	ImageURL      string  `json:"image_url"`
	VideoEmbedURL *string `json:"video_embed_url,omitempty"`
}

type Page struct {
	Kind  PageKind `json:"kind"`
	Title string   `json:"title"`
	Route string   `json:"route"`
	Hero  Hero     `json:"hero"`
}

type Card struct {
	ID          int      `db:"id" json:"id"`
	Page        PageKind `db:"page" json:"page"`
	Title       string   `db:"title" json:"title"`
	Description string   `db:"description" json:"description"`
	ImageURL    string   `db:"image_url" json:"image_url"`
	CTA         string   `db:"cta" json:"cta"`
	Route       string   `db:"route" json:"route"`
	Rating      *float64 `db:"rating" json:"rating,omitempty"`
	Price       *float64 `db:"price" json:"price,omitempty"`
	Currency    *string  `db:"currency" json:"currency,omitempty"`
	Badge       *string  `db:"badge" json:"badge,omitempty"`
	Highlights  []string `db:"-" json:"highlights,omitempty"`
	Position    int      `db:"position" json:"-"`
}

func (c Card) IsPlaceholder() bool {
	return IsPlaceholderRoute(c.Route)
}

type ListingPage struct {
	Page
	Cards []Card `json:"cards"`
	Total int    `json:"total"`
}
