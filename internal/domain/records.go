package domain

import "fmt"

type Beach struct {
	ID          int
	Name        string
	Location    string
	Description string
	ImageURL    string
	Route       string
	Rating      float64
	Highlights  []string
}

func (b Beach) Card(position int) Card {
	return Card{
		ID:          b.ID,
		Page:        PageBeaches,
		Title:       b.Name,
		Description: b.Description,
		ImageURL:    b.ImageURL,
		CTA:         "Explore " + b.Location,
		Route:       b.Route,
		Rating:      floatPtr(b.Rating),
		Highlights:  cloneStrings(b.Highlights),
		Position:    position,
	}
}

type City struct {
	ID          int
	Name        string
	Description string
	ImageURL    string
	Route       string
	Rating      float64
	Highlights  []string
}

func (c City) Card(position int) Card {
	return Card{
		ID:          c.ID,
		Page:        PageCities,
		Title:       c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		CTA:         "Discover " + c.Name,
		Route:       c.Route,
		Rating:      floatPtr(c.Rating),
		Highlights:  cloneStrings(c.Highlights),
		Position:    position,
	}
}

type ArchaeologicalSite struct {
	ID          int
	Name        string
	Era         string
	Location    string
	Description string
	ImageURL    string
	Route       string
	Rating      float64
}

func (s ArchaeologicalSite) Card(position int) Card {
	badge := s.Era
	return Card{
		ID:          s.ID,
		Page:        PageHeritage,
		Title:       s.Name,
		Description: s.Description,
		ImageURL:    s.ImageURL,
		CTA:         "Learn more",
		Route:       s.Route,
		Rating:      floatPtr(s.Rating),
		Badge:       &badge,
		Highlights:  []string{s.Location},
		Position:    position,
	}
}

type Package struct {
	ID           int
	Title        string
	Description  string
	ImageURL     string
	Route        string
	Price        float64
	Currency     string
	DurationDays int
	Rating       float64
	Highlights   []string
}

func (p Package) Card(position int) Card {
	currency := p.Currency
	badge := fmt.Sprintf("%d days", p.DurationDays)
	return Card{
		ID:          p.ID,
		Page:        PagePackages,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CTA:         "Book now",
		Route:       p.Route,
		Rating:      floatPtr(p.Rating),
		Price:       floatPtr(p.Price),
		Currency:    &currency,
		Badge:       &badge,
		Highlights:  cloneStrings(p.Highlights),
		Position:    position,
	}
}

type Discount struct {
	ID              int
	Title           string
	Description     string
	ImageURL        string
	Route           string
	Percent         int
	OriginalPrice   float64
	DiscountedPrice float64
	Currency        string
	ValidUntil      string
}

func (d Discount) Card(position int) Card {
	currency := d.Currency
	badge := fmt.Sprintf("-%d%%", d.Percent)
	return Card{
		ID:          d.ID,
		Page:        PageDiscounts,
		Title:       d.Title,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		CTA:         "Grab the deal",
		Route:       d.Route,
		Price:       floatPtr(d.DiscountedPrice),
		Currency:    &currency,
		Badge:       &badge,
		Highlights: []string{
			fmt.Sprintf("Was %.0f %s", d.OriginalPrice, d.Currency),
			"Valid until " + d.ValidUntil,
		},
		Position: position,
	}
}

func floatPtr(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	return append([]string(nil), in...)
}
