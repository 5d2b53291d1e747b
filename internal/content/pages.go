package content

import (
	"github.com/njprem/VisitEgypt_BackEnd/internal/domain"
)

const (
	beachesVideoEmbedURL  = "https://www.youtube.com/embed/2fGxd8Dj1ok"
	pyramidsVideoEmbedURL = "https://www.youtube.com/embed/l6SHCtx7ixI"
)

var pages = map[domain.PageKind]domain.Page{
	domain.PageBeaches: {
		Kind:  domain.PageBeaches,
		Title: "Beaches",
		Hero: domain.Hero{
			Headline:      "Sun, sand and the Red Sea",
			Subheadline:   "From Sinai's reefs to the Mediterranean cliffs of the north coast.",
			ImageURL:      "https://images.unsplash.com/photo-1544550581-5f7ceaf7f992?w=1920",
			VideoEmbedURL: stringPtr(beachesVideoEmbedURL),
		},
	},
	domain.PageCities: {
		Kind:  domain.PageCities,
		Title: "Cities",
		Hero: domain.Hero{
			Headline:    "Cities that wrote history",
			Subheadline: "Bazaars, corniches and five thousand years of stories.",
			ImageURL:    "https://images.unsplash.com/photo-1572252009286-268acec5ca0a?w=1920",
		},
	},
	domain.PageHeritage: {
		Kind:  domain.PageHeritage,
		Title: "Heritage",
		Hero: domain.Hero{
			Headline:    "Walk among the pharaohs",
			Subheadline: "Temples, tombs and the last wonder of the ancient world.",
			ImageURL:    "https://images.unsplash.com/photo-1503177119275-0aa32b3a9368?w=1920",
		},
	},
	domain.PagePackages: {
		Kind:  domain.PagePackages,
		Title: "Packages",
		Hero: domain.Hero{
			Headline:    "Trips planned end to end",
			Subheadline: "Hand-picked itineraries with guides, transfers and stays included.",
			ImageURL:    "https://images.unsplash.com/photo-1562679299-266edbefd6d7?w=1920",
		},
	},
	domain.PageDiscounts: {
		Kind:  domain.PageDiscounts,
		Title: "Discounts",
		Hero: domain.Hero{
			Headline:    "Deals of the season",
			Subheadline: "Limited offers on cruises, resorts and heritage passes.",
			ImageURL:    "https://images.unsplash.com/photo-1568322445389-f64ac2515020?w=1920",
		},
	},
}

// Page returns the page metadata for kind.
func Page(kind domain.PageKind) (domain.Page, bool) {
	page, ok := pages[kind]
	if !ok {
		return domain.Page{}, false
	}
	page.Route = kind.Route()
	if page.Hero.VideoEmbedURL != nil {
		page.Hero.VideoEmbedURL = stringPtr(*page.Hero.VideoEmbedURL)
	}
	return page, true
}

// Pages returns every listing page in navigation order.
func Pages() []domain.Page {
	out := make([]domain.Page, 0, len(domain.PageKindsOrdered))
	for _, kind := range domain.PageKindsOrdered {
		if page, ok := Page(kind); ok {
			out = append(out, page)
		}
	}
	return out
}

// Cards projects the literal list behind kind into cards, in list order.
func Cards(kind domain.PageKind) ([]domain.Card, bool) {
	switch kind {
	case domain.PageBeaches:
		return project(Beaches()), true
	case domain.PageCities:
		return project(Cities()), true
	case domain.PageHeritage:
		return project(HeritageSites()), true
	case domain.PagePackages:
		return project(Packages()), true
	case domain.PageDiscounts:
		return project(Discounts()), true
	default:
		return nil, false
	}
}

type carder interface {
	Card(position int) domain.Card
}

func project[T carder](records []T) []domain.Card {
	cards := make([]domain.Card, 0, len(records))
	for i, record := range records {
		cards = append(cards, record.Card(i))
	}
	return cards
}

func stringPtr(v string) *string {
	return &v
}
