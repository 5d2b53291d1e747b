package content

import "github.com/njprem/VisitEgypt_BackEnd/internal/domain"

var pyramidsGuide = domain.PyramidsGuide{
	Title: "The Pyramids of Giza",
	Route: "/heritage/pyramids",
	Hero: domain.Hero{
		Headline:      "The Pyramids of Giza",
		Subheadline:   "Forty-five centuries of history on the edge of Cairo.",
		ImageURL:      "https://images.unsplash.com/photo-1503177119275-0aa32b3a9368?w=1920",
		VideoEmbedURL: stringPtr(pyramidsVideoEmbedURL),
	},
	Overview: "Khufu, Khafre and Menkaure built their tombs on the Giza plateau around 2500 BC. " +
		"The Great Pyramid remained the tallest structure on Earth for nearly four thousand years.",
	TicketPrices: []domain.TicketPrice{
		{Category: "Foreign adult, plateau", Price: "700 EGP"},
		{Category: "Foreign student, plateau", Price: "350 EGP"},
		{Category: "Great Pyramid interior", Price: "1500 EGP"},
		{Category: "Egyptian adult, plateau", Price: "60 EGP"},
	},
	OpeningHours: []domain.OpeningHours{
		{Season: "Summer", Days: "Daily", Hours: "07:00 - 17:00"},
		{Season: "Winter", Days: "Daily", Hours: "07:00 - 16:00"},
		{Season: "Sound and light show", Days: "Daily", Hours: "19:00 - 21:00"},
	},
	Activities: []domain.Activity{
		{
			Name:        "Camel ride at the Panorama Point",
			Description: "The classic view of all nine pyramids lined up against the desert.",
			ImageURL:    "https://images.unsplash.com/photo-1539650116574-8efeb43e2750?w=1200",
		},
		{
			Name:        "Inside the Great Pyramid",
			Description: "Climb the Grand Gallery to the King's Chamber at the heart of Khufu's tomb.",
			ImageURL:    "https://images.unsplash.com/photo-1568322503050-1a9a7a6ae0d6?w=1200",
		},
		{
			Name:        "Sound and light show",
			Description: "The Sphinx narrates the plateau's history as the monuments are lit up at night.",
			ImageURL:    "https://images.unsplash.com/photo-1600520611035-84157ad4084d?w=1200",
		},
	},
	Restaurants: []domain.Restaurant{
		{
			Name:        "9 Pyramids Lounge",
			Cuisine:     "Egyptian",
			Description: "The only restaurant on the plateau itself, with terrace views of every pyramid.",
			Link:        "https://9pyramidslounge.com",
		},
		{
			Name:        "Khufu's",
			Cuisine:     "Modern Egyptian",
			Description: "Tasting menus of reworked Egyptian classics beside the Great Pyramid.",
			Link:        "https://www.khufus.com",
		},
		{
			Name:        "Andrea Mariouteya",
			Cuisine:     "Grill",
			Description: "Garden restaurant known for rotisserie chicken and freshly baked feteer.",
			Link:        "https://andreaegypt.com",
		},
	},
	Facts: []domain.Fact{
		{Title: "Height", Text: "The Great Pyramid originally stood 146.6 metres tall."},
		{Title: "Blocks", Text: "About 2.3 million stone blocks were used in its construction."},
		{Title: "Alignment", Text: "Its sides are aligned to the cardinal points to within a fraction of a degree."},
		{Title: "Sphinx", Text: "The Great Sphinx is carved from a single ridge of limestone bedrock."},
	},
}

// Pyramids returns a copy of the Giza detail page content.
func Pyramids() domain.PyramidsGuide {
	guide := pyramidsGuide
	guide.Hero.VideoEmbedURL = stringPtr(*pyramidsGuide.Hero.VideoEmbedURL)
	guide.TicketPrices = append([]domain.TicketPrice(nil), pyramidsGuide.TicketPrices...)
	guide.OpeningHours = append([]domain.OpeningHours(nil), pyramidsGuide.OpeningHours...)
	guide.Activities = append([]domain.Activity(nil), pyramidsGuide.Activities...)
	guide.Restaurants = append([]domain.Restaurant(nil), pyramidsGuide.Restaurants...)
	guide.Facts = append([]domain.Fact(nil), pyramidsGuide.Facts...)
	return guide
}
