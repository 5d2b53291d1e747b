package content

import "github.com/njprem/VisitEgypt_BackEnd/internal/domain"

var packages = []domain.Package{
	{
		ID:           1,
		Title:        "Classic Cairo & Giza",
		Description:  "Four days between the pyramids, the Egyptian Museum and the old city's bazaars.",
		ImageURL:     "https://images.unsplash.com/photo-1503177119275-0aa32b3a9368?w=1200",
		Route:        "/heritage/pyramids",
		Price:        650,
		Currency:     "USD",
		DurationDays: 4,
		Rating:       4.7,
		Highlights:   []string{"Pyramids entry", "Museum guide", "Nile dinner cruise"},
	},
	{
		ID:           2,
		Title:        "Nile Cruise Luxor to Aswan",
		Description:  "Five nights aboard a riverboat stopping at Edfu and Kom Ombo temples.",
		ImageURL:     "https://images.unsplash.com/photo-1568322445389-f64ac2515020?w=1200",
		Route:        domain.PlaceholderRoute,
		Price:        1100,
		Currency:     "USD",
		DurationDays: 6,
		Rating:       4.8,
		Highlights:   []string{"Full board", "Temple visits", "Sunset felucca"},
	},
	{
		ID:           3,
		Title:        "Red Sea Diving Week",
		Description:  "Seven days of guided dives around Ras Mohammed and the Thistlegorm wreck.",
		ImageURL:     "https://images.unsplash.com/photo-1544550581-5f7ceaf7f992?w=1200",
		Route:        "/beaches",
		Price:        980,
		Currency:     "USD",
		DurationDays: 7,
		Rating:       4.6,
		Highlights:   []string{"12 dives", "Equipment", "Beach resort"},
	},
	{
		ID:           4,
		Title:        "White Desert Safari",
		Description:  "Camp beneath chalk formations in the Farafra depression with Bedouin guides.",
		ImageURL:     "https://images.unsplash.com/photo-1547234935-80c7145ec969?w=1200",
		Route:        domain.PlaceholderRoute,
		Price:        420,
		Currency:     "USD",
		DurationDays: 3,
		Rating:       4.5,
		Highlights:   []string{"4x4 transfers", "Desert camp", "Stargazing"},
	},
	{
		ID:           5,
		Title:        "Grand Egypt Explorer",
		Description:  "Twelve days from Alexandria to Abu Simbel, covering every major site in between.",
		ImageURL:     "https://images.unsplash.com/photo-1562679299-266edbefd6d7?w=1200",
		Route:        "/heritage",
		Price:        2450,
		Currency:     "USD",
		DurationDays: 12,
		Rating:       4.9,
		Highlights:   []string{"Domestic flights", "Egyptologist guide", "Abu Simbel"},
	},
}

// Packages returns a copy of the packages archive.
func Packages() []domain.Package {
	out := make([]domain.Package, len(packages))
	for i, item := range packages {
		item.Highlights = append([]string(nil), item.Highlights...)
		out[i] = item
	}
	return out
}
