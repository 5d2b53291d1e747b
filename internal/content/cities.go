package content

import "github.com/njprem/VisitEgypt_BackEnd/internal/domain"

var cities = []domain.City{
	{
		ID:          1,
		Name:        "Cairo",
		Description: "A thousand minarets, the Khan el-Khalili bazaar and the Grand Egyptian Museum, all a short drive from the Giza plateau.",
		ImageURL:    "https://images.unsplash.com/photo-1572252009286-268acec5ca0a?w=1200",
		Route:       "/heritage/pyramids",
		Rating:      4.6,
		Highlights:  []string{"Islamic Cairo", "Nile felucca", "Grand Egyptian Museum"},
	},
	{
		ID:          2,
		Name:        "Alexandria",
		Description: "The Mediterranean pearl founded by Alexander the Great, with its Corniche, catacombs and the modern Bibliotheca.",
		ImageURL:    "https://images.unsplash.com/photo-1600520611035-84157ad4084d?w=1200",
		Route:       domain.PlaceholderRoute,
		Rating:      4.5,
		Highlights:  []string{"Bibliotheca Alexandrina", "Qaitbay Citadel", "Seafood"},
	},
	{
		ID:          3,
		Name:        "Luxor",
		Description: "The world's greatest open-air museum: Karnak, Luxor Temple and the Valley of the Kings across the river.",
		ImageURL:    "https://images.unsplash.com/photo-1568322445389-f64ac2515020?w=1200",
		Route:       "/heritage",
		Rating:      4.8,
		Highlights:  []string{"Hot-air balloons", "Karnak", "West Bank tombs"},
	},
	{
		ID:          4,
		Name:        "Aswan",
		Description: "Granite islands, Nubian villages painted in bright colours and the calmest stretch of the Nile.",
		ImageURL:    "https://images.unsplash.com/photo-1539768942893-daf53e448371?w=1200",
		Route:       domain.PlaceholderRoute,
		Rating:      4.7,
		Highlights:  []string{"Philae Temple", "Nubian village", "Felucca sunset"},
	},
	{
		ID:          5,
		Name:        "Siwa",
		Description: "A remote desert oasis of salt lakes, date palms and mud-brick ruins near the Libyan border.",
		ImageURL:    "https://images.unsplash.com/photo-1547234935-80c7145ec969?w=1200",
		Route:       domain.PlaceholderRoute,
		Rating:      4.6,
		Highlights:  []string{"Salt lakes", "Shali fortress", "Desert camping"},
	},
	{
		ID:          6,
		Name:        "Port Said",
		Description: "Colonial-era balconies along the Suez Canal, where ships glide past the city's waterfront.",
		ImageURL:    "https://images.unsplash.com/photo-1586861203927-800a5acdcc4d?w=1200",
		Route:       domain.PlaceholderRoute,
		Rating:      4.2,
		Highlights:  []string{"Suez Canal", "Free-zone shopping", "Ferry rides"},
	},
}

// Cities returns a copy of the cities list.
func Cities() []domain.City {
	out := make([]domain.City, len(cities))
	for i, item := range cities {
		item.Highlights = append([]string(nil), item.Highlights...)
		out[i] = item
	}
	return out
}
