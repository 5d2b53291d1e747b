package content

import "github.com/njprem/VisitEgypt_BackEnd/internal/domain"

var beaches = []domain.Beach{
	{
		ID:          1,
		Name:        "Naama Bay",
		Location:    "Sharm El Sheikh",
		Description: "Sheltered turquoise water, coral gardens a few fins from the shore and a promenade that stays lively after sunset.",
		ImageURL:    "https://images.unsplash.com/photo-1544550581-5f7ceaf7f992?w=1200",
		Route:       domain.PlaceholderRoute,
		Rating:      4.7,
		Highlights:  []string{"Snorkelling", "Night promenade", "Family friendly"},
	},
	{
		ID:          2,
		Name:        "Giftun Island",
		Location:    "Hurghada",
		Description: "A protected island in the Red Sea with powder-white sand and shallow lagoons reached by a short boat ride.",
		ImageURL:    "https://images.unsplash.com/photo-1568322445389-f64ac2515020?w=1200",
		Route:       domain.PlaceholderRoute,
		Rating:      4.6,
		Highlights:  []string{"Boat trips", "Marine reserve", "Dolphin spotting"},
	},
	{
		ID:          3,
		Name:        "Blue Hole",
		Location:    "Dahab",
		Description: "The legendary reef sinkhole where freedivers and snorkellers meet against a backdrop of Sinai mountains.",
		ImageURL:    "https://images.unsplash.com/photo-1582967788606-a171c1080cb0?w=1200",
		Route:       domain.PlaceholderRoute,
		Rating:      4.8,
		Highlights:  []string{"Freediving", "Bedouin cafes", "Mountain views"},
	},
	{
		ID:          4,
		Name:        "Abu Dabbab",
		Location:    "Marsa Alam",
		Description: "A wide sandy bay famous for resident green turtles and the occasional dugong grazing on seagrass.",
		ImageURL:    "https://images.unsplash.com/photo-1559128010-7c1ad6e1b6a5?w=1200",
		Route:       domain.PlaceholderRoute,
		Rating:      4.7,
		Highlights:  []string{"Sea turtles", "Dugongs", "Quiet resorts"},
	},
	{
		ID:          5,
		Name:        "Mangroovy Beach",
		Location:    "El Gouna",
		Description: "Steady afternoon winds and flat water make this lagoon a favourite spot for kitesurfers of every level.",
		ImageURL:    "https://images.unsplash.com/photo-1505228395891-9a51e7e86bf6?w=1200",
		Route:       domain.PlaceholderRoute,
		Rating:      4.5,
		Highlights:  []string{"Kitesurfing", "Beach bars", "Lagoon"},
	},
	{
		ID:          6,
		Name:        "Ageeba Beach",
		Location:    "Marsa Matrouh",
		Description: "Limestone cliffs drop into Mediterranean water in every shade of blue on Egypt's north coast.",
		ImageURL:    "https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=1200",
		Route:       domain.PlaceholderRoute,
		Rating:      4.6,
		Highlights:  []string{"Cliff views", "Mediterranean", "Sunsets"},
	},
}

// Beaches returns a copy of the beaches list.
func Beaches() []domain.Beach {
	out := make([]domain.Beach, len(beaches))
	for i, item := range beaches {
		item.Highlights = append([]string(nil), item.Highlights...)
		out[i] = item
	}
	return out
}
