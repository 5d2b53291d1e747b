package content

import "github.com/njprem/VisitEgypt_BackEnd/internal/domain"

var discounts = []domain.Discount{
	{
		ID:              1,
		Title:           "Early Bird Nile Cruise",
		Description:     "Book sixty days ahead and save on the Luxor to Aswan cruise.",
		ImageURL:        "https://images.unsplash.com/photo-1568322445389-f64ac2515020?w=1200",
		Route:           "/packages",
		Percent:         20,
		OriginalPrice:   1100,
		DiscountedPrice: 880,
		Currency:        "USD",
		ValidUntil:      "2026-12-31",
	},
	{
		ID:              2,
		Title:           "Family Beach Escape",
		Description:     "Kids stay free at partner resorts in Hurghada and El Gouna.",
		ImageURL:        "https://images.unsplash.com/photo-1505228395891-9a51e7e86bf6?w=1200",
		Route:           "/beaches",
		Percent:         30,
		OriginalPrice:   900,
		DiscountedPrice: 630,
		Currency:        "USD",
		ValidUntil:      "2026-11-30",
	},
	{
		ID:              3,
		Title:           "Student Heritage Pass",
		Description:     "Half-price entry to Giza, Saqqara and Karnak with a valid student card.",
		ImageURL:        "https://images.unsplash.com/photo-1600093463592-8e36ae95ef56?w=1200",
		Route:           "/heritage",
		Percent:         50,
		OriginalPrice:   120,
		DiscountedPrice: 60,
		Currency:        "USD",
		ValidUntil:      "2027-06-30",
	},
	{
		ID:              4,
		Title:           "Desert Weekend Deal",
		Description:     "Two nights in the White Desert for the price of one on weekend departures.",
		ImageURL:        "https://images.unsplash.com/photo-1547234935-80c7145ec969?w=1200",
		Route:           domain.PlaceholderRoute,
		Percent:         15,
		OriginalPrice:   420,
		DiscountedPrice: 357,
		Currency:        "USD",
		ValidUntil:      "2026-10-31",
	},
}

// Discounts returns a copy of the discounts list.
func Discounts() []domain.Discount {
	out := make([]domain.Discount, len(discounts))
	copy(out, discounts)
	return out
}
