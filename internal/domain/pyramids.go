package domain

type TicketPrice struct {
	Category string `json:"category"`
	Price    string `json:"price"`
}

type OpeningHours struct {
	Season string `json:"season"`
	Days   string `json:"days"`
	Hours  string `json:"hours"`
}

type Activity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type Restaurant struct {
	Name        string `json:"name"`
	Cuisine     string `json:"cuisine"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type Fact struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// PyramidsGuide backs the Giza detail page.
type PyramidsGuide struct {
	Title        string         `json:"title"`
	Route        string         `json:"route"`
	Hero         Hero           `json:"hero"`
	Overview     string         `json:"overview"`
	TicketPrices []TicketPrice  `json:"ticket_prices"`
	OpeningHours []OpeningHours `json:"opening_hours"`
	Activities   []Activity     `json:"activities"`
	Restaurants  []Restaurant   `json:"restaurants"`
	Facts        []Fact         `json:"facts"`
}
