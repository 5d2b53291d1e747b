package content

import "github.com/njprem/VisitEgypt_BackEnd/internal/domain"

var heritageSites = []domain.ArchaeologicalSite{
	{
		ID:          1,
		Name:        "Pyramids of Giza",
		Era:         "Old Kingdom",
		Location:    "Giza",
		Description: "The last standing wonder of the ancient world, guarded by the Great Sphinx.",
		ImageURL:    "https://images.unsplash.com/photo-1503177119275-0aa32b3a9368?w=1200",
		Route:       "/heritage/pyramids",
		Rating:      4.9,
	},
	{
		ID:          2,
		Name:        "Karnak Temple",
		Era:         "Middle Kingdom to Ptolemaic",
		Location:    "Luxor",
		Description: "Two thousand years of pharaohs added to this vast complex of pylons, obelisks and the Great Hypostyle Hall.",
		ImageURL:    "https://images.unsplash.com/photo-1608111283303-0d8d5e4c2e14?w=1200",
		Route:       domain.PlaceholderRoute,
		Rating:      4.8,
	},
	{
		ID:          3,
		Name:        "Abu Simbel",
		Era:         "New Kingdom",
		Location:    "Aswan Governorate",
		Description: "Ramesses II's rock-cut temples, moved block by block in the 1960s to escape the rising waters of Lake Nasser.",
		ImageURL:    "https://images.unsplash.com/photo-1562679299-266edbefd6d7?w=1200",
		Route:       domain.PlaceholderRoute,
		Rating:      4.9,
	},
	{
		ID:          4,
		Name:        "Valley of the Kings",
		Era:         "New Kingdom",
		Location:    "Luxor West Bank",
		Description: "Sixty-odd royal tombs cut into the Theban hills, including the tomb of Tutankhamun.",
		ImageURL:    "https://images.unsplash.com/photo-1600520611035-84157ad4084d?w=1200",
		Route:       domain.PlaceholderRoute,
		Rating:      4.8,
	},
	{
		ID:          5,
		Name:        "Philae Temple",
		Era:         "Ptolemaic",
		Location:    "Aswan",
		Description: "The island sanctuary of Isis, reached by boat and lit up at night for the sound-and-light show.",
		ImageURL:    "https://images.unsplash.com/photo-1539768942893-daf53e448371?w=1200",
		Route:       domain.PlaceholderRoute,
		Rating:      4.7,
	},
	{
		ID:          6,
		Name:        "Saqqara",
		Era:         "Early Dynastic to Old Kingdom",
		Location:    "Memphis Necropolis",
		Description: "Home of Djoser's Step Pyramid, the oldest monumental stone building in the world.",
		ImageURL:    "https://images.unsplash.com/photo-1600093463592-8e36ae95ef56?w=1200",
		Route:       domain.PlaceholderRoute,
		Rating:      4.6,
	},
}

// HeritageSites returns a copy of the archaeological sites list.
func HeritageSites() []domain.ArchaeologicalSite {
	out := make([]domain.ArchaeologicalSite, len(heritageSites))
	copy(out, heritageSites)
	return out
}
