package catalog

type Painting struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Artist      string  `json:"artist"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Dimensions  string  `json:"dimensions"`
	Medium      string  `json:"medium"`
	Year        int     `json:"year"`
	ImageURL    string  `json:"imageUrl"`
	Featured    bool    `json:"featured"`
	Sold        bool    `json:"sold"`
}

const DefaultArtist = "Cindy Roy-Boutin"

// Seed returns a fresh copy of the gallery's fixed painting list.
func Seed() []Painting {
	return []Painting{
		{
			ID:          "1",
			Title:       "Prairie d'Été",
			Artist:      DefaultArtist,
			Description: "Une représentation vibrante d'une prairie d'été en pleine floraison. Cette œuvre capture l'essence des chaudes journées d'été avec ses couleurs vives et ses coups de pinceau fluides. Le spectateur est invité à vivre la tranquillité et la beauté de la nature à son apogée.",
			Price:       1200,
			Dimensions:  "60 x 90 cm",
			Medium:      "Huile sur toile",
			Year:        2022,
			ImageURL:    "/images/artwork/test.jpg",
			Featured:    true,
		},
		{
			ID:          "2",
			Title:       "Vue Montagnarde",
			Artist:      DefaultArtist,
			Description: "Un paysage atmosphérique représentant une vue sereine sur la montagne. La peinture crée un sentiment de profondeur et de grandeur, avec des sommets lointains émergeant de la brume matinale. La palette de couleurs fraîches évoque un sentiment de calme et de contemplation.",
			Price:       1450,
			Dimensions:  "75 x 100 cm",
			Medium:      "Acrylique sur toile",
			Year:        2023,
			ImageURL:    "/images/artwork/2_vue-montagnarde.jpg",
			Featured:    true,
		},
		{
			ID:          "3",
			Title:       "Pins Ancestraux",
			Artist:      DefaultArtist,
			Description: "Une étude de pins ancestraux dans une clairière forestière. Cette peinture explore la relation entre la lumière et l'ombre lorsque la lumière du soleil filtre à travers la canopée dense. Le travail texturé du pinceau crée une qualité tactile qui donne vie à la scène.",
			Price:       950,
			Dimensions:  "50 x 60 cm",
			Medium:      "Huile sur lin",
			Year:        2021,
			ImageURL:    "/images/artwork/3_pins-ancestraux.jpg",
		},
		{
			ID:          "4",
			Title:       "Canopée Forestière",
			Artist:      DefaultArtist,
			Description: "Une vue vers le haut à travers une canopée forestière dense. Cette perspective unique invite le spectateur à regarder vers le ciel, où la lumière du soleil crée une cathédrale naturelle de lumière et de couleur. La peinture capture un moment d'émerveillement et de connexion avec la nature.",
			Price:       1100,
			Dimensions:  "60 x 60 cm",
			Medium:      "Huile sur toile",
			Year:        2022,
			ImageURL:    "/images/artwork/4_riviere-tranquille.jpg",
			Sold:        true,
		},
		{
			ID:          "5",
			Title:       "Lumière Tachetée",
			Artist:      DefaultArtist,
			Description: "Une étude de la lumière qui passe à travers les feuilles des arbres, créant des motifs sur le sol de la forêt. Cette pièce contemplative explore la nature éphémère de la lumière et la beauté trouvée dans les moments fugaces. La palette chaude crée un sentiment de tranquillité et de nostalgie.",
			Price:       1300,
			Dimensions:  "70 x 90 cm",
			Medium:      "Huile sur toile",
			Year:        2023,
			ImageURL:    "/images/artwork/5_crepuscule-dore.jpg",
			Featured:    true,
		},
		{
			ID:          "6",
			Title:       "Côte Sauvage",
			Artist:      DefaultArtist,
			Description: "Une représentation dynamique d'une côte sauvage battue par les vagues. Cette œuvre capture la puissance et la beauté brute de l'océan, avec des vagues écumantes se brisant contre des falaises escarpées. Les tons bleus profonds et les accents blancs créent un contraste saisissant.",
			Price:       1550,
			Dimensions:  "80 x 120 cm",
			Medium:      "Acrylique sur toile",
			Year:        2024,
			ImageURL:    "/images/artwork/6_cote-sauvage.jpg",
			Featured:    true,
		},
	}
}
