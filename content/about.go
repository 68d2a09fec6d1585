package content

// Value is a principle shown on the about page.
type Value struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Stat is a headline number on the about page.
type Stat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

// About is everything the about page shows.
type About struct {
	Values []Value `json:"values"`
	Stats  []Stat  `json:"stats"`
}

func AboutPage() About {
	return About{
		Values: []Value{
			{Title: "Authenticity", Description: "Every piece of writing reflects the genuine voice and vision of the client."},
			{Title: "Excellence", Description: "Committed to delivering work that exceeds expectations every single time."},
			{Title: "Transformation", Description: "Believing in the power of words to create positive change and new opportunities."},
		},
		Stats: []Stat{
			{Number: "500+", Label: "Projects Completed"},
			{Number: "200+", Label: "Happy Clients"},
			{Number: "5+", Label: "Years Experience"},
			{Number: "50+", Label: "Stories Published"},
		},
	}
}
