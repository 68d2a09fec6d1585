package content

import "errors"

// PortfolioAll is the filter that shows every item.
const PortfolioAll = "all"

// ErrUnknownPortfolioCategory is returned for filters outside PortfolioFilters.
var ErrUnknownPortfolioCategory = errors.New("unknown portfolio category")

// PortfolioFilter is one filter tab.
type PortfolioFilter struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// PortfolioItem is a showcased piece of work.
type PortfolioItem struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Preview     string   `json:"preview"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
}

var portfolioFilters = []PortfolioFilter{
	{ID: PortfolioAll, Label: "All Work"},
	{ID: "creative", Label: "Creative"},
	{ID: "content", Label: "Content"},
	{ID: "business", Label: "Business"},
	{ID: "resume", Label: "Resumes"},
	{ID: "academic", Label: "Academic"},
}

var portfolioItems = []PortfolioItem{
	{
		ID:          1,
		Title:       "The Last Ember",
		Category:    "creative",
		Type:        "Short Story",
		Description: "A haunting tale of redemption set in a post-apocalyptic world where hope is the most precious commodity.",
		Preview:     "The city burned for three days before the rain came. Sarah watched from her window as the last ember died, carrying with it the dreams of a million souls...",
		Image:       "https://images.pexels.com/photos/1261728/pexels-photo-1261728.jpeg?auto=compress&cs=tinysrgb&w=800",
		Tags:        []string{"Fiction", "Drama", "Post-Apocalyptic"},
	},
	{
		ID:          2,
		Title:       "Digital Marketing Strategy Blog",
		Category:    "content",
		Type:        "Blog Series",
		Description: "A comprehensive 10-part blog series on modern digital marketing strategies for small businesses.",
		Preview:     "10 Essential Digital Marketing Strategies Every Small Business Needs in 2024. The digital landscape has evolved dramatically...",
		Image:       "https://images.pexels.com/photos/265087/pexels-photo-265087.jpeg?auto=compress&cs=tinysrgb&w=800",
		Tags:        []string{"SEO", "Marketing", "Business"},
	},
	{
		ID:          3,
		Title:       "Executive Resume Transformation",
		Category:    "resume",
		Type:        "Professional Resume",
		Description: "Complete career transformation for a senior executive transitioning from finance to tech.",
		Preview:     "Before: Generic finance resume. After: Compelling tech leadership narrative that landed 3 executive interviews...",
		Image:       "https://images.pexels.com/photos/590016/pexels-photo-590016.jpg?auto=compress&cs=tinysrgb&w=800",
		Tags:        []string{"Executive", "Career Change", "Leadership"},
	},
	{
		ID:          4,
		Title:       "Whispers of the Phoenix",
		Category:    "creative",
		Type:        "Poetry Collection",
		Description: "An intimate collection of poems exploring themes of rebirth, transformation, and personal growth.",
		Preview:     "From ashes we rise, not because we must, but because in the burning we discovered who we truly are...",
		Image:       "https://images.pexels.com/photos/1831234/pexels-photo-1831234.jpeg?auto=compress&cs=tinysrgb&w=800",
		Tags:        []string{"Poetry", "Personal Growth", "Inspiration"},
	},
	{
		ID:          5,
		Title:       "SaaS Company Proposal",
		Category:    "business",
		Type:        "Business Proposal",
		Description: "A winning proposal that secured $2M in funding for a emerging SaaS startup.",
		Preview:     "The future of customer relationship management lies not in complexity, but in elegant simplicity...",
		Image:       "https://images.pexels.com/photos/3184291/pexels-photo-3184291.jpeg?auto=compress&cs=tinysrgb&w=800",
		Tags:        []string{"SaaS", "Funding", "Strategy"},
	},
	{
		ID:          6,
		Title:       "Climate Change Research Paper",
		Category:    "academic",
		Type:        "Research Paper",
		Description: "Academic research on the socioeconomic impacts of climate change in coastal communities.",
		Preview:     "The intersection of environmental degradation and social inequality creates a complex web of challenges...",
		Image:       "https://images.pexels.com/photos/1229861/pexels-photo-1229861.jpeg?auto=compress&cs=tinysrgb&w=800",
		Tags:        []string{"Climate", "Research", "Sociology"},
	},
}

func PortfolioFilters() []PortfolioFilter {
	return append([]PortfolioFilter{}, portfolioFilters...)
}

// Portfolio returns the items in category, or every item for "all" or "".
func Portfolio(category string) ([]PortfolioItem, error) {
	if category == "" {
		category = PortfolioAll
	}
	known := false
	for _, f := range portfolioFilters {
		if f.ID == category {
			known = true
			break
		}
	}
	if !known {
		return nil, ErrUnknownPortfolioCategory
	}
	out := []PortfolioItem{}
	for _, it := range portfolioItems {
		if category == PortfolioAll || it.Category == category {
			it.Tags = append([]string{}, it.Tags...)
			out = append(out, it)
		}
	}
	return out, nil
}
