// Package content is the fixed marketing copy: services, portfolio, about and contact options.
package content

// Service is an offered writing service.
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Price       string   `json:"price"`
}

// Step is one stage of the working process.
type Step struct {
	Number      string `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var services = []Service{
	{
		ID:          "creative",
		Title:       "Creative Writing",
		Description: "Bring your imagination to life with compelling fiction, poetry, and storytelling that resonates with readers.",
		Features: []string{
			"Short stories and novellas",
			"Poetry collections",
			"Character development",
			"Plot structure and pacing",
			"Creative editing and feedback",
		},
		Price: "From 50,000 NGN",
	},
	{
		ID:          "ghostwriting",
		Title:       "Ghostwriting",
		Description: "Your ideas, my words. Professional ghostwriting services for books, speeches, and articles that capture your unique voice.",
		Features: []string{
			"Full-length books and memoirs",
			"Speeches and presentations",
			"Articles and thought pieces",
			"Complete confidentiality",
			"Voice matching and style adaptation",
		},
		Price: "From 100,000 NGN",
	},
	{
		ID:          "content",
		Title:       "Content Writing",
		Description: "SEO-optimized blogs, website content, and marketing materials that engage your audience and drive results.",
		Features: []string{
			"SEO blog posts",
			"Website copy",
			"Marketing materials",
			"Social media content",
			"Email campaigns",
		},
		Price: "From 75,000 NGN",
	},
	{
		ID:          "resume",
		Title:       "CV/Resume Writing",
		Description: "Stand out from the crowd with professionally crafted resumes and cover letters that showcase your unique value.",
		Features: []string{
			"ATS-optimized resumes",
			"Custom cover letters",
			"LinkedIn profile optimization",
			"Industry-specific formatting",
			"Interview preparation tips",
		},
		Price: "From 125,000 NGN",
	},
	{
		ID:          "business",
		Title:       "Business Writing",
		Description: "Professional proposals, reports, and branding content that communicates your business value effectively.",
		Features: []string{
			"Business proposals",
			"Company reports",
			"Branding content",
			"Press releases",
			"Executive communications",
		},
		Price: "From 150,000 NGN",
	},
	{
		ID:          "academic",
		Title:       "Academic Writing",
		Description: "Research papers, essays, and academic content that meets the highest scholarly standards.",
		Features: []string{
			"Research papers",
			"Essays and dissertations",
			"Literature reviews",
			"Citation and formatting",
			"Academic editing",
		},
		Price: "From 80,000 NGN",
	},
}

var processSteps = []Step{
	{Number: "01", Title: "Consultation", Description: "Understanding your vision and requirements"},
	{Number: "02", Title: "Planning", Description: "Creating a detailed project roadmap"},
	{Number: "03", Title: "Writing", Description: "Crafting your content with precision and care"},
	{Number: "04", Title: "Refinement", Description: "Polishing until it exceeds expectations"},
}

// Services returns the offered services in display order.
func Services() []Service {
	out := make([]Service, len(services))
	for i, s := range services {
		s.Features = append([]string{}, s.Features...)
		out[i] = s
	}
	return out
}

// ServiceByID looks a service up by its id.
func ServiceByID(id string) (Service, bool) {
	for _, s := range Services() {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

func ProcessSteps() []Step {
	return append([]Step{}, processSteps...)
}
