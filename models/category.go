package models

// Blog categories.
const (
	CategoryCreative     = "Creative"
	CategoryCVTips       = "CV Tips"
	CategoryStorytelling = "Storytelling"
	CategoryWritingTips  = "Writing Tips"
	CategoryBusiness     = "Business"

	// CategoryAll is the filter sentinel that matches every post.
	CategoryAll = "all"
)

var categories = []string{
	CategoryCreative,
	CategoryCVTips,
	CategoryStorytelling,
	CategoryWritingTips,
	CategoryBusiness,
}

// Categories returns the enumerated blog categories in display order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// IsValidCategory reports whether c is one of the enumerated categories.
// The "all" sentinel is not a category.
func IsValidCategory(c string) bool {
	for _, v := range categories {
		if v == c {
			return true
		}
	}
	return false
}
