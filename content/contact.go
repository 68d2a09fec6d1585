package content

// ServiceOther is the catch-all choice of the contact form.
const ServiceOther = "Other"

// ContactChannel is a way to reach the writer besides the form.
type ContactChannel struct {
	Title       string `json:"title"`
	Details     string `json:"details"`
	Description string `json:"description"`
}

// ContactOptions are the choices offered by the contact form.
type ContactOptions struct {
	Services []string         `json:"services"`
	Budgets  []string         `json:"budgets"`
	Channels []ContactChannel `json:"channels"`
}

var budgetRanges = []string{
	"Under 50,000 NGN",
	"50,000 - 100,000 NGN",
	"100,000 - 250,000 NGN",
	"250,000 - 500,000 NGN",
	"500,000+ NGN",
	"Let's discuss",
}

// Contact builds the form options. email is listed as a channel when set.
func Contact(email string) ContactOptions {
	names := make([]string, 0, len(services)+1)
	for _, s := range services {
		names = append(names, s.Title)
	}
	names = append(names, ServiceOther)

	channels := []ContactChannel{}
	if email != "" {
		channels = append(channels, ContactChannel{Title: "Email", Details: email, Description: "Send me a message anytime"})
	}
	channels = append(channels,
		ContactChannel{Title: "Location", Details: "Anambra, Nigeria", Description: "Available for remote work globally"},
		ContactChannel{Title: "Response Time", Details: "Within 24 hours", Description: "Usually much faster!"},
	)
	return ContactOptions{
		Services: names,
		Budgets:  append([]string{}, budgetRanges...),
		Channels: channels,
	}
}

// IsContactService reports whether s may be chosen in the contact form.
func IsContactService(s string) bool {
	if s == ServiceOther {
		return true
	}
	for _, svc := range services {
		if svc.Title == s {
			return true
		}
	}
	return false
}

// IsBudget reports whether b is an offered budget range. Empty means not given.
func IsBudget(b string) bool {
	if b == "" {
		return true
	}
	for _, r := range budgetRanges {
		if r == b {
			return true
		}
	}
	return false
}
