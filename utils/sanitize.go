package utils

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// SanitizeHTML keeps safe markup (links, emphasis, lists) and drops scripts and handlers.
// Used on rendered post bodies.
func SanitizeHTML(input string) string {
	return ugcPolicy.Sanitize(input)
}

// StripTags removes all markup, for plain text fields such as contact inquiries.
func StripTags(input string) string {
	return html.UnescapeString(strictPolicy.Sanitize(input))
}
