package utils

import (
	"github.com/microcosm-cc/bluemonday"
)

var richTextPolicy = bluemonday.UGCPolicy()

// SanitizeHTML strips scripts and unsafe markup from rich-text trip
// descriptions before they are persisted.
func SanitizeHTML(html string) string {
	return richTextPolicy.Sanitize(html)
}
