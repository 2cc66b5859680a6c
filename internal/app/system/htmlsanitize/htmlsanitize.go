// Package htmlsanitize cleans rich-text HTML submitted from the admin
// dashboard before it is stored.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// policy allows common formatting tags from rich text editors while
// stripping scripts, event handlers, and unknown attributes.
var policy = bluemonday.UGCPolicy()

// Sanitize returns html with disallowed tags and attributes removed.
func Sanitize(html string) string {
	return policy.Sanitize(html)
}
