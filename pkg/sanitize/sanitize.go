// Package sanitize strips markup from user-supplied text before it is stored.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// maxPasses bounds how many layers of entity encoding are peeled off.
const maxPasses = 4

// strict removes every element and attribute.
var strict = bluemonday.StrictPolicy()

// Text returns s without HTML tags and with surrounding space trimmed.
// Entities that the policy escapes are decoded again so plain text such as
// "Q&A" round-trips unchanged. Decoding can reveal encoded markup, so the
// policy runs again until the text stops changing. Input still changing
// after maxPasses is returned in its escaped form.
func Text(s string) string {
	if s == "" {
		return ""
	}

	for i := 0; i < maxPasses; i++ {
		out := html.UnescapeString(strict.Sanitize(s))
		if out == s {
			return strings.TrimSpace(out)
		}
		s = out
	}

	return strings.TrimSpace(strict.Sanitize(s))
}
