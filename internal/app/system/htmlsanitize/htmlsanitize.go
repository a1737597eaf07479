// Package htmlsanitize strips unsafe markup from user-supplied content
// before it is stored or rendered. Post bodies may carry basic
// formatting; everything else is removed.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Sanitize returns s with scripts, event handlers, and javascript:
// URLs removed. Basic user-generated-content formatting is preserved.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// StripTags removes all markup, returning plain text. Used for
// one-line previews where no formatting is wanted.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return bluemonday.StrictPolicy().Sanitize(s)
}
