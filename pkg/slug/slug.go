// Package slug derives URL-safe slugs for posts, jobs, projects and
// companies. A slug is the lowercased, dash-separated title followed by a
// short suffix of the entity id, so duplicate titles still yield unique
// slugs. Editing a title regenerates the slug.
package slug

import (
	"strings"
	"unicode"
)

// suffixLen is how many characters of the entity id are appended.
const suffixLen = 8

// Make returns the slug for a title and entity id.
func Make(title, id string) string {
	base := slugify(title)
	suffix := id
	if len(suffix) > suffixLen {
		suffix = suffix[:suffixLen]
	}
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true // suppress leading dash
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if r > unicode.MaxASCII {
				continue
			}
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
