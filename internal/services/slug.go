package services

import "strings"

// fallbackSlug is assigned when a record is created before its name is set.
const fallbackSlug = "name-of-event"

// deriveSlug converts a display name to the event's identifier: lowercase,
// kebab-case, with non-alphanumeric runs collapsed to a single hyphen and
// edge hyphens trimmed. An empty name yields the fixed fallback. Slugs are
// assigned once at creation; updates never re-derive them.
func deriveSlug(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	slug := b.String()
	if slug == "" {
		return fallbackSlug
	}
	return slug
}
