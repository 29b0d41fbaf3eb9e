package engine

import "strings"

// NormalizeTheoryName canonicalizes a theory name for the fallback join
// between subtopic theory references and the theory pool: lower-cased,
// a trailing "theories" singularized to "theory", and a leading "mental "
// qualifier stripped. "Mental Schema Theories" and "Schema Theory"
// normalize to the same string.
func NormalizeTheoryName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if strings.HasSuffix(n, "theories") {
		n = strings.TrimSuffix(n, "theories") + "theory"
	}
	n = strings.TrimPrefix(n, "mental ")
	return n
}
