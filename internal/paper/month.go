package paper

import "strings"

// Month resolves the publication month of an LLM paper as a "YYYY-MM" string.
//
// Resolution policy: an explicit publication date wins, truncated to its
// year-month prefix. Without one, the month is inferred from an
// arXiv-style identifier URL ending in "/abs/YYMM.NNNNN", contributing year
// 2000+YY and month MM. Papers with neither, or with an out-of-range month
// code, are excluded from time series (ok is false).
func Month(p LLMPaper) (month string, ok bool) {
	if len(p.PublicationDate) >= 7 {
		return p.PublicationDate[:7], true
	}
	return monthFromIdentifier(p.IdentifierURL)
}

// monthFromIdentifier extracts "20YY-MM" from an identifier URL containing
// an "/abs/YYMM.NNNNN" segment. Month codes outside 01-12 are rejected
// rather than clamped.
func monthFromIdentifier(url string) (string, bool) {
	idx := strings.LastIndex(url, "/abs/")
	if idx < 0 {
		return "", false
	}
	code := url[idx+len("/abs/"):]
	if len(code) < 5 || code[4] != '.' {
		return "", false
	}
	yy := code[:2]
	mm := code[2:4]
	if !allDigits(yy) || !allDigits(mm) {
		return "", false
	}
	m := int(mm[0]-'0')*10 + int(mm[1]-'0')
	if m < 1 || m > 12 {
		return "", false
	}
	return "20" + yy + "-" + mm, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
