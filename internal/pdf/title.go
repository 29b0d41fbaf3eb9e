// Package pdf pulls paper metadata out of PDF files for patching the
// psychology paper-metadata relation.
package pdf

import (
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// Title length bounds. Journal titles shorter than the floor are usually
// running heads or page furniture; longer ones are abstract text.
const (
	minTitleLen = 20
	maxTitleLen = 200
)

// ExtractTitle guesses a paper's title from the text of its first page.
// Scanned psychology papers open with journal front matter (running head,
// volume line, DOI, copyright notice); those lines are skipped and the
// first remaining line of plausible title length wins. Returns an empty
// string when no line qualifies, so the caller can demand --title.
func ExtractTitle(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if r.NumPage() < 1 {
		return "", nil
	}
	page := r.Page(1)
	if page.V.IsNull() {
		return "", nil
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if plausibleTitle(line) {
			return line, nil
		}
	}
	return "", nil
}

// plausibleTitle reports whether a first-page line looks like a title
// rather than journal front matter.
func plausibleTitle(line string) bool {
	if len(line) < minTitleLen || len(line) > maxTitleLen {
		return false
	}
	// Running heads are set in full caps; titles mix case.
	if strings.IndexFunc(line, unicode.IsLower) < 0 {
		return false
	}
	return !isFrontMatter(line)
}

// frontMatterMarkers flag the header and footer lines that precede the
// title on scanned journal pages.
var frontMatterMarkers = []string{
	"journal of",
	"psychological review",
	"psychological bulletin",
	"annual review",
	"copyright",
	"all rights reserved",
	"american psychological association",
	"doi:",
	"doi.org",
	"issn",
	"published online",
	"first published",
	"received:",
	"accepted:",
	"downloaded from",
	"this content",
}

func isFrontMatter(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range frontMatterMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	// Citation lines: "Vol. 86, No. 2, pp. 124-139" and variants.
	if strings.Contains(lower, "vol.") || strings.Contains(lower, "pp.") {
		return true
	}
	if strings.Contains(lower, "volume") && strings.Contains(lower, "issue") {
		return true
	}
	return false
}
