package docspan

import (
	"strconv"
	"strings"
	"unicode"
)

// LevelAttr is the span attribute holding a heading level, "1" through "6".
const LevelAttr = "level"

// Section is a heading of a document.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
	Span   Span   `json:"span"`
}

// Sections returns the headings of doc in document order. A heading is any
// span with a valid LevelAttr. Anchors come from the span's "id" attribute
// when present; otherwise they are generated from the title, with numeric
// suffixes on duplicates.
func Sections(doc *Document) []Section {
	var sections []Section
	anchorCounts := make(map[string]int)

	for _, s := range doc.Spans {
		level, err := strconv.Atoi(s.Attributes[LevelAttr])
		if err != nil || level < 1 || level > 6 {
			continue
		}

		title := strings.Join(strings.Fields(doc.Content(s)), " ")
		anchor := s.Attributes["id"]
		if anchor == "" {
			base := generateAnchor(title)
			anchor = base
			if count, exists := anchorCounts[base]; exists {
				anchor = base + "-" + strconv.Itoa(count)
				anchorCounts[base]++
			} else {
				anchorCounts[base] = 1
			}
		}

		sections = append(sections, Section{
			Level:  level,
			Title:  title,
			Anchor: anchor,
			Span:   s,
		})
	}

	return sections
}

// generateAnchor creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
