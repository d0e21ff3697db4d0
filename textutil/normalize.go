package textutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// NoDescription is returned when a listing carries no usable text.
const NoDescription = "Описание отсутствует"

// NormalizeDescription turns a raw, possibly HTML-tagged description into
// clean plaintext with paragraphs separated by blank lines. Running it on
// its own output is a no-op.
func NormalizeDescription(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return NoDescription
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return NoDescription
	}

	content := strings.TrimSpace(doc.Text())
	if content == "" {
		return NoDescription
	}

	var paragraphs []string
	if doc.Find("p").Length() == 0 {
		// Flat text: treat each sentence as its own paragraph.
		for _, s := range strings.Split(content, ". ") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if !strings.HasSuffix(s, ".") {
				s += "."
			}
			paragraphs = append(paragraphs, s)
		}
	} else {
		doc.Find("p").Each(func(_ int, p *goquery.Selection) {
			if text := strings.TrimSpace(p.Text()); text != "" {
				paragraphs = append(paragraphs, text)
			}
		})
	}

	if len(paragraphs) == 0 {
		return NoDescription
	}

	return cleanSpaces(strings.Join(paragraphs, "\n\n"))
}

// cleanSpaces replaces non-breaking spaces and collapses double-space
// artifacts left by tag removal.
func cleanSpaces(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return s
}
