package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText returns the text of an HTML fragment with whitespace runs,
// including non-breaking spaces, collapsed to single spaces.
func PlainText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
