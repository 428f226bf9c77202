package textload

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// FlattenHTML reduces an HTML document to the plain text of its main content.
// Readability strips navigation and boilerplate; the distilled content is then
// walked block by block so headings, paragraphs and list items each land on
// their own line.
func FlattenHTML(html string) (string, error) {
	base := &url.URL{Scheme: "file", Path: "/"}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(html), base)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if article.Title != "" {
		sb.WriteString(article.Title)
		sb.WriteString("\n")
	}
	doc.Find("h1,h2,h3,h4,p,li,td,pre").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	flat := sb.String()
	if strings.TrimSpace(flat) == "" {
		// Readability can discard everything on fragment-only input; fall
		// back to the document's raw text.
		return article.TextContent, nil
	}
	return flat, nil
}
