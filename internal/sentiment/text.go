package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]*>`)
)

// RemoveLinks keeps the text of markdown links and drops bare URLs.
func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// PlainText renders markdown input to plain text with links removed and
// whitespace collapsed.
func PlainText(input string) string {
	input = RemoveLinks(input)
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	stripped := html.UnescapeString(htmlTagPattern.ReplaceAllString(string(rendered), " "))
	return strings.Join(strings.Fields(stripped), " ")
}
