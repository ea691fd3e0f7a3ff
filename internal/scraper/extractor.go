package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/po3rin/saunadge/internal/model"
)

// SakatsuSelector matches the visit counter in the profile navigation.
const SakatsuSelector = ".p-localNav_count"

type Extractor struct {
	matcher goquery.Matcher
}

func NewExtractor(selector string) (*Extractor, error) {
	compiled, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: selector %q: %w", model.ErrParseFailed, selector, err)
	}

	return &Extractor{matcher: compiled}, nil
}

// Extract returns the first text fragment of the first matching element,
// untouched. Whitespace and number formatting are left to the badge renderer.
func (e *Extractor) Extract(page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrParseFailed, err)
	}

	match := doc.FindMatcher(e.matcher).First()
	if match.Length() == 0 {
		return "", model.ErrNotFound
	}

	fragments := textFragments(match.Get(0))
	if len(fragments) == 0 {
		return "", model.ErrEmptyText
	}

	return fragments[0], nil
}

// textFragments lists the text nodes below node in document order.
func textFragments(node *html.Node) []string {
	var out []string
	collectText(node, &out)
	return out
}

func collectText(node *html.Node, out *[]string) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		*out = append(*out, node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, out)
	}
}
