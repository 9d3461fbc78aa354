package usecase

import (
	"strings"

	"golang.org/x/net/html"
)

// Block-level elements that end a line of output text.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true,
	"ol": true, "blockquote": true, "pre": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// CleanHTML flattens a rich-text status body into plain text. Anchors
// become "text (href)" when the href differs from the visible text,
// block boundaries become newlines, and blank lines are dropped. The
// parser is tolerant, so malformed markup degrades instead of failing.
func CleanHTML(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		// html.Parse only errors on reader failure, which a string
		// reader cannot produce.
		return strings.TrimSpace(fragment)
	}

	var b strings.Builder
	flatten(&b, doc)

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}

func flatten(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "a":
			text := nodeText(n)
			href := attrValue(n, "href")
			if href != "" && text != "" && href != text {
				b.WriteString(text + " (" + href + ")")
			} else {
				b.WriteString(text)
			}
			return
		case "br":
			b.WriteString("\n")
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flatten(b, c)
	}

	if n.Type == html.ElementNode && blockTags[n.Data] {
		b.WriteString("\n")
	}
}

// nodeText collects the visible text under a node, ignoring markup.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
