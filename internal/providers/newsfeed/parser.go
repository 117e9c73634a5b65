package newsfeed

import (
	"strings"

	"golang.org/x/net/html"

	"fantasy-intel-service/internal/domain/news"
)

// parseFeed walks the news page and extracts one item per list entry.
// Malformed entries are skipped rather than failing the whole feed.
func parseFeed(doc *html.Node, limit int) []news.Item {
	list := findByClass(doc, "ul", classList)
	if list == nil {
		return nil
	}

	items := make([]news.Item, 0, limit)
	for li := list.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" || !hasClass(li, classItem) {
			continue
		}
		if item, ok := parseItem(li); ok {
			items = append(items, item)
		}
		if len(items) >= limit {
			break
		}
	}
	return items
}

func parseItem(li *html.Node) (news.Item, bool) {
	headlineDiv := findByClass(li, "div", classHeadline)
	if headlineDiv == nil {
		return news.Item{}, false
	}

	item := news.Item{
		Player:   playerName(headlineDiv),
		Headline: collapseText(headlineDiv),
		Report:   reportText(li),
		Date:     textOfClass(li, classDate),
		Team:     fullTeamName(textOfClass(li, classTeam)),
	}
	if item.Headline == "" {
		return news.Item{}, false
	}
	return item, true
}

// playerName prefers linked names inside the headline; multiple players are
// joined with "; ". When no links exist it falls back to the leading
// capitalized words of the headline text.
func playerName(headlineDiv *html.Node) string {
	var names []string
	walk(headlineDiv, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if name := collapseText(n); len(name) > 2 {
				names = append(names, name)
			}
		}
	})
	if len(names) > 0 {
		return strings.Join(names, "; ")
	}
	return leadingName(collapseText(headlineDiv))
}

func leadingName(headline string) string {
	var capitalized []string
	for _, word := range strings.Fields(headline) {
		clean := strings.TrimRight(word, ",:;.!?")
		if len(clean) < 2 || clean[0] < 'A' || clean[0] > 'Z' {
			break
		}
		if isStopWord(clean) {
			continue
		}
		capitalized = append(capitalized, clean)
		if len(capitalized) == 2 {
			break
		}
	}
	if len(capitalized) == 0 {
		return "Unknown Player"
	}
	return strings.Join(capitalized, " ")
}

func isStopWord(word string) bool {
	switch strings.ToLower(word) {
	case "the", "a", "an", "in", "on", "at":
		return true
	}
	return false
}

func reportText(li *html.Node) string {
	if text := textOfClass(li, classAnalysis); text != "" {
		return text
	}
	return textOfClass(li, classStory)
}

func textOfClass(root *html.Node, class string) string {
	if n := findByClass(root, "div", class); n != nil {
		return collapseText(n)
	}
	return ""
}

func findByClass(root *html.Node, tag, class string) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) {
		if found == nil && n.Type == html.ElementNode && n.Data == tag && hasClass(n, class) {
			found = n
		}
	})
	return found
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}

func collapseText(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}
