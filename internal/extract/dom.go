package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// DOM traversal helpers over golang.org/x/net/html trees. These cover the
// small slice of querySelector behaviour the extractors need: lookup by tag,
// by attribute value, and text collection with and without hidden elements.

// attrVal returns the value of the named attribute, or "".
func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findFirst returns the first element (depth-first, document order) for
// which pred returns true.
func findFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if res := findFirst(c, pred); res != nil {
			return res
		}
	}
	return nil
}

// findAll collects every element (document order) for which pred returns true.
func findAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.ElementNode && pred(cur) {
			out = append(out, cur)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return out
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return strings.EqualFold(n.Data, tag) }
}

func byAttr(key, val string) func(*html.Node) bool {
	return func(n *html.Node) bool { return attrVal(n, key) == val }
}

func byTestID(val string) func(*html.Node) bool {
	return byAttr("data-testid", val)
}

// attrContains matches elements whose attribute value contains substr,
// the [attr*="substr"] selector form.
func attrContains(key, substr string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return strings.Contains(attrVal(n, key), substr)
	}
}

// textContent concatenates every descendant text node verbatim, like the DOM
// textContent property. Adjacent inline elements may run words together;
// CleanText and the description repairs deal with that downstream.
func textContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return b.String()
}

// elementText is textContent run through CleanText; the workhorse for
// selector-chain field extraction.
func elementText(n *html.Node) string {
	return CleanText(textContent(n))
}

// visibleText approximates innerText: script/style/noscript/template subtrees
// are skipped and block-level boundaries become single spaces, so hidden
// formatting artifacts stay out of description text.
func visibleText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.ElementNode {
			switch strings.ToLower(cur.Data) {
			case "script", "style", "noscript", "template", "iframe":
				return
			case "p", "div", "li", "ul", "ol", "br", "h1", "h2", "h3", "h4", "h5", "h6", "tr":
				b.WriteByte(' ')
			}
		}
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return CleanText(b.String())
}

// metaContent resolves <meta property=name> or <meta name=name> content,
// checking the property attribute first.
func metaContent(doc *html.Node, name string) string {
	m := findFirst(doc, func(n *html.Node) bool {
		return strings.EqualFold(n.Data, "meta") && attrVal(n, "property") == name
	})
	if m == nil {
		m = findFirst(doc, func(n *html.Node) bool {
			return strings.EqualFold(n.Data, "meta") && attrVal(n, "name") == name
		})
	}
	if m == nil {
		return ""
	}
	return attrVal(m, "content")
}

// pageTitle returns the <title> text, the browser-tab title fallback.
func pageTitle(doc *html.Node) string {
	t := findFirst(doc, byTag("title"))
	return elementText(t)
}
