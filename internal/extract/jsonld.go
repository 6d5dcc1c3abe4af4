package extract

import (
	"encoding/json"
	"strings"

	"golang.org/x/net/html"
)

// JSON-LD structured-data lookup. Job boards routinely embed malformed or
// partial blocks, so every access here is a total, presence-checked lookup —
// a bad block is skipped, never fatal.

// Node is a single JSON-LD object with explicit optional-field accessors.
type Node map[string]any

// Str returns the string value at key, if present and a string.
func (n Node) Str(key string) (string, bool) {
	v, ok := n[key].(string)
	return v, ok
}

// Num returns the numeric value at key. encoding/json decodes every JSON
// number into float64, so that is the only shape accepted.
func (n Node) Num(key string) (float64, bool) {
	v, ok := n[key].(float64)
	return v, ok
}

// Child returns the nested object at key, if present and an object.
func (n Node) Child(key string) (Node, bool) {
	v, ok := n[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return Node(v), true
}

// hasType reports whether the node's @type declares typ, accepting both the
// single-string and list-of-strings forms.
func (n Node) hasType(typ string) bool {
	switch t := n["@type"].(type) {
	case string:
		return t == typ
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s == typ {
				return true
			}
		}
	}
	return false
}

// FindJobPosting scans every <script type="application/ld+json"> block in
// document order and returns the first JobPosting node found. A block may be
// a single object, an array of objects, or an object carrying a @graph node
// list — all three forms are flattened into candidates. Unparsable blocks
// are skipped.
func FindJobPosting(doc *html.Node) (Node, bool) {
	scripts := findAll(doc, func(n *html.Node) bool {
		return strings.EqualFold(n.Data, "script") &&
			strings.EqualFold(attrVal(n, "type"), "application/ld+json")
	})

	for _, s := range scripts {
		var parsed any
		if err := json.Unmarshal([]byte(textContent(s)), &parsed); err != nil {
			continue
		}
		for _, item := range asList(parsed) {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			nodes := []any{item}
			if graph, ok := obj["@graph"].([]any); ok {
				nodes = graph
			}
			for _, raw := range nodes {
				if m, ok := raw.(map[string]any); ok {
					node := Node(m)
					if node.hasType("JobPosting") {
						return node, true
					}
				}
			}
		}
	}
	return nil, false
}

// asList wraps a lone object so single-object and array blocks walk the same.
func asList(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{v}
}
