// Package normalize rewrites the raw page markup captured on the remote
// target into a renderable form: relative URLs are resolved against the
// page's reported location so the dashboard can display the snapshot
// outside its origin.
package normalize

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// urlAttrs are the attributes rewritten against the base URL, per element.
var urlAttrs = map[string][]string{
	"a":      {"href"},
	"link":   {"href"},
	"img":    {"src"},
	"script": {"src"},
	"iframe": {"src"},
	"source": {"src"},
	"video":  {"src", "poster"},
	"audio":  {"src"},
	"form":   {"action"},
}

// Normalize parses raw markup, resolves relative URLs against baseHref,
// and returns the tree together with the re-rendered markup.
func Normalize(raw, baseHref string) (*html.Node, string, error) {
	base, err := url.Parse(baseHref)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base url %q: %w", baseHref, err)
	}

	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, "", fmt.Errorf("parse markup: %w", err)
	}

	rewrite(doc, base)

	var sb strings.Builder
	if err := html.Render(&sb, doc); err != nil {
		return nil, "", fmt.Errorf("render markup: %w", err)
	}
	return doc, sb.String(), nil
}

// rewrite walks the tree and resolves relative URL attributes in place.
func rewrite(n *html.Node, base *url.URL) {
	if n.Type == html.ElementNode {
		if attrs, ok := urlAttrs[n.Data]; ok {
			for i := range n.Attr {
				if !attrNamed(n.Attr[i], attrs) {
					continue
				}
				n.Attr[i].Val = resolve(base, n.Attr[i].Val)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewrite(c, base)
	}
}

func attrNamed(a html.Attribute, names []string) bool {
	for _, name := range names {
		if a.Key == name {
			return true
		}
	}
	return false
}

// resolve returns val resolved against base. Fragments, data: URIs and
// unparseable values pass through untouched.
func resolve(base *url.URL, val string) string {
	if val == "" || strings.HasPrefix(val, "#") || strings.HasPrefix(val, "data:") {
		return val
	}
	ref, err := url.Parse(val)
	if err != nil {
		return val
	}
	return base.ResolveReference(ref).String()
}
