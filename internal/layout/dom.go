// Package layout holds the page building blocks shared by the site pages:
// containers, grid blocks and markdown blocks, built as golang.org/x/net/html
// render trees.
package layout

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element creates an element node. Nil children are skipped so optional parts
// can be passed inline.
func Element(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	Append(n, children...)
	return n
}

// Append adds the non-nil children to parent.
func Append(parent *html.Node, children ...*html.Node) {
	for _, c := range children {
		if c != nil {
			parent.AppendChild(c)
		}
	}
}

// Text creates a text node; the content is escaped when rendered.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Attrs builds an attribute list from key/value pairs, dropping pairs with an
// empty value.
func Attrs(kv ...string) []html.Attribute {
	out := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}
		out = append(out, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return out
}

// Classes joins the non-empty class names.
func Classes(names ...string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}

// Render writes n as HTML. A nil node writes nothing.
func Render(w io.Writer, n *html.Node) error {
	if n == nil {
		return nil
	}
	return html.Render(w, n)
}

// String renders n to a string.
func String(n *html.Node) (string, error) {
	var b strings.Builder
	if err := Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}
