package treeview

import (
	"cmp"
	"fmt"
	"io"

	"github.com/npillmayer/ordset"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes the shape of a set's tree as nested unordered lists.
//
// Every node becomes a list item with class "node" (or "node tracked" if
// iterators are positioned on it), holding a span with the value and a
// nested list for its children. Missing children of inner nodes are
// rendered as empty items with class "nil".
func HTML[T cmp.Ordered](w io.Writer, s *ordset.Set[T]) error {
	ul, err := HTMLNode(s)
	if err != nil {
		return err
	}
	return html.Render(w, ul)
}

// HTMLNode returns the tree of s as an HTML node, for embedding into
// documents.
func HTMLNode[T cmp.Ordered](s *ordset.Set[T]) (*html.Node, error) {
	t, err := collect(s)
	if err != nil {
		return nil, err
	}
	ul := element(atom.Ul, "ordset")
	if t != nil {
		ul.AppendChild(htmlNode(t))
	}
	return ul, nil
}

func htmlNode[T cmp.Ordered](n *viewNode[T]) *html.Node {
	class := "node"
	if n.info.Iterators > 0 {
		class = "node tracked"
	}
	li := element(atom.Li, class)
	span := element(atom.Span, "value")
	span.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: fmt.Sprintf("%v", n.info.Value),
	})
	li.AppendChild(span)
	if n.left == nil && n.right == nil {
		return li
	}
	children := element(atom.Ul, "children")
	for _, child := range []*viewNode[T]{n.left, n.right} {
		if child == nil {
			children.AppendChild(element(atom.Li, "nil"))
		} else {
			children.AppendChild(htmlNode(child))
		}
	}
	li.AppendChild(children)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
}
