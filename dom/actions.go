package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Walk visits n and its descendants in tree order. If visit returns false, the
// children of the current node are skipped. Visit may detach the node it is
// called for.
func Walk(n *html.Node, visit func(*html.Node) bool) {
	if n == nil {
		return
	}
	descend := visit(n)
	if !descend {
		return
	}
	ch := n.FirstChild
	for ch != nil {
		next := ch.NextSibling // ch may be detached during the visit
		Walk(ch, visit)
		ch = next
	}
}

// NodeIsElement is a predicate to match element nodes.
func NodeIsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// NodeIsStyle is a predicate to match `<style>` elements.
func NodeIsStyle(n *html.Node) bool {
	return NodeIsElement(n) && (n.DataAtom == atom.Style || n.Data == "style")
}
