package css

import (
	"strings"

	"github.com/lasse-unity3d/CSS-Inliner/dom"
	"github.com/lasse-unity3d/CSS-Inliner/dom/style"
	"golang.org/x/net/html"
)

// Collapse normalizes the inline style of every element of a tree (see
// style.Collapse). If stripAttrs is set, `id` and `class` attributes are
// removed from every element.
func Collapse(root *html.Node, stripAttrs bool) error {
	if root == nil {
		return ErrNoTree
	}
	dom.Walk(root, func(n *html.Node) bool {
		if !dom.NodeIsElement(n) {
			return true
		}
		if s, ok := dom.Attr(n, "style"); ok && strings.TrimSpace(s) != "" {
			dom.SetAttr(n, "style", style.Collapse(s))
		}
		if stripAttrs {
			dom.RemoveAttr(n, "id")
			dom.RemoveAttr(n, "class")
		}
		return true
	})
	return nil
}
