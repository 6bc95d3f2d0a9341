package css

import (
	"strings"

	"github.com/lasse-unity3d/CSS-Inliner/dom"
	"github.com/lasse-unity3d/CSS-Inliner/dom/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Options control an inlining pass.
type Options struct {
	StripAttrs          bool // remove id and class attributes
	PreserveUninlinable bool // keep rules which cannot be inlined in a <style> block
}

// PreservedMarker is the attribute flagging the `<style>` block created
// for rules which cannot be inlined.
const PreservedMarker = "data-inliner-preserved"

// Inline runs a complete inlining pass over a tree: match, merge and
// collapse. The tree is modified in place.
//
// The pass is returned even in case of an error, to give access to the
// warnings collected so far. After an error the styles of the tree may be
// partially updated.
func Inline(root *html.Node, sheet cssom.StyleSheet, opts Options) (*Pass, error) {
	pass := NewPass()
	if err := Match(root, sheet, pass); err != nil {
		return pass, err
	}
	for _, n := range pass.Elements() {
		if err := Merge(n, pass.Matches(n)); err != nil {
			return pass, err
		}
	}
	if opts.PreserveUninlinable {
		preserve(root, pass.Skipped())
	}
	return pass, Collapse(root, opts.StripAttrs)
}

// preserve writes rules into a `<style>` block in the document head,
// replacing a block created by an earlier pass.
func preserve(root *html.Node, rules []cssom.Rule) {
	dom.Walk(root, func(n *html.Node) bool {
		if _, ok := dom.Attr(n, PreservedMarker); ok && dom.NodeIsStyle(n) {
			dom.Detach(n)
			return false
		}
		return true
	})
	if len(rules) == 0 {
		return
	}
	texts := make([]string, len(rules))
	for i, r := range rules {
		texts[i] = r.CSSText()
	}
	block := &html.Node{
		Type:     html.ElementNode,
		Data:     "style",
		DataAtom: atom.Style,
		Attr: []html.Attribute{
			{Key: "type", Val: "text/css"},
			{Key: PreservedMarker, Val: ""},
		},
	}
	block.AppendChild(&html.Node{Type: html.TextNode, Data: "\n" + strings.Join(texts, "\n") + "\n"})
	if head := dom.FindElement(atom.Head, root); head != nil {
		head.AppendChild(block)
	} else if doc := dom.FindElement(atom.Html, root); doc != nil {
		doc.InsertBefore(block, doc.FirstChild)
	} else {
		root.InsertBefore(block, root.FirstChild)
	}
	tracer().Debugf("preserved %d rules which cannot be inlined", len(rules))
}
