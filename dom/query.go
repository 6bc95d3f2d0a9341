package dom

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Query returns all elements below root which match a CSS selector, in
// document order. A selector which cannot be compiled results in an error;
// a selector matching nothing results in an empty slice.
func Query(root *html.Node, selector string) ([]*html.Node, error) {
	if root == nil {
		return nil, ErrNilNode
	}
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate selector %q: %w", selector, err)
	}
	matches := cascadia.QueryAll(root, sel)
	tracer().Debugf("selector %q matches %d elements", selector, len(matches))
	return matches, nil
}
