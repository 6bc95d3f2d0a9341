package css

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lasse-unity3d/CSS-Inliner/dom"
	"github.com/lasse-unity3d/CSS-Inliner/dom/style"
	"golang.org/x/net/html"
)

// Merge resolves the match records of an element and sets the result as the
// element's inline style.
//
// Records are applied in order of ascending specificity, records of equal
// specificity in order of discovery; later records override earlier ones.
// An inline style already present on the element is applied last and
// therefore always wins.
//
// If the present inline style cannot be parsed, Merge returns an error
// wrapping a *style.ParseError and leaves the element unchanged.
func Merge(n *html.Node, records []MatchRecord) error {
	if len(records) == 0 {
		return nil
	}
	ranked := make([]MatchRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Specificity != ranked[j].Specificity {
			return ranked[i].Specificity < ranked[j].Specificity
		}
		return ranked[i].Sequence < ranked[j].Sequence
	})
	merged := style.NewDeclarations()
	for _, rec := range ranked {
		merged.Overlay(rec.Declarations)
	}
	if inline, ok := dom.Attr(n, "style"); ok && strings.TrimSpace(inline) != "" {
		present, err := style.Split(inline)
		if err != nil {
			return fmt.Errorf("cannot merge styles for <%s>: %w", n.Data, err)
		}
		merged.Overlay(present)
	}
	if merged.Len() == 0 {
		return nil
	}
	tracer().Debugf("<%s> merged style = %v", n.Data, merged)
	dom.SetAttr(n, "style", style.Render(merged))
	return nil
}
