package css

import (
	"regexp"

	"github.com/lasse-unity3d/CSS-Inliner/dom"
	"github.com/lasse-unity3d/CSS-Inliner/dom/style/cssom"
	"golang.org/x/net/html"
)

// Selectors for states which only exist while a document is displayed
// interactively. There is no static inline equivalent for them.
var statePseudoClass = regexp.MustCompile(
	`(?i):(active|focus|hover|link|visited|after|before|selection|target|first-line|first-letter)\b`)

// IsInlinable is a predicate for rules which may be inlined. At-rules and
// rules with selectors for interaction states or pseudo-elements are not
// inlinable.
func IsInlinable(rule cssom.Rule) bool {
	if cssom.IsAtRule(rule) {
		return false
	}
	return !statePseudoClass.MatchString(rule.Selector())
}

// Match queries the tree for every rule of a stylesheet, in stylesheet order,
// and records a match for every element found. Rules which are not
// inlinable are remembered as skipped. A selector which cannot be evaluated
// or which matches nothing results in a warning.
func Match(root *html.Node, sheet cssom.StyleSheet, pass *Pass) error {
	if root == nil {
		return ErrNoTree
	}
	if sheet == nil || sheet.Empty() {
		tracer().Debugf("empty stylesheet, nothing to match")
		return nil
	}
	for _, rule := range sheet.Rules() {
		selector := rule.Selector()
		if !IsInlinable(rule) {
			tracer().Debugf("selector %q is not inlinable", selector)
			pass.skipped = append(pass.skipped, rule)
			continue
		}
		elements, err := dom.Query(root, selector)
		if err != nil {
			pass.warn(SelectorInvalid, selector, err)
			continue
		}
		if len(elements) == 0 {
			pass.warn(SelectorNoMatch, selector, nil)
			continue
		}
		specificity := Specificity(selector)
		for _, n := range elements {
			rec := pass.Record(n, rule, specificity)
			tracer().Debugf("<%s> matched by %v", n.Data, rec)
		}
	}
	return nil
}
