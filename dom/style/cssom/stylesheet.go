package cssom

import (
	"strings"

	"github.com/lasse-unity3d/CSS-Inliner/dom/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// inlining engine, we introduce an interface for CSS stylesheets. Clients
// will have to provide a concrete implementation of this interface (e.g.,
// see package douceuradapter).
//
// Rules() returns the rules in stylesheet order, one rule per selector.
//
// See interface Rule.
type StyleSheet interface {
	Empty() bool   // does this stylesheet contain any rules?
	Rules() []Rule // all the rules of a stylesheet, in order
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string                  // a single selector, or the prelude of an at-rule
	Declarations() *style.Declarations // the declaration block, read-only
	CSSText() string                   // the rule as CSS source text
}

// IsAtRule is a predicate for rules with selectors starting with '@', e.g.
// "@media screen" or "@font-face".
func IsAtRule(r Rule) bool {
	return strings.HasPrefix(strings.TrimSpace(r.Selector()), "@")
}

// --- A simple default stylesheet -----------------------------------------

// Sheet is a plain in-memory implementation of StyleSheet. The zero value
// is an empty stylesheet.
type Sheet struct {
	rules []Rule
}

// NewSheet creates a stylesheet from a list of rules.
func NewSheet(rules ...Rule) *Sheet {
	return &Sheet{rules: rules}
}

// Empty checks if this stylesheet contains any rules.
//
// Interface StyleSheet
func (sheet *Sheet) Empty() bool {
	return sheet == nil || len(sheet.rules) == 0
}

// Rules returns all the rules of a stylesheet.
//
// Interface StyleSheet
func (sheet *Sheet) Rules() []Rule {
	if sheet == nil {
		return nil
	}
	return sheet.rules
}

var _ StyleSheet = &Sheet{}

// SimpleRule is a rule made of a selector and a declaration block.
type SimpleRule struct {
	selector string
	decls    *style.Declarations
}

// NewRule creates a rule for a selector. decls may be nil.
func NewRule(selector string, decls *style.Declarations) *SimpleRule {
	if decls == nil {
		decls = style.NewDeclarations()
	}
	return &SimpleRule{selector: strings.TrimSpace(selector), decls: decls}
}

// Selector returns the selector of the rule.
func (r *SimpleRule) Selector() string {
	return r.selector
}

// Declarations returns the declaration block of the rule. Clients must not
// modify it.
func (r *SimpleRule) Declarations() *style.Declarations {
	return r.decls
}

// CSSText renders the rule as CSS source.
func (r *SimpleRule) CSSText() string {
	return FormatRule(r.selector, r.decls)
}

var _ Rule = &SimpleRule{}

// FormatRule renders a selector and its declarations as CSS source text.
func FormatRule(selector string, decls *style.Declarations) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {")
	for _, kv := range decls.Properties() {
		b.WriteString(" ")
		b.WriteString(kv.Key)
		b.WriteString(": ")
		b.WriteString(kv.Value.String())
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}
