/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

Parsing is done by https://github.com/aymerick/douceur. Douceur keeps rules
in source order and reports grouped selectors separately, which is exactly
what the inliner needs: every selector of a group becomes a rule of its own,
sharing the declaration block of the group.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/lasse-unity3d/CSS-Inliner/dom/style"
	"github.com/lasse-unity3d/CSS-Inliner/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inliner.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("inliner.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	rules []cssom.Rule
}

// Parse parses CSS source text and wraps the result into CSSStyles.
func Parse(text string) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	return Wrap(sheet), nil
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The rules of the wrapper share the douceur rules.
func Wrap(sheet *css.Stylesheet) *CSSStyles {
	styles := &CSSStyles{}
	if sheet == nil {
		return styles
	}
	for _, r := range sheet.Rules {
		styles.rules = append(styles.rules, flatten(r)...)
	}
	tracer().Debugf("stylesheet with %d douceur rules flattened to %d rules",
		len(sheet.Rules), len(styles.rules))
	return styles
}

// flatten creates one adapter rule per selector of a qualified rule. The
// rules of a group share a single declaration block. An at-rule is kept as
// a whole, with its name and prelude acting as selector.
func flatten(r *css.Rule) []cssom.Rule {
	decls := declarations(r)
	if r.Kind == css.AtRule {
		sel := strings.TrimSpace(r.Name + " " + r.Prelude)
		return []cssom.Rule{&Rule{selector: sel, source: r, decls: decls}}
	}
	selectors := r.Selectors
	if len(selectors) == 0 && strings.TrimSpace(r.Prelude) != "" {
		selectors = []string{r.Prelude}
	}
	rules := make([]cssom.Rule, 0, len(selectors))
	for _, sel := range selectors {
		if sel = strings.TrimSpace(sel); sel != "" {
			rules = append(rules, &Rule{selector: sel, source: r, decls: decls})
		}
	}
	return rules
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.rules) == 0
}

// Rules returns all the rules of a stylesheet, one per selector.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	return sheet.rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	selector string
	source   *css.Rule
	decls    *style.Declarations
}

// declarations converts the declarations of a douceur rule. douceur splits
// off `!important`; it is appended to the value again.
func declarations(source *css.Rule) *style.Declarations {
	decls := style.NewDeclarations()
	for _, d := range source.Declarations {
		value := strings.TrimSpace(d.Value)
		if d.Important {
			value += " !important"
		}
		decls.Set(strings.TrimSpace(d.Property), style.Property(value))
	}
	return decls
}

// Selector returns the selector of the rule. For at-rules this is the
// at-keyword plus prelude, e.g. "@media screen".
func (r *Rule) Selector() string {
	return r.selector
}

// Declarations returns the declaration block of the rule.
func (r *Rule) Declarations() *style.Declarations {
	return r.decls
}

// CSSText returns the rule as CSS source. Qualified rules render with their
// single selector, at-rules render completely, including nested rules.
func (r *Rule) CSSText() string {
	if r.source.Kind == css.AtRule {
		return r.source.String()
	}
	return cssom.FormatRule(r.selector, r.decls)
}

var _ cssom.Rule = &Rule{}
