/*
Package cssom provides the CSS object model the inliner works on.

Status

The model is deliberately small. A stylesheet is nothing more than an
ordered list of rules, and a rule is a single selector together with its
declaration block. Grouped selectors (`h1, h2 { … }`) are split up into
one rule per selector by the parsers, keeping stylesheet order.

Overview

Email clients strip or ignore `<style>` blocks, but honor inline `style`
attributes. Inlining therefore needs a view of the stylesheet which
preserves the order rules were written in: rules of equal specificity are
ranked by their position in the stylesheet, so the order of rules in a
StyleSheet is significant.

Parsing CSS text is de-coupled by introducing interfaces StyleSheet and
Rule. A concrete implementation on top of
https://github.com/aymerick/douceur may be found in package douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'inliner.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("inliner.cssom")
}
