/*
Package css implements the cascade for inlining CSS into HTML documents.

Email clients strip or ignore `<style>` blocks, but honor inline `style`
attributes. This package moves rules from embedded stylesheets onto the
elements they apply to:

   - ExtractStylesheet removes qualifying `<style>` blocks from a document
     tree and returns their text content.
   - Match queries the tree for every selector of a stylesheet and records
     which rules apply to which element.
   - Merge resolves the rules matching an element into a single inline
     style. Rules are ranked by specificity, then by stylesheet order; an
     inline style already present on the element always wins.
   - Collapse normalizes every inline style of the tree, removing
     duplicate properties and sorting them by name.

Inline runs Match, Merge and Collapse as a single pass.

Selectors for interaction states (e.g., `:hover`) and at-rules (e.g.,
`@media`) cannot be expressed as inline styles. They are never inlined.

Specificity is a single weighted number (elements 1, classes and attributes
10, ids 100) computed textually from the selector. More than nine classes
will outweigh an id; this is a known approximation.

Status

All state of an inlining pass lives in a Pass. Trees are modified in place
and must not be shared between concurrent passes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inliner.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("inliner.cascade")
}
