/*
Package inliner turns the embedded stylesheets of an HTML document into
inline styles.

Email delivery agents and mail clients strip or ignore `<style>` blocks,
but honor per-element `style` attributes. An Inliner reads a document,
removes its screen stylesheets and, on request, applies every rule to the
elements it matches:

   in := inliner.New(inliner.Options{StripAttrs: true})
   if err := in.ReadHTML(mail); err != nil {
       …
   }
   if err := in.InlineDocument(); err != nil {
       …
   }
   out, err := in.HTML()

Conflicting rules are resolved by specificity, then by their order in the
stylesheet. Inline styles present in the source document always win.
Selectors which cannot be evaluated are skipped; they are reported by
Warnings().

The cascade itself is implemented in package dom/style/css; parsing of
CSS is done by package dom/style/cssom/douceuradapter.

Status

An Inliner is a session for one document. Calls on the same Inliner are
serialized, but the document tree must not be modified by clients while
an Inliner works on it.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inliner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inliner'.
func tracer() tracing.Trace {
	return tracing.Select("inliner")
}
