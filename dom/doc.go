/*
Package dom provides the document tree the inliner operates on.

Status

The tree is the parse tree of golang.org/x/net/html. This package adds the
small set of operations the inliner needs on top of it: parsing and
rendering documents, reading and changing attributes, collecting text
content, and querying elements with CSS selectors.

Overview

Element handles are plain *html.Node pointers. A pointer is a stable
address for the lifetime of a tree and may be used as a map key; two
handles for the same node always compare equal.

Selector matching is delegated to https://github.com/andybalholm/cascadia.
Query returns matching elements in document order, which is significant for
the cascade: elements matched first by a selector are ranked before
elements matched later.

Trees are not safe for concurrent modification. Clients must make sure
that only one inlining pass operates on a tree at any time.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'inliner.dom'
func tracer() tracing.Trace {
	return tracing.Select("inliner.dom")
}
