/*
Package gel provides a fluent builder for DOM-analogue node trees.

A tree is built through a single moving cursor: every call returns a node
handle from which further structural moves (Next, Down, Up) and mutations
(Text, Attr, Class, Style, Data, event wiring) can be chained. Callers never
hold explicit parent or child lists.

Tree Implementation

Internally a tree is not a graph of parent/child pointers, but a single
ordered sequence of nodes (the chain), annotated with a per-node depth level.
The chain is a pre-order-consistent flattening of the tree: a node's
descendants occupy a contiguous block immediately following it. Parent and
sibling references exist only as cached traversal shortcuts; the chain is the
source of truth.

The rendering target—the concrete tree being driven, by default an HTML node
tree from golang.org/x/net/html—is an external collaborator behind the narrow
interfaces of package render.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package gel

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'gel.builder'.
func tracer() tracing.Trace {
	return tracing.Select("gel.builder")
}
