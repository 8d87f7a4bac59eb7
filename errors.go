package gel

import "errors"

// ErrAtRoot is recorded if Up is called on the root node of a tree.
var ErrAtRoot = errors.New("cannot navigate up from root")

// ErrNotAnElement is recorded if a children-bearing or element-specific
// operation is called on a text or comment node.
var ErrNotAnElement = errors.New("node is not an element")

// ErrForeignNode is recorded if a node is spliced in that is not the root of
// its own independent chain.
var ErrForeignNode = errors.New("node is not the root of an independent tree")

// ErrNoSelectSupport is returned by Select if the rendering target factory
// does not support CSS-selector queries.
var ErrNoSelectSupport = errors.New("rendering target does not support selector queries")
