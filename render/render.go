/*
Package render defines interface types for rendering targets of the gel
builder.

A rendering target is whatever concrete tree structure the builder drives: a
DOM in a browser-like environment, an HTML document tree, a test double. The
builder only ever talks to the narrow set of primitives declared here;
everything structural lives in the builder's own chain.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package render

// Node is one concrete node of the rendering target. Mutation primitives are
// one-shot delegations; a Node carries no tree-structural responsibility.
type Node interface {
	SetAttr(key, value string)       // set or replace an attribute
	Attr(key string) (string, bool)  // read an attribute back
	AddClass(name string)            // add a class token, idempotent
	RemoveClass(name string)         // remove a class token if present
	SetStyle(property, value string) // set one inline style declaration
	SetData(key, value string)       // set a dataset entry (data-key)
	SetText(text string)             // replace textual content
	On(event string, h Handler)      // register an event handler
	Off(event string)                // drop all handlers for an event
}

// Handler is a callback for events delivered by the rendering target.
// Handlers run synchronously on the dispatching goroutine and may re-enter
// the builder.
type Handler func(evt Event)

// Event is what a Handler receives.
type Event interface {
	Name() string // event name, e.g. "click"
	Target() Node // the node the event was dispatched on
}

// Factory creates and arranges nodes of one rendering target.
type Factory interface {
	Element(tag string) Node     // create an element node
	Text(text string) Node       // create a text leaf
	Comment(text string) Node    // create a comment leaf
	InsertAfter(ref, n Node)     // insert n immediately after ref
	PrependChild(parent, n Node) // insert n as first child of parent
	AppendChild(parent, n Node)  // insert n as last child of parent
	Remove(n Node)               // detach n from its parent, if any
	Serialize(n Node) string     // markup of n and its subtree
}

// Selector is an optional capability of a Factory: CSS-selector queries over
// a subtree. Factories not supporting queries simply do not implement it.
type Selector interface {
	QueryAll(scope Node, selector string) ([]Node, error)
}
