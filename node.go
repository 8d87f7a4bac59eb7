package gel

import (
	"github.com/npillmayer/gel/render"
)

// Kind discriminates the variants of a chain node.
type Kind int

// Node variants. Only elements may carry children and element-specific
// mutations (attributes, classes, styles, dataset, listeners).
const (
	Element Kind = iota // element node, may carry children
	Text                // text leaf
	Comment             // comment leaf
)

func (k Kind) String() string {
	switch k {
	case Element:
		return "Element"
	case Text:
		return "Text"
	case Comment:
		return "Comment"
	}
	return "Invalid"
}

// Node is the building block of a gel tree. Every node owns exactly one
// rendering-target node and shares one chain with all other nodes of its
// tree. Nodes are created through Build and the structural cursor moves
// (Next, Down and their variants), never directly.
type Node struct {
	chain      *chain      // the flat sequence shared by all nodes of one tree
	h          render.Node // the one rendering-target node owned by this node
	kind       Kind
	name       string // tag name, or "#text" / "#comment" for leaves
	level      int    // depth from the chain's root, root = 0
	key        string // optional lookup key, see Key
	mounted    bool
	parent     *Node // cached shortcuts; the chain is the source of truth
	nextSib    *Node
	firstChild *Node
}

func newElement(c *chain, desc string) *Node {
	tag := parseTag(desc)
	n := &Node{
		chain:   c,
		h:       c.factory.Element(tag.name),
		kind:    Element,
		name:    tag.name,
		mounted: true,
	}
	tag.apply(n.h)
	return n
}

func newText(c *chain, text string) *Node {
	return &Node{
		chain:   c,
		h:       c.factory.Text(text),
		kind:    Text,
		name:    "#text",
		mounted: true,
	}
}

func newComment(c *chain, text string) *Node {
	return &Node{
		chain:   c,
		h:       c.factory.Comment(text),
		kind:    Comment,
		name:    "#comment",
		mounted: true,
	}
}

// Kind returns the node's variant.
func (g *Node) Kind() Kind {
	return g.kind
}

// Name returns the tag name for elements, "#text" or "#comment" for leaves.
func (g *Node) Name() string {
	return g.name
}

// Level returns the node's depth from the root of its tree (root = 0).
func (g *Node) Level() int {
	return g.level
}

// Mounted reports whether the node's rendering-target node is attached. See If.
func (g *Node) Mounted() bool {
	return g.mounted
}

// Handle returns the rendering-target node owned by this node. Clients need
// it to interact with the rendering target directly, e.g. for dispatching
// events on an htmldom factory.
func (g *Node) Handle() render.Node {
	return g.h
}

// Err returns the first structural error recorded on this node's tree, or
// nil. Structural misuse (Up from the root, Down on a leaf) leaves the cursor
// unchanged and records a sticky error here, keeping call chains usable.
func (g *Node) Err() error {
	return g.chain.err
}

// Sequence returns a snapshot of the tree's chain in order. It is intended
// for debugging and tests.
func (g *Node) Sequence() []*Node {
	nodes := make([]*Node, len(g.chain.nodes))
	copy(nodes, g.chain.nodes)
	return nodes
}

// String produces the serialized form of the node: markup of the node and its
// live subtree for elements, raw text for text leaves, delimiter-wrapped text
// for comments.
func (g *Node) String() string {
	return g.chain.factory.Serialize(g.h)
}
