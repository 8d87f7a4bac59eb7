package gel

import (
	"github.com/npillmayer/gel/render"
)

/*
We manage a tree of mutable nodes as a single flat sequence. The sequence is
ordered like a pre-order traversal of the tree: every node is immediately
followed by the contiguous block of its descendants, before any of its later
siblings. Tree shape is expressed solely through sequence position and the
per-node level; parent/sibling pointers on nodes are cached shortcuts only.

Invariant: for a node at position i with level L, the earliest following
position holding a node with level < L marks the end of its descendant block,
i.e. the position of its next sibling, or the point to insert one.
*/

// chain is the flat ordered node sequence shared by every node of one tree.
// It owns the sequence structure and the single rendering-target factory;
// access is single-threaded by design contract, not by locking.
type chain struct {
	factory  render.Factory
	nodes    []*Node
	err      error // first structural error, sticky
	deferred *Node // armed deferred-descent marker, see (*Node).Down
}

// position returns the sequence index of a node, or -1 if the node does not
// belong to this chain. Chains are short-lived build artifacts; a linear scan
// keeps nodes free of index bookkeeping.
func (c *chain) position(n *Node) int {
	for i, node := range c.nodes {
		if node == n {
			return i
		}
	}
	return -1
}

func (c *chain) insertAt(i int, n *Node) {
	c.nodes = append(c.nodes, nil) // make room for one node
	copy(c.nodes[i+1:], c.nodes[i:])
	c.nodes[i] = n
}

// siblingInsertionPoint locates the sequence position where a new next
// sibling of anchor has to go: immediately before anchor's cached next
// sibling if one is known, otherwise before the first following node with a
// level lower than anchor's, otherwise at the end of the sequence.
func (c *chain) siblingInsertionPoint(anchor *Node) int {
	if anchor.nextSib != nil {
		if at := c.position(anchor.nextSib); at >= 0 {
			return at
		}
	}
	for i := c.position(anchor) + 1; i < len(c.nodes); i++ {
		if c.nodes[i].level < anchor.level {
			return i
		}
	}
	return len(c.nodes)
}

// renderAnchor returns the rendering-target reference node for an insertion
// at sequence position `at` and level `level`: the nearest preceding node at
// the same level. The live tree inserts immediately after that node, which
// keeps rendering-target order and sequence order in sync even when cached
// sibling links are stale.
func (c *chain) renderAnchor(at, level int) *Node {
	for i := at - 1; i >= 0; i-- {
		if c.nodes[i].level == level {
			return c.nodes[i]
		}
	}
	return nil
}

// insertNextSibling splices a freshly created node in as the next sibling of
// anchor and returns it as the new cursor.
func (c *chain) insertNextSibling(anchor, n *Node) *Node {
	c.deferred = nil
	n.level = anchor.level
	n.parent = anchor.parent
	n.nextSib = anchor.nextSib
	at := c.siblingInsertionPoint(anchor)
	ref := c.renderAnchor(at, n.level)
	c.insertAt(at, n)
	anchor.nextSib = n
	if ref != nil {
		c.factory.InsertAfter(ref.h, n.h)
	}
	tracer().P("node", n.name).Debugf("inserted as sibling at position %d, level %d", at, n.level)
	return n
}

// insertFirstChild splices a freshly created node in as the first child of
// parent and returns it as the new cursor. A first child always goes
// immediately after its parent in the sequence: the parent's descendant
// block, if any, necessarily begins right there.
func (c *chain) insertFirstChild(parent, n *Node) *Node {
	c.deferred = nil
	n.level = parent.level + 1
	n.parent = parent
	at := c.position(parent) + 1
	c.insertAt(at, n)
	parent.firstChild = n
	c.factory.PrependChild(parent.h, n.h)
	tracer().P("node", n.name).Debugf("inserted as first child at position %d, level %d", at, n.level)
	return n
}

// splice absorbs a foreign chain, rooted at n, into this chain at sequence
// position `at`, re-basing all levels by delta. The donor chain must not be
// used afterwards.
func (c *chain) splice(at int, n *Node, delta int) {
	donor := n.chain
	for _, d := range donor.nodes {
		d.chain = c
		d.level += delta
	}
	if c.err == nil {
		c.err = donor.err
	}
	merged := make([]*Node, 0, len(c.nodes)+len(donor.nodes))
	merged = append(merged, c.nodes[:at]...)
	merged = append(merged, donor.nodes...)
	merged = append(merged, c.nodes[at:]...)
	c.nodes = merged
}

// spliceNextSibling absorbs the tree rooted at n as the next sibling of
// anchor. n must be the root of an independent chain.
func (c *chain) spliceNextSibling(anchor, n *Node) *Node {
	c.deferred = nil
	at := c.siblingInsertionPoint(anchor)
	ref := c.renderAnchor(at, anchor.level)
	c.splice(at, n, anchor.level)
	n.parent = anchor.parent
	n.nextSib = anchor.nextSib
	anchor.nextSib = n
	if ref != nil {
		c.factory.InsertAfter(ref.h, n.h)
	}
	return n
}

// spliceFirstChild absorbs the tree rooted at n as the first child of parent.
func (c *chain) spliceFirstChild(parent, n *Node) *Node {
	c.deferred = nil
	at := c.position(parent) + 1
	c.splice(at, n, parent.level+1)
	n.parent = parent
	parent.firstChild = n
	c.factory.PrependChild(parent.h, n.h)
	return n
}

// findByKey scans the chain in order and returns the first node whose key
// equals key. Nodes without an assigned key never match.
func (c *chain) findByKey(key string) (*Node, bool) {
	if key == "" {
		return nil, false
	}
	for _, n := range c.nodes {
		if n.key == key {
			return n, true
		}
	}
	return nil, false
}

// fail records a structural error. The first error sticks; later ones are
// traced but do not overwrite it.
func (c *chain) fail(err error) {
	tracer().Errorf("structural error: %v", err)
	if c.err == nil {
		c.err = err
	}
}
