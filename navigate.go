package gel

import (
	"github.com/npillmayer/gel/render"
)

/*
Cursor navigation: every structural call interprets and mutates the chain and
returns the new cursor node. Creation calls fold left over their arguments,
each insertion anchored at the previous result.
*/

// Next creates element nodes from tag descriptors and splices them in as
// successive next siblings of the cursor, left to right. It returns the last
// node created, which becomes the new cursor. Without arguments Next is a
// no-op.
func (g *Node) Next(tags ...string) *Node {
	cur := g
	for _, t := range tags {
		cur = cur.chain.insertNextSibling(cur, newElement(cur.chain, t))
	}
	return cur
}

// NextText splices text leaves in as successive next siblings of the cursor.
func (g *Node) NextText(texts ...string) *Node {
	cur := g
	for _, t := range texts {
		cur = cur.chain.insertNextSibling(cur, newText(cur.chain, t))
	}
	return cur
}

// NextComment splices comment leaves in as successive next siblings of the
// cursor.
func (g *Node) NextComment(texts ...string) *Node {
	cur := g
	for _, t := range texts {
		cur = cur.chain.insertNextSibling(cur, newComment(cur.chain, t))
	}
	return cur
}

// NextNode splices prebuilt nodes—results of separate Build calls—in as
// successive next siblings of the cursor. Every argument must be the root of
// its own independent tree; otherwise ErrForeignNode is recorded and the
// remaining arguments are skipped. The spliced tree's nodes are absorbed into
// the cursor's chain with their levels re-based.
//
// Sub-builds that are meant to receive events or selector queries should
// share the target's factory, i.e. be created with BuildWith.
func (g *Node) NextNode(nodes ...*Node) *Node {
	cur := g
	for _, n := range nodes {
		if !g.chain.adoptable(n) {
			g.chain.fail(ErrForeignNode)
			return cur
		}
		cur = cur.chain.spliceNextSibling(cur, n)
	}
	return cur
}

// Down descends into the cursor's element: the first tag descriptor becomes
// the element's new first child, remaining descriptors become that child's
// successive next siblings. The last node created becomes the new cursor.
//
// Every descent arms the deferred-descent marker on the new cursor: the
// immediately following Up call (with no intervening creation) returns the
// cursor unchanged, so that
//
//	list.Down("item").Text("hello").Up().Next("item")
//
// reads as "more children follow at this same level". Any other structural
// call disarms the marker; a second Up walks to the parent. Without arguments
// Down creates no node and arms the marker on the cursor itself.
//
// Text and comment nodes are always leaves; calling Down on them records
// ErrNotAnElement and leaves the cursor unchanged.
func (g *Node) Down(tags ...string) *Node {
	if g.kind != Element {
		g.chain.fail(ErrNotAnElement)
		return g
	}
	if len(tags) == 0 {
		g.chain.deferred = g
		return g
	}
	cur := g.chain.insertFirstChild(g, newElement(g.chain, tags[0]))
	for _, t := range tags[1:] {
		cur = g.chain.insertNextSibling(cur, newElement(g.chain, t))
	}
	g.chain.deferred = cur
	return cur
}

// DownText descends with text leaves: the first text becomes the element's
// new first child, the rest become its next siblings. Without arguments
// DownText is a no-op.
func (g *Node) DownText(texts ...string) *Node {
	if g.kind != Element {
		g.chain.fail(ErrNotAnElement)
		return g
	}
	cur := g
	for i, t := range texts {
		if i == 0 {
			cur = g.chain.insertFirstChild(g, newText(g.chain, t))
		} else {
			cur = g.chain.insertNextSibling(cur, newText(g.chain, t))
		}
	}
	if cur != g {
		g.chain.deferred = cur
	}
	return cur
}

// DownComment descends with comment leaves, analogous to DownText.
func (g *Node) DownComment(texts ...string) *Node {
	if g.kind != Element {
		g.chain.fail(ErrNotAnElement)
		return g
	}
	cur := g
	for i, t := range texts {
		if i == 0 {
			cur = g.chain.insertFirstChild(g, newComment(g.chain, t))
		} else {
			cur = g.chain.insertNextSibling(cur, newComment(g.chain, t))
		}
	}
	if cur != g {
		g.chain.deferred = cur
	}
	return cur
}

// DownNode descends with prebuilt trees: the first becomes the element's new
// first child, the rest become its next siblings. The same constraints as for
// NextNode apply.
func (g *Node) DownNode(nodes ...*Node) *Node {
	if g.kind != Element {
		g.chain.fail(ErrNotAnElement)
		return g
	}
	cur := g
	for i, n := range nodes {
		if !g.chain.adoptable(n) {
			g.chain.fail(ErrForeignNode)
			return cur
		}
		if i == 0 {
			cur = g.chain.spliceFirstChild(g, n)
		} else {
			cur = g.chain.spliceNextSibling(cur, n)
		}
	}
	if cur != g {
		g.chain.deferred = cur
	}
	return cur
}

// Up moves the cursor to its parent. If the deferred-descent marker is armed
// for the cursor (see Down), Up disarms it and returns the same cursor
// unchanged. Calling Up on the root records ErrAtRoot and leaves the cursor
// unchanged.
func (g *Node) Up() *Node {
	if g.chain.deferred == g {
		g.chain.deferred = nil
		return g
	}
	g.chain.deferred = nil
	if g.parent == nil {
		g.chain.fail(ErrAtRoot)
		return g
	}
	return g.parent
}

// Key stores a lookup identifier on the cursor for later retrieval with
// Node. Keys need not be unique; lookup returns the first match in chain
// order. Key does not change tree structure and returns the cursor unchanged.
func (g *Node) Key(key string) *Node {
	g.key = key
	return g
}

// Node looks up the first node of the tree carrying the given key. It may be
// called on any node of the tree and does not move the cursor. The second
// return value reports whether a match was found; probing for optional nodes
// is a normal usage pattern, not an error.
func (g *Node) Node(key string) (*Node, bool) {
	return g.chain.findByKey(key)
}

// Select matches a CSS selector against the cursor's live subtree and maps
// the matches back to their chain nodes, in document order. It requires a
// factory implementing render.Selector (the htmldom factory does); otherwise
// ErrNoSelectSupport is returned.
func (g *Node) Select(selector string) ([]*Node, error) {
	q, ok := g.chain.factory.(render.Selector)
	if !ok {
		return nil, ErrNoSelectSupport
	}
	handles, err := q.QueryAll(g.h, selector)
	if err != nil {
		return nil, err
	}
	var matches []*Node
	for _, h := range handles {
		for _, n := range g.chain.nodes {
			if n.h == h {
				matches = append(matches, n)
				break
			}
		}
	}
	return matches, nil
}

// adoptable checks that a node may be spliced into this chain: it must be the
// root of its own independent tree.
func (c *chain) adoptable(n *Node) bool {
	return n != nil && n.chain != c && n.level == 0 && n.parent == nil
}
