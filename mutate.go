package gel

import (
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/gel/render"
)

/*
Mutation gate: every mutating operation passes through a single dispatch
wrapper that checks the mount flag. On an unmounted node the delegate call is
suppressed and the cursor is returned unchanged, preserving chainability.
*/

// mutate is the mount gate. elementOnly marks operations that exist on
// element nodes exclusively; calling those on a leaf records ErrNotAnElement.
func (g *Node) mutate(elementOnly bool, op func(h render.Node)) *Node {
	if elementOnly && g.kind != Element {
		g.chain.fail(ErrNotAnElement)
		return g
	}
	if !g.mounted {
		tracer().P("node", g.name).Debugf("mutation suppressed on unmounted node")
		return g
	}
	op(g.h)
	return g
}

// Text sets the textual content of the cursor. On an element node any
// existing children of the rendering-target node are replaced by a single
// text leaf; on text and comment nodes the character data is replaced.
func (g *Node) Text(text string) *Node {
	return g.mutate(false, func(h render.Node) {
		h.SetText(text)
	})
}

// Attr sets an attribute on the cursor's element.
func (g *Node) Attr(key, value string) *Node {
	return g.mutate(true, func(h render.Node) {
		h.SetAttr(key, value)
	})
}

// Class adds class tokens to the cursor's element.
func (g *Node) Class(names ...string) *Node {
	return g.mutate(true, func(h render.Node) {
		for _, name := range names {
			h.AddClass(name)
		}
	})
}

// UnClass removes class tokens from the cursor's element.
func (g *Node) UnClass(names ...string) *Node {
	return g.mutate(true, func(h render.Node) {
		for _, name := range names {
			h.RemoveClass(name)
		}
	})
}

// Style sets a single inline style declaration on the cursor's element.
func (g *Node) Style(property, value string) *Node {
	return g.mutate(true, func(h render.Node) {
		h.SetStyle(property, value)
	})
}

// Styles applies a whole inline declaration block, e.g.
//
//	g.Styles("color: red; width: 10px")
//
// The block is parsed as CSS declarations and applied one by one, merging
// into the element's existing inline style. Unparsable blocks are traced and
// skipped.
func (g *Node) Styles(block string) *Node {
	return g.mutate(true, func(h render.Node) {
		decls, err := parser.ParseDeclarations(block)
		if err != nil {
			tracer().P("style", block).Errorf("cannot parse style block: %v", err)
			return
		}
		for _, d := range decls {
			h.SetStyle(d.Property, d.Value)
		}
	})
}

// Data sets a dataset entry (data-key attribute) on the cursor's element.
func (g *Node) Data(key, value string) *Node {
	return g.mutate(true, func(h render.Node) {
		h.SetData(key, value)
	})
}

// On registers an event handler on the cursor's element. Handlers run
// synchronously when the rendering target delivers an event and may re-enter
// the builder; the chain is fully consistent at every call boundary.
func (g *Node) On(event string, h render.Handler) *Node {
	return g.mutate(true, func(rn render.Node) {
		rn.On(event, h)
	})
}

// Off drops all handlers for an event from the cursor's element.
func (g *Node) Off(event string) *Node {
	return g.mutate(true, func(rn render.Node) {
		rn.Off(event)
	})
}

// If mounts or unmounts the cursor. Unmounting detaches the rendering-target
// node from its live parent and suppresses all further mutations; the node
// stays in the chain, remains navigable and addressable by key, and can be
// remounted.
//
// Remounting re-attaches the rendering-target node as the last child of its
// recorded parent. The original sibling position is not restored; callers
// relying on sibling order must rebuild instead of toggling.
func (g *Node) If(flag bool) *Node {
	if flag == g.mounted {
		return g
	}
	g.mounted = flag
	if !flag {
		g.chain.factory.Remove(g.h)
		tracer().P("node", g.name).Debugf("unmounted")
		return g
	}
	if g.parent != nil {
		g.chain.factory.AppendChild(g.parent.h, g.h)
	}
	tracer().P("node", g.name).Debugf("remounted")
	return g
}
