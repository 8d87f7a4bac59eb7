package gel

import (
	"github.com/npillmayer/gel/render"
	"github.com/npillmayer/gel/render/htmldom"
)

// Build creates a new, independent tree consisting of a single root element,
// created from a tag descriptor (see package documentation for the grammar).
// The returned node is the initial cursor; its chain is shared by every node
// subsequently created under it.
//
// Build uses a fresh htmldom factory as rendering target. Use BuildWith to
// supply a different one, or to share one factory between sub-builds.
func Build(tag string) *Node {
	return BuildWith(htmldom.New(), tag)
}

// BuildWith is Build with an explicit rendering-target factory.
func BuildWith(f render.Factory, tag string) *Node {
	c := &chain{factory: f}
	root := newElement(c, tag)
	c.nodes = append(c.nodes, root)
	tracer().P("root", root.name).Debugf("new builder chain")
	return root
}
