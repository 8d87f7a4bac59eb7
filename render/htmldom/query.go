package htmldom

import (
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/gel/render"
)

// QueryAll matches a CSS selector against the subtree rooted at scope and
// returns the matching nodes in document order. It implements the optional
// render.Selector capability.
//
// Matches are reported through the factory's registry: HTML nodes not created
// by this factory are skipped.
func (f *Factory) QueryAll(scope render.Node, selector string) ([]render.Node, error) {
	root := unwrap(scope)
	if root == nil {
		return nil, nil
	}
	sel, err := cascadia.Parse(selector)
	if err != nil {
		tracer().P("selector", selector).Errorf("cannot parse selector: %v", err)
		return nil, err
	}
	var matches []render.Node
	for _, m := range cascadia.QueryAll(root, sel) {
		if dn, ok := f.nodes[m]; ok {
			matches = append(matches, dn)
		}
	}
	tracer().P("selector", selector).Debugf("query matched %d node(s)", len(matches))
	return matches, nil
}
