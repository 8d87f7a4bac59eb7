/*
Package htmldom implements a gel rendering target on top of HTML node trees
from golang.org/x/net/html.

Every node created through the factory wraps exactly one *html.Node. The
factory keeps an identity registry of its nodes, so that query results and
event targets always map back to the wrapper originally handed out.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package htmldom

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/gel/render"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces to 'gel.dom'.
func tracer() tracing.Trace {
	return tracing.Select("gel.dom")
}

// Factory creates and arranges HTML nodes. It implements render.Factory and
// render.Selector, and additionally delivers events registered through the
// nodes' On/Off primitives.
//
// A Factory is not safe for concurrent use; gel trees are single-threaded by
// contract.
type Factory struct {
	nodes    map[*html.Node]*domNode
	handlers map[*html.Node]map[string][]render.Handler
}

// New creates a Factory with an empty node registry.
func New() *Factory {
	return &Factory{
		nodes:    make(map[*html.Node]*domNode),
		handlers: make(map[*html.Node]map[string][]render.Handler),
	}
}

var _ render.Factory = &Factory{}
var _ render.Selector = &Factory{}

// wrap returns the registered wrapper for an HTML node, creating one if the
// node has not been seen before.
func (f *Factory) wrap(n *html.Node) *domNode {
	if dn, ok := f.nodes[n]; ok {
		return dn
	}
	dn := &domNode{h: n, f: f}
	f.nodes[n] = dn
	return dn
}

// Element creates an element node for a tag name. Unknown tag names are
// passed through uninterpreted.
func (f *Factory) Element(tag string) render.Node {
	a := atom.Lookup([]byte(tag))
	return f.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: a,
	})
}

// Text creates a text leaf.
func (f *Factory) Text(text string) render.Node {
	return f.wrap(&html.Node{Type: html.TextNode, Data: text})
}

// Comment creates a comment leaf.
func (f *Factory) Comment(text string) render.Node {
	return f.wrap(&html.Node{Type: html.CommentNode, Data: text})
}

// InsertAfter inserts n immediately after ref. ref must be attached to a
// parent node.
func (f *Factory) InsertAfter(ref, n render.Node) {
	r, nn := unwrap(ref), unwrap(n)
	if r == nil || nn == nil || r.Parent == nil {
		tracer().Errorf("InsertAfter: reference node is detached")
		return
	}
	if r.NextSibling != nil {
		r.Parent.InsertBefore(nn, r.NextSibling)
	} else {
		r.Parent.AppendChild(nn)
	}
}

// PrependChild inserts n as the first child of parent.
func (f *Factory) PrependChild(parent, n render.Node) {
	p, nn := unwrap(parent), unwrap(n)
	if p == nil || nn == nil {
		return
	}
	if p.FirstChild != nil {
		p.InsertBefore(nn, p.FirstChild)
	} else {
		p.AppendChild(nn)
	}
}

// AppendChild inserts n as the last child of parent.
func (f *Factory) AppendChild(parent, n render.Node) {
	p, nn := unwrap(parent), unwrap(n)
	if p == nil || nn == nil {
		return
	}
	p.AppendChild(nn)
}

// Remove detaches n from its parent. Removing a detached node is a no-op.
func (f *Factory) Remove(n render.Node) {
	nn := unwrap(n)
	if nn == nil || nn.Parent == nil {
		return
	}
	nn.Parent.RemoveChild(nn)
}

// Serialize produces the markup of n and its subtree. Text leaves serialize
// as their raw character data, comments with comment delimiters. Elements
// serialize generically—every element gets a closing tag, HTML void-element
// rules do not apply, since tag names pass through uninterpreted.
func (f *Factory) Serialize(n render.Node) string {
	nn := unwrap(n)
	if nn == nil {
		return ""
	}
	if nn.Type == html.TextNode {
		return nn.Data
	}
	var sb strings.Builder
	serialize(&sb, nn)
	return sb.String()
}

func serialize(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(html.EscapeString(n.Data))
	case html.CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.Data)
		sb.WriteString("-->")
	case html.ElementNode:
		sb.WriteString("<")
		sb.WriteString(n.Data)
		for _, a := range n.Attr {
			sb.WriteString(" ")
			sb.WriteString(a.Key)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(a.Val))
			sb.WriteString(`"`)
		}
		sb.WriteString(">")
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			serialize(sb, c)
		}
		sb.WriteString("</")
		sb.WriteString(n.Data)
		sb.WriteString(">")
	}
}

// Dispatch delivers an event synchronously to all handlers registered for it
// on target. Handlers run on the calling goroutine, in registration order,
// and may re-enter the builder.
func (f *Factory) Dispatch(target render.Node, event string) {
	dn, ok := target.(*domNode)
	if !ok {
		return
	}
	hs := f.handlers[dn.h][event]
	if len(hs) == 0 {
		return
	}
	evt := domEvent{name: event, target: dn}
	// handlers may register or drop listeners while running
	for _, h := range append([]render.Handler{}, hs...) {
		h(evt)
	}
}

func unwrap(n render.Node) *html.Node {
	if dn, ok := n.(*domNode); ok {
		return dn.h
	}
	return nil
}

// --- Nodes -----------------------------------------------------------

// domNode wraps one *html.Node, keeping a back-reference to its factory for
// the event registry.
type domNode struct {
	h *html.Node
	f *Factory
}

var _ render.Node = &domNode{}

// HTMLNode returns the wrapped HTML node.
func (dn *domNode) HTMLNode() *html.Node {
	return dn.h
}

func (dn *domNode) SetAttr(key, value string) {
	for i, a := range dn.h.Attr {
		if a.Key == key {
			dn.h.Attr[i].Val = value
			return
		}
	}
	dn.h.Attr = append(dn.h.Attr, html.Attribute{Key: key, Val: value})
}

func (dn *domNode) Attr(key string) (string, bool) {
	for _, a := range dn.h.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (dn *domNode) AddClass(name string) {
	classes, _ := dn.Attr("class")
	for _, c := range strings.Fields(classes) {
		if c == name {
			return
		}
	}
	if classes == "" {
		dn.SetAttr("class", name)
		return
	}
	dn.SetAttr("class", classes+" "+name)
}

func (dn *domNode) RemoveClass(name string) {
	classes, ok := dn.Attr("class")
	if !ok {
		return
	}
	kept := []string{}
	for _, c := range strings.Fields(classes) {
		if c != name {
			kept = append(kept, c)
		}
	}
	dn.SetAttr("class", strings.Join(kept, " "))
}

// SetStyle merges one declaration into the node's inline style attribute,
// replacing an existing declaration for the same property.
func (dn *domNode) SetStyle(property, value string) {
	block, _ := dn.Attr("style")
	dn.SetAttr("style", mergeDeclaration(block, property, value))
}

func mergeDeclaration(block, property, value string) string {
	decls := []string{}
	replaced := false
	if block != "" {
		parsed, err := parser.ParseDeclarations(block)
		if err != nil {
			tracer().P("style", block).Errorf("cannot parse inline style: %v", err)
			parsed = nil
		}
		for _, d := range parsed {
			if d.Property == property {
				decls = append(decls, property+": "+value)
				replaced = true
			} else {
				decls = append(decls, d.Property+": "+d.Value)
			}
		}
	}
	if !replaced {
		decls = append(decls, property+": "+value)
	}
	return strings.Join(decls, "; ")
}

func (dn *domNode) SetData(key, value string) {
	dn.SetAttr("data-"+key, value)
}

// SetText replaces the textual content of a node. On an element node all
// children are replaced by a single text leaf.
func (dn *domNode) SetText(text string) {
	if dn.h.Type != html.ElementNode {
		dn.h.Data = text
		return
	}
	for dn.h.FirstChild != nil {
		dn.h.RemoveChild(dn.h.FirstChild)
	}
	dn.h.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (dn *domNode) On(event string, h render.Handler) {
	if h == nil {
		return
	}
	reg := dn.f.handlers[dn.h]
	if reg == nil {
		reg = make(map[string][]render.Handler)
		dn.f.handlers[dn.h] = reg
	}
	reg[event] = append(reg[event], h)
}

func (dn *domNode) Off(event string) {
	if reg := dn.f.handlers[dn.h]; reg != nil {
		delete(reg, event)
	}
}

// --- Events ----------------------------------------------------------

type domEvent struct {
	name   string
	target *domNode
}

func (e domEvent) Name() string        { return e.name }
func (e domEvent) Target() render.Node { return e.target }
