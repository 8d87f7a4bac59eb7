package gel

import (
	"strings"

	"github.com/npillmayer/gel/render"
)

// tagDesc is the parsed form of a tag descriptor.
//
// The descriptor grammar is
//
//	tag[#id][@metadata]...
//
// where '#id' sets the id attribute, a '@metadata' segment without a ':'
// separator sets the type attribute, and '@key:value' segments set dataset
// entries (data-key). Tag names are passed through to the rendering target
// uninterpreted.
type tagDesc struct {
	name  string
	id    string
	metas []string
}

func parseTag(desc string) tagDesc {
	segs := strings.Split(desc, "@")
	name, id, _ := strings.Cut(segs[0], "#")
	return tagDesc{name: name, id: id, metas: segs[1:]}
}

func (t tagDesc) apply(h render.Node) {
	if t.id != "" {
		h.SetAttr("id", t.id)
	}
	for _, m := range t.metas {
		if key, value, ok := strings.Cut(m, ":"); ok {
			h.SetData(key, value)
		} else if m != "" {
			h.SetAttr("type", m)
		}
	}
}
