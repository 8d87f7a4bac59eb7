package htmldom

import (
	"testing"

	"github.com/npillmayer/gel/render"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestCreateAndSerialize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gel.dom")
	defer teardown()
	//
	f := New()
	el := f.Element("list")
	require.Equal(t, "<list></list>", f.Serialize(el))
	//
	txt := f.Text("a < b")
	require.Equal(t, "a < b", f.Serialize(txt), "top-level text serializes raw")
	//
	cmt := f.Comment("note")
	require.Equal(t, "<!--note-->", f.Serialize(cmt))
}

func TestArrangePrimitives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gel.dom")
	defer teardown()
	//
	f := New()
	parent := f.Element("p")
	a, b, c := f.Element("a"), f.Element("b"), f.Element("c")
	f.AppendChild(parent, b)
	f.PrependChild(parent, a) // a before b
	f.InsertAfter(a, c)       // a, c, b
	require.Equal(t, "<p><a></a><c></c><b></b></p>", f.Serialize(parent))
	//
	f.Remove(c)
	require.Equal(t, "<p><a></a><b></b></p>", f.Serialize(parent))
	f.Remove(c) // removing a detached node is a no-op
	require.Equal(t, "<p><a></a><b></b></p>", f.Serialize(parent))
}

func TestAttributeMutations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gel.dom")
	defer teardown()
	//
	f := New()
	el := f.Element("box")
	el.SetAttr("title", "x")
	el.SetAttr("title", "y") // replaces
	v, ok := el.Attr("title")
	require.True(t, ok)
	require.Equal(t, "y", v)
	//
	el.AddClass("a")
	el.AddClass("b")
	el.AddClass("a") // idempotent
	classes, _ := el.Attr("class")
	require.Equal(t, "a b", classes)
	el.RemoveClass("a")
	classes, _ = el.Attr("class")
	require.Equal(t, "b", classes)
	//
	el.SetData("ref", "7")
	v, ok = el.Attr("data-ref")
	require.True(t, ok)
	require.Equal(t, "7", v)
}

func TestStyleMerging(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gel.dom")
	defer teardown()
	//
	f := New()
	el := f.Element("box")
	el.SetStyle("color", "red")
	el.SetStyle("width", "10px")
	el.SetStyle("color", "blue") // replaces in place
	style, _ := el.Attr("style")
	require.Equal(t, "color: blue; width: 10px", style)
}

func TestSetTextReplacesChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gel.dom")
	defer teardown()
	//
	f := New()
	el := f.Element("box")
	f.AppendChild(el, f.Element("old"))
	el.SetText("hi")
	require.Equal(t, "<box>hi</box>", f.Serialize(el))
}

func TestDispatchOrderAndOff(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gel.dom")
	defer teardown()
	//
	f := New()
	el := f.Element("button")
	var calls []string
	el.On("click", func(evt render.Event) {
		calls = append(calls, "first:"+evt.Name())
		require.Equal(t, el, evt.Target())
	})
	el.On("click", func(evt render.Event) {
		calls = append(calls, "second")
	})
	f.Dispatch(el, "click")
	require.Equal(t, []string{"first:click", "second"}, calls)
	//
	el.Off("click")
	f.Dispatch(el, "click")
	require.Len(t, calls, 2, "no handler must run after Off")
}

func TestQueryAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gel.dom")
	defer teardown()
	//
	f := New()
	list := f.Element("list")
	one, two := f.Element("item"), f.Element("item")
	two.AddClass("sel")
	f.AppendChild(list, one)
	f.AppendChild(list, two)
	//
	matches, err := f.QueryAll(list, "item")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	//
	matches, err = f.QueryAll(list, "item.sel")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, two, matches[0])
	//
	_, err = f.QueryAll(list, "item..")
	require.Error(t, err, "malformed selectors are reported")
}
