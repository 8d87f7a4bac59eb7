package gel_test

import (
	"testing"

	"github.com/npillmayer/gel"
	"github.com/npillmayer/gel/geldbg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// The builder is driven through a single moving cursor; this is the canonical
// end-to-end construction sequence.
func TestBuildScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gel.builder")
	defer teardown()
	//
	root := gel.Build("list")
	root.Down("item").
		Text("hello").
		Up().
		Next("item").
		Down("link").
		Attr("href", "u").
		Text("t")
	want := `<list><item>hello</item><item><link href="u">t</link></item></list>`
	if root.String() != want {
		t.Logf("chain:\n%s", geldbg.Dump(root))
		t.Errorf("expected %s, have %s", want, root.String())
	}
	if root.Err() != nil {
		t.Errorf("expected error-free build, have %v", root.Err())
	}
}

func TestRoundTripSerialization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gel.builder")
	defer teardown()
	//
	root := gel.Build("root")
	root.Down("a").Text("x").Next("b")
	want := `<root><a>x</a><b></b></root>`
	if root.String() != want {
		t.Logf("chain:\n%s", geldbg.Dump(root))
		t.Errorf("expected %s, have %s", want, root.String())
	}
	//
	root = gel.Build("root")
	root.Down("a").Text("x")
	root.Down("b") // a second Down prepends
	want = `<root><b></b><a>x</a></root>`
	if root.String() != want {
		t.Logf("chain:\n%s", geldbg.Dump(root))
		t.Errorf("expected %s, have %s", want, root.String())
	}
}

func TestSerializationVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gel.builder")
	defer teardown()
	//
	root := gel.Build("root")
	txt := root.DownText("a < b")
	cmt := txt.NextComment("note")
	if txt.String() != "a < b" {
		t.Errorf("expected raw text for a text leaf, have %q", txt.String())
	}
	if cmt.String() != "<!--note-->" {
		t.Errorf("expected delimiter-wrapped comment, have %q", cmt.String())
	}
	if root.String() != "<root>a &lt; b<!--note--></root>" {
		t.Errorf("expected escaped text inside element markup, have %q", root.String())
	}
}
