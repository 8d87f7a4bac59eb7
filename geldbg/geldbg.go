/*
Package geldbg implements helpers to debug a gel tree.

The chain of a tree is printed as an indented tree diagram, reconstructing
nesting from the per-node levels. This is primarily useful in tests, to see
at a glance where an insertion went wrong.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package geldbg

import (
	"fmt"
	"io"

	"github.com/npillmayer/gel"
	tp "github.com/xlab/treeprint"
)

// Dump returns a tree diagram of the chain of a gel tree.
func Dump(root *gel.Node) string {
	p := tp.New()
	// stack[L] is the open branch receiving nodes of level L
	stack := []tp.Tree{p}
	for _, n := range root.Sequence() {
		lvl := n.Level()
		if lvl >= len(stack) { // defect in the chain, make it visible
			lvl = len(stack) - 1
		}
		b := stack[lvl].AddBranch(label(n))
		stack = append(stack[:lvl+1], b)
	}
	return p.String()
}

// Print writes the tree diagram of a gel tree to a writer.
func Print(w io.Writer, root *gel.Node) {
	fmt.Fprint(w, Dump(root))
}

func label(n *gel.Node) string {
	s := n.Name()
	if n.Kind() != gel.Element {
		s = fmt.Sprintf("%s %q", n.Name(), n.String())
	}
	if !n.Mounted() {
		s += " (unmounted)"
	}
	return s
}
