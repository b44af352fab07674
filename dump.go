package css

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the structure of a rule tree as an ASCII tree for
// debugging: one node per rule showing its selector and declaration
// count. It does not emit CSS; use Render for that.
func Dump(r *Rule) string {
	tree := treeprint.NewWithRoot(dumpLabel(r))
	addChildren(tree, r)
	return tree.String()
}

func addChildren(branch treeprint.Tree, r *Rule) {
	for _, child := range r.children {
		if len(child.children) == 0 {
			branch.AddNode(dumpLabel(child))
			continue
		}
		addChildren(branch.AddBranch(dumpLabel(child)), child)
	}
}

func dumpLabel(r *Rule) string {
	return fmt.Sprintf("%s (%d decls)", r.selector, len(r.decls))
}
