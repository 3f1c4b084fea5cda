package bptreekv

import (
	"fmt"
	"io"
	"strings"
)

// DebugPrint writes a recursive, indented dump of the tree to w. It is
// meant for tests and interactive debugging; unlike Set/Get it does
// not take the database mutex and is not safe to call concurrently
// with a mutating operation.
func (t *Table) DebugPrint(w io.Writer) error {
	return t.debugPrintPage(w, RootPageIndex, 0)
}

func (t *Table) debugPrintPage(w io.Writer, idx uint32, indent int) error {
	p, err := t.getPage(idx)
	if err != nil {
		return err
	}
	pad := strings.Repeat("  ", indent)

	switch p.kind() {
	case nodeLeaf:
		fmt.Fprintf(w, "%s- leaf (size %d)\n", pad, p.size())
		for i := 0; i < int(p.size()); i++ {
			fmt.Fprintf(w, "%s  - %s -> %s\n", pad, p.leafKey(i), p.leafValue(i))
		}
	case nodeInternal:
		fmt.Fprintf(w, "%s- internal (size %d)\n", pad, p.size())
		for i := 0; i < int(p.size()); i++ {
			if err := t.debugPrintPage(w, p.branchChild(i), indent+1); err != nil {
				return err
			}
			fmt.Fprintf(w, "%s  - key (%s)\n", pad, p.branchKey(i))
		}
		if err := t.debugPrintPage(w, p.rightmost(), indent+1); err != nil {
			return err
		}
	}
	return nil
}
