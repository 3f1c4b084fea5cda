package bptreekv

import "fmt"

// checkInvariants walks the whole tree and verifies its structural
// properties: capacity bounds, ascending keys within a leaf, separator
// correctness, and parent pointers. It is a test helper, not part of
// the public API.
func checkInvariants(db *Table) error {
	return checkSubtree(db, RootPageIndex)
}

func checkSubtree(db *Table, idx uint32) error {
	p, err := db.getPage(idx)
	if err != nil {
		return err
	}

	if idx != RootPageIndex {
		parent, err := db.getPage(p.parent())
		if err != nil {
			return fmt.Errorf("page %d: parent %d unreachable: %w", idx, p.parent(), err)
		}
		if parent.kind() != nodeInternal {
			return fmt.Errorf("page %d: parent %d is not internal", idx, p.parent())
		}
		found := false
		for i := 0; i <= int(parent.size()); i++ {
			if parent.childAt(i) == idx {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("page %d: not a child of its recorded parent %d", idx, p.parent())
		}
	}

	switch p.kind() {
	case nodeLeaf:
		if int(p.size()) > leafCapacity {
			return fmt.Errorf("page %d: leaf exceeds capacity: %d > %d", idx, p.size(), leafCapacity)
		}
		for i := 1; i < int(p.size()); i++ {
			if p.leafKey(i-1) >= p.leafKey(i) {
				return fmt.Errorf("page %d: leaf keys not strictly ascending at %d", idx, i)
			}
		}
		return nil
	case nodeInternal:
		if int(p.size()) > internalCapacity {
			return fmt.Errorf("page %d: internal node exceeds capacity: %d > %d", idx, p.size(), internalCapacity)
		}
		for i := 0; i < int(p.size()); i++ {
			child := p.branchChild(i)
			got, err := db.maxKey(child)
			if err != nil {
				return err
			}
			if got != p.branchKey(i) {
				return fmt.Errorf("page %d: branch %d separator %q != child max %q", idx, i, p.branchKey(i), got)
			}
			if err := checkSubtree(db, child); err != nil {
				return err
			}
		}
		rightMax, err := db.maxKey(p.rightmost())
		if err != nil {
			return err
		}
		if p.size() > 0 && rightMax <= p.branchKey(int(p.size())-1) {
			return fmt.Errorf("page %d: rightmost max %q does not exceed last separator %q", idx, rightMax, p.branchKey(int(p.size())-1))
		}
		return checkSubtree(db, p.rightmost())
	default:
		return fmt.Errorf("page %d: unknown node kind", idx)
	}
}
