package bptreekv

// createNewRoot handles a split that propagates to the root. The root
// must stay at RootPageIndex so that page 0 always names "the root":
// the current root's bytes are relocated to a freshly allocated page
// (left), and page 0 is reinitialized in place as a new internal node
// with left and rightPageIdx as its two children.
func (t *Table) createNewRoot(rightPageIdx uint32) error {
	leftIdx, left, err := t.allocPage()
	if err != nil {
		return err
	}
	root, err := t.getPage(RootPageIndex)
	if err != nil {
		return err
	}
	right, err := t.getPage(rightPageIdx)
	if err != nil {
		return err
	}

	// Keep page 0 as the root: copy its current contents into left,
	// then reinitialize page 0 as a fresh internal node.
	left.buf = root.buf
	left.setRoot(false)

	root.initInternal()
	root.setRoot(true)
	root.setSize(1)

	leftMax, err := t.maxKey(leftIdx)
	if err != nil {
		return err
	}
	root.setBranch(0, leftIdx, leftMax)
	root.setRightmost(rightPageIdx)

	left.setParent(RootPageIndex)
	right.setParent(RootPageIndex)

	t.log.WithFields(map[string]interface{}{
		"left": leftIdx, "right": rightPageIdx,
	}).Debug("created new root")

	// left's content, including its parent pointer, was at page 0 a
	// moment ago: any grandchildren still point their parent field at
	// RootPageIndex and must be rewritten to left's new location.
	if left.kind() == nodeInternal {
		return t.reparentChildren(leftIdx, left)
	}
	return nil
}

// reparentChildren rewrites the parent field of every child reachable
// from an internal page to point at that page's own index. Used after
// a page's bytes are relocated to a new slot (root creation) or a new
// node takes over a range of children (internal split).
func (t *Table) reparentChildren(idx uint32, p *page) error {
	size := int(p.size())
	for i := 0; i <= size; i++ {
		child, err := t.getPage(p.childAt(i))
		if err != nil {
			return err
		}
		child.setParent(idx)
	}
	return nil
}
