package bptreekv

// updateSeparator finds the branch in page whose separator equals
// oldKey and rewrites it to newKey. If oldKey names the subtree under
// the rightmost child (no separator is stored for it), this is a
// harmless no-op: the rightmost child's correct separator is derived
// fresh, from its own max key, the next time it is demoted out of the
// rightmost slot by internalInsertRaw.
func updateSeparator(p *page, oldKey, newKey string) error {
	idx := internalFindChild(p, oldKey)
	if idx >= int(p.size()) {
		return nil
	}
	p.setBranchKey(idx, newKey)
	return nil
}

// internalInsertRaw inserts child as a new branch (or the new
// rightmost) of parent. Requires parent.size() < internalCapacity.
func (t *Table) internalInsertRaw(parentIdx, childIdx uint32) error {
	parent, err := t.getPage(parentIdx)
	if err != nil {
		return err
	}
	child, err := t.getPage(childIdx)
	if err != nil {
		return err
	}
	child.setParent(parentIdx)

	oldSize := int(parent.size())
	rightIdx := parent.rightmost()

	childMax, err := t.maxKey(childIdx)
	if err != nil {
		return err
	}
	rightMax, err := t.maxKey(rightIdx)
	if err != nil {
		return err
	}

	if childMax > rightMax {
		parent.setBranch(oldSize, rightIdx, rightMax)
		parent.setSize(uint16(oldSize + 1))
		parent.setRightmost(childIdx)
		return nil
	}

	idx := internalFindChild(parent, childMax)
	parent.shiftBranchRight(idx, oldSize)
	parent.setBranch(idx, childIdx, childMax)
	parent.setSize(uint16(oldSize + 1))
	return nil
}

// internalInsert inserts child under parent, splitting parent first if
// it is already full.
func (t *Table) internalInsert(parentIdx, childIdx uint32) error {
	parent, err := t.getPage(parentIdx)
	if err != nil {
		return err
	}
	if int(parent.size()) < internalCapacity {
		return t.internalInsertRaw(parentIdx, childIdx)
	}
	return t.internalSplitInsert(parentIdx, childIdx)
}

// internalSplitInsert splits a full internal page into two and routes
// child into whichever half its max key belongs in.
func (t *Table) internalSplitInsert(oldIdx, childIdx uint32) error {
	oldPage, err := t.getPage(oldIdx)
	if err != nil {
		return err
	}
	oldMax, err := t.maxKey(oldIdx)
	if err != nil {
		return err
	}

	newIdx, newPage, err := t.allocPage()
	if err != nil {
		return err
	}
	newPage.initInternal()
	grandparentIdx := oldPage.parent()
	newPage.setParent(grandparentIdx)

	copyBranchRange(newPage, 0, oldPage, internalSplitLeft, internalSplitRight)
	oldPage.setSize(internalSplitLeft)
	newPage.setSize(internalSplitRight)

	newPage.setRightmost(oldPage.rightmost())
	promotedChild := oldPage.branchChild(int(oldPage.size()) - 1)
	midKey := oldPage.branchKey(int(oldPage.size()) - 1)
	oldPage.setRightmost(promotedChild)
	oldPage.setSize(oldPage.size() - 1)

	if err := t.reparentChildren(newIdx, newPage); err != nil {
		return err
	}

	childMax, err := t.maxKey(childIdx)
	if err != nil {
		return err
	}
	insertTo := newIdx
	if childMax <= midKey {
		insertTo = oldIdx
	}
	if err := t.internalInsertRaw(insertTo, childIdx); err != nil {
		return err
	}

	t.log.WithFields(map[string]interface{}{
		"old_page": oldIdx, "new_page": newIdx,
	}).Debug("split internal node")

	if oldPage.isRoot() {
		return t.createNewRoot(newIdx)
	}

	newMax, err := t.maxKey(oldIdx)
	if err != nil {
		return err
	}
	grandparent, err := t.getPage(grandparentIdx)
	if err != nil {
		return err
	}
	if err := updateSeparator(grandparent, oldMax, newMax); err != nil {
		return err
	}
	return t.internalInsert(grandparentIdx, newIdx)
}
