package bptreekv

// leafInsertRaw shifts records [cellIdx, size) one slot right, writes
// (key, value) at cellIdx, and increments size. Requires
// size < leafCapacity.
func leafInsertRaw(p *page, cellIdx int, key, value string) {
	size := int(p.size())
	p.shiftLeafRight(cellIdx, size)
	p.setLeafRecord(cellIdx, key, value)
	p.setSize(uint16(size + 1))
}

// leafInsert inserts (key, value) at the cursor's position, splitting
// the leaf first if it is already full.
func (t *Table) leafInsert(c cursor, key, value string) error {
	p, err := t.getPage(c.pageIdx)
	if err != nil {
		return err
	}

	if int(p.size()) < leafCapacity {
		leafInsertRaw(p, c.cellIdx, key, value)
		return nil
	}
	return t.leafSplitInsert(c, p, key, value)
}

// leafSplitInsert splits a full leaf into two and inserts (key, value)
// into whichever half the cursor's cell index now falls in.
//
// The split boundary is asymmetric by design: cellIdx == leafSplitLeft
// goes to the *left* page (strict '>' below), not the right one.
func (t *Table) leafSplitInsert(c cursor, oldPage *page, key, value string) error {
	oldIdx := c.pageIdx
	oldMax, err := t.maxKey(oldIdx)
	if err != nil {
		return err
	}

	newIdx, newPage, err := t.allocPage()
	if err != nil {
		return err
	}
	newPage.initLeaf()
	newPage.setParent(oldPage.parent())

	copyLeafRange(newPage, 0, oldPage, leafSplitLeft, leafSplitRight)
	oldPage.setSize(leafSplitLeft)
	newPage.setSize(leafSplitRight)

	inNewPage := c.cellIdx > leafSplitLeft
	targetPage, targetCell := oldPage, c.cellIdx
	if inNewPage {
		targetPage, targetCell = newPage, c.cellIdx-leafSplitLeft
	}
	leafInsertRaw(targetPage, targetCell, key, value)

	t.log.WithFields(map[string]interface{}{
		"old_page": oldIdx, "new_page": newIdx,
	}).Debug("split leaf")

	if oldPage.isRoot() {
		return t.createNewRoot(newIdx)
	}

	newMax, err := t.maxKey(oldIdx)
	if err != nil {
		return err
	}
	parentIdx := oldPage.parent()
	parent, err := t.getPage(parentIdx)
	if err != nil {
		return err
	}
	if err := updateSeparator(parent, oldMax, newMax); err != nil {
		return err
	}
	return t.internalInsert(parentIdx, newIdx)
}
