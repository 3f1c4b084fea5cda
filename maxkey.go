package bptreekv

// maxKey walks a subtree's rightmost chain down to a leaf and returns
// its maximum key. It is O(tree height) and is called repeatedly
// during internal inserts and splits; see DESIGN.md for the tradeoff
// against caching a max-separator per internal page.
func (t *Table) maxKey(idx uint32) (string, error) {
	p, err := t.getPage(idx)
	if err != nil {
		return "", err
	}
	switch p.kind() {
	case nodeLeaf:
		if p.size() == 0 {
			return "", newErr(ErrCorrupt, "leaf has no records")
		}
		return p.leafKey(int(p.size()) - 1), nil
	case nodeInternal:
		return t.maxKey(p.rightmost())
	default:
		return "", newErr(ErrCorrupt, "page has unknown node kind")
	}
}
