package bptreekv

import "strings"

// cursor names a leaf position: the leaf page, a cell index within it,
// and whether that cell holds an exact match for the search key. A
// cell index equal to the leaf's size names the insertion point past
// the last record.
type cursor struct {
	pageIdx uint32
	cellIdx int
	found   bool
}

// find descends from the root to locate key, using binary search
// within each page.
func (t *Table) find(key string) (cursor, error) {
	root, err := t.getPage(RootPageIndex)
	if err != nil {
		return cursor{}, err
	}
	return t.findFrom(RootPageIndex, root, key)
}

func (t *Table) findFrom(idx uint32, p *page, key string) (cursor, error) {
	switch p.kind() {
	case nodeLeaf:
		return leafFind(idx, p, key), nil
	case nodeInternal:
		childIdx := p.childAt(internalFindChild(p, key))
		child, err := t.getPage(childIdx)
		if err != nil {
			return cursor{}, err
		}
		return t.findFrom(childIdx, child, key)
	default:
		return cursor{}, newErr(ErrCorrupt, "page has unknown node kind")
	}
}

// leafFind binary-searches a leaf page's records for key. On a miss it
// returns the lower-bound insertion index.
func leafFind(idx uint32, p *page, key string) cursor {
	lower, upper := 0, int(p.size())
	for lower != upper {
		mid := (lower + upper) / 2
		switch strings.Compare(key, p.leafKey(mid)) {
		case 0:
			return cursor{pageIdx: idx, cellIdx: mid, found: true}
		case -1:
			upper = mid
		default:
			lower = mid + 1
		}
	}
	return cursor{pageIdx: idx, cellIdx: lower, found: false}
}

// internalFindChild returns the smallest branch index i such that
// key <= separator[i], or size() if no such branch exists (meaning:
// take the rightmost child). A separator equal to key routes left,
// since separators are inclusive upper bounds of their left subtree.
func internalFindChild(p *page, key string) int {
	lower, upper := 0, int(p.size())
	for lower != upper {
		mid := (lower + upper) / 2
		if strings.Compare(key, p.branchKey(mid)) <= 0 {
			upper = mid
		} else {
			lower = mid + 1
		}
	}
	return lower
}
