package bptreekv

import "encoding/binary"

// pageHeaderSize is the size, in bytes, of the header common to every
// page, leaf or internal.
//
// Memory layout (little-endian), matching the on-disk format:
//
//	Offset  Size  Field
//	0       1     node kind (0 = internal, 1 = leaf)
//	1       1     is_root (0/1)
//	2       2     entry count "size"
//	4       4     parent page index
//	8       ...   node body (leaf records or internal branches)
const pageHeaderSize = 8

// recordSize is the on-disk width of one leaf (key, value) record:
// a NUL-terminated key field followed by a NUL-terminated value field.
const recordSize = keyFieldLen + valueFieldLen

// branchSize is the on-disk width of one internal branch: a child page
// index followed by a NUL-terminated separator key field.
const branchSize = 4 + keyFieldLen

// page is the in-memory view of one resident PageSize-byte buffer. All
// accessors operate directly on buf; there is no decoded mirror, so a
// cursor that holds a *page between find and insert is looking at a
// stable, mutable view of exactly what will be written to disk.
type page struct {
	buf [PageSize]byte
}

func (p *page) kind() nodeKind { return nodeKind(p.buf[0]) }
func (p *page) setKind(k nodeKind) { p.buf[0] = byte(k) }

func (p *page) isRoot() bool { return p.buf[1] != 0 }
func (p *page) setRoot(root bool) {
	if root {
		p.buf[1] = 1
	} else {
		p.buf[1] = 0
	}
}

func (p *page) size() uint16 { return binary.LittleEndian.Uint16(p.buf[2:4]) }
func (p *page) setSize(n uint16) { binary.LittleEndian.PutUint16(p.buf[2:4], n) }

func (p *page) parent() uint32 { return binary.LittleEndian.Uint32(p.buf[4:8]) }
func (p *page) setParent(idx uint32) { binary.LittleEndian.PutUint32(p.buf[4:8], idx) }

// initLeaf resets a page buffer to an empty leaf node. The root flag
// and parent are left untouched; callers set those explicitly.
func (p *page) initLeaf() {
	p.setKind(nodeLeaf)
	p.setSize(0)
}

// initInternal resets a page buffer to an empty internal node.
func (p *page) initInternal() {
	p.setKind(nodeInternal)
	p.setSize(0)
}

// --- leaf body ---

func recordOffset(i int) int { return pageHeaderSize + i*recordSize }

func (p *page) leafKey(i int) string {
	off := recordOffset(i)
	return getCString(p.buf[off : off+keyFieldLen])
}

func (p *page) leafValue(i int) string {
	off := recordOffset(i) + keyFieldLen
	return getCString(p.buf[off : off+valueFieldLen])
}

func (p *page) setLeafValue(i int, value string) {
	off := recordOffset(i) + keyFieldLen
	putCString(p.buf[off:off+valueFieldLen], value)
}

func (p *page) setLeafRecord(i int, key, value string) {
	off := recordOffset(i)
	putCString(p.buf[off:off+keyFieldLen], key)
	putCString(p.buf[off+keyFieldLen:off+keyFieldLen+valueFieldLen], value)
}

// shiftLeafRight moves records [from, size) one slot to the right,
// making room for an insert at index from. Requires size < leafCapacity.
func (p *page) shiftLeafRight(from int, size int) {
	src := p.buf[recordOffset(from):recordOffset(size)]
	dst := p.buf[recordOffset(from+1) : recordOffset(size+1)]
	copy(dst, src)
}

// copyLeafRange copies n records starting at srcStart in src to dstStart in dst.
func copyLeafRange(dst *page, dstStart int, src *page, srcStart int, n int) {
	copy(dst.buf[recordOffset(dstStart):recordOffset(dstStart+n)],
		src.buf[recordOffset(srcStart):recordOffset(srcStart+n)])
}

// --- internal body ---

// branchOffset returns the byte offset of branch i. The branch array
// starts immediately after the page header; the rightmost child
// pointer trails the full array, see rightmostOffset.
func branchOffset(i int) int { return pageHeaderSize + i*branchSize }

func rightmostOffset() int { return pageHeaderSize + internalCapacity*branchSize }

func (p *page) branchChild(i int) uint32 {
	off := branchOffset(i)
	return binary.LittleEndian.Uint32(p.buf[off : off+4])
}

func (p *page) branchKey(i int) string {
	off := branchOffset(i) + 4
	return getCString(p.buf[off : off+keyFieldLen])
}

func (p *page) setBranch(i int, child uint32, key string) {
	off := branchOffset(i)
	binary.LittleEndian.PutUint32(p.buf[off:off+4], child)
	putCString(p.buf[off+4:off+4+keyFieldLen], key)
}

func (p *page) setBranchKey(i int, key string) {
	off := branchOffset(i) + 4
	putCString(p.buf[off:off+keyFieldLen], key)
}

func (p *page) rightmost() uint32 {
	off := rightmostOffset()
	return binary.LittleEndian.Uint32(p.buf[off : off+4])
}

func (p *page) setRightmost(idx uint32) {
	off := rightmostOffset()
	binary.LittleEndian.PutUint32(p.buf[off:off+4], idx)
}

// childAt returns the child page index at logical position i, where
// position size() names the rightmost child (the effective child count
// of an internal page is size()+1).
func (p *page) childAt(i int) uint32 {
	if i >= int(p.size()) {
		return p.rightmost()
	}
	return p.branchChild(i)
}

// shiftBranchRight moves branches [from, size) one slot right, making
// room for an insert at index from. Requires size < internalCapacity.
func (p *page) shiftBranchRight(from int, size int) {
	src := p.buf[branchOffset(from):branchOffset(size)]
	dst := p.buf[branchOffset(from+1) : branchOffset(size+1)]
	copy(dst, src)
}

func copyBranchRange(dst *page, dstStart int, src *page, srcStart int, n int) {
	copy(dst.buf[branchOffset(dstStart):branchOffset(dstStart+n)],
		src.buf[branchOffset(srcStart):branchOffset(srcStart+n)])
}

// --- fixed-width C-style string encoding ---

// putCString writes s, NUL-terminated and zero-padded, into field.
// Callers are responsible for ensuring len(s) < len(field); the public
// Set path enforces this via validateKey/validateValue before any
// field is touched.
func putCString(field []byte, s string) {
	for i := range field {
		field[i] = 0
	}
	copy(field, s)
}

// getCString reads a NUL-terminated string out of a fixed-width field.
func getCString(field []byte) string {
	for i, b := range field {
		if b == 0 {
			return string(field[:i])
		}
	}
	return string(field)
}
