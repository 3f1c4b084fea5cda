//go:build !smallpages

package bptreekv

// Production page geometry: capacities are derived from PageSize so
// that a leaf or internal body packs as many records/branches as fit
// in one page, after the 8-byte page header (see page.go).
//
//	leafCapacity    = (PageSize - headerSize) / recordSize        = 14
//	internalCapacity = (PageSize - headerSize - 4) / branchSize   = 113
//
// The "- 4" for internal pages accounts for the trailing rightmost
// child pointer, which has no associated separator key.
const (
	leafCapacity     = (PageSize - pageHeaderSize) / recordSize
	internalCapacity = (PageSize - pageHeaderSize - 4) / branchSize
)
