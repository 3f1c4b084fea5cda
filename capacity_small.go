//go:build smallpages

package bptreekv

// Test page geometry: small capacities (LEAF_CAPACITY = INTERNAL_CAPACITY
// = 4) that exercise splits with only a handful of keys. Build test
// binaries that need to observe splits with `-tags smallpages`.
//
// The on-disk page is still PageSize bytes; only the number of
// records/branches packed into it shrinks, leaving the rest of each
// page unused. Files written under one configuration are not readable
// under the other.
const (
	leafCapacity     = 4
	internalCapacity = 4
)
