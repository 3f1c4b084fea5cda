//go:build !unix

package bptreekv

import "os"

// flockExclusive is a no-op on platforms without flock(2); WithFileLock
// has no effect there.
func flockExclusive(f *os.File) error { return nil }

func funlock(f *os.File) error { return nil }
