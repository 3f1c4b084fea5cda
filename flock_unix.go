//go:build unix

package bptreekv

import (
	"os"

	"golang.org/x/sys/unix"
)

// flockExclusive takes a non-blocking advisory exclusive lock on f, to
// keep a second process from opening the same database file. This is
// a single all-or-nothing lock rather than a reader-slot table: there
// is no multi-reader story here, so there is nothing finer to model.
func flockExclusive(f *os.File) error {
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		return err
	}
	return nil
}

func funlock(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
