package bptreekv

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Table is an open database: a file handle, a count of allocated
// pages, a fixed-size slot array of resident page buffers, and the
// mutex that serializes every public operation.
type Table struct {
	mu sync.Mutex

	file     *os.File
	locked   bool
	maxPages uint32
	n        uint32
	pages    []*page

	log    *logrus.Logger
	closed bool
}

// Open creates or opens a database file. If the file is empty, page 0
// is initialized as an empty leaf root. If the file's length is not a
// whole multiple of PageSize, the file is reported as corrupt.
func Open(path string, opts ...Option) (*Table, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, wrapErr(ErrIO, err, "unable to open database file")
	}

	locked := false
	if o.fileLock {
		if err := flockExclusive(f); err != nil {
			f.Close()
			return nil, wrapErr(ErrIO, err, "database file is locked by another process")
		}
		locked = true
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, wrapErr(ErrIO, err, "unable to stat database file")
	}

	if info.Size()%PageSize != 0 {
		f.Close()
		return nil, newErr(ErrCorrupt, "database file is not a whole number of pages")
	}

	t := &Table{
		file:     f,
		locked:   locked,
		maxPages: o.maxPages,
		n:        uint32(info.Size() / PageSize),
		pages:    make([]*page, o.maxPages),
		log:      o.logger,
	}

	if t.n == 0 {
		root, err := t.getPage(RootPageIndex)
		if err != nil {
			f.Close()
			return nil, err
		}
		root.initLeaf()
		root.setRoot(true)
		t.log.WithField("page", RootPageIndex).Debug("initialized empty root leaf")
	}

	return t, nil
}

// getPage returns the resident buffer for page idx, materializing it
// from the file on first access. Subsequent calls for the same idx
// return the same *page, so a cursor holding it observes in-place
// mutation.
func (t *Table) getPage(idx uint32) (*page, error) {
	if idx >= t.maxPages {
		return nil, newErr(ErrCapacityExceeded, "page index exceeds MaxPages")
	}

	if t.pages[idx] == nil {
		p := &page{}
		if idx < t.n {
			if _, err := t.file.ReadAt(p.buf[:], int64(idx)*PageSize); err != nil {
				return nil, wrapErr(ErrIO, err, "error reading page")
			}
		}
		t.pages[idx] = p
		if idx >= t.n {
			t.n = idx + 1
			t.log.WithField("page", idx).Debug("allocated page")
		}
	}

	return t.pages[idx], nil
}

// allocPage returns the index and buffer of a freshly allocated page.
func (t *Table) allocPage() (uint32, *page, error) {
	idx := t.n
	p, err := t.getPage(idx)
	if err != nil {
		return 0, nil, err
	}
	return idx, p, nil
}

// flushPage writes page idx back to its file offset.
func (t *Table) flushPage(idx uint32) error {
	p := t.pages[idx]
	if _, err := t.file.WriteAt(p.buf[:], int64(idx)*PageSize); err != nil {
		return wrapErr(ErrIO, err, "error writing page")
	}
	return nil
}

// Close flushes every resident page in index order and closes the
// underlying file. No operation on t is legal after Close returns;
// callers must externally synchronize Close against any outstanding
// caller of Set/Get, since Close itself does not take the mutex.
func (t *Table) Close() error {
	if t.closed {
		return newErr(ErrClosed, "database already closed")
	}

	for i := uint32(0); i < t.n; i++ {
		if t.pages[i] != nil {
			if err := t.flushPage(i); err != nil {
				return err
			}
		}
	}

	if t.locked {
		_ = funlock(t.file)
	}

	if err := t.file.Close(); err != nil {
		return wrapErr(ErrIO, err, "error closing database file")
	}

	t.closed = true
	t.log.Debug("database closed")
	return nil
}
