// Package bptreekv is an embedded, single-file key-value store backed by
// a disk-resident B+-tree.
//
// A process opens a database by file path, performs point lookups and
// upserts of short string keys mapped to short string values, and
// closes the database to flush state durably. The store is meant to be
// used as a library by a host program, not as a standalone server.
//
// Key features:
//   - fixed 4096-byte page layout, leaf and internal node pages
//   - an in-process page cache over a fixed slot table, backed by a
//     single file opened with O_RDWR
//   - recursive node splitting on insert, propagating up to the root
//   - one coarse mutex per open database guarding all public operations
//
// Non-goals: deletion, range scans, secondary indices, crash-consistent
// journaling (the store flushes on Close only), and scaling writes
// beyond a single mutex. See DESIGN.md for the full rationale.
//
// Basic usage:
//
//	db, err := bptreekv.Open("data.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	if err := db.Set("hello", "world"); err != nil {
//	    log.Fatal(err)
//	}
//
//	value, ok, err := db.Get("hello")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if ok {
//	    fmt.Println(value)
//	}
package bptreekv
