//go:build smallpages

package bptreekv

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// scenario 1: grow and read back.
func TestGrowAndReadBack(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i <= 100; i++ {
		require.NoError(t, db.Set(fmt.Sprintf("hello%d", i), fmt.Sprintf("world%d", i)))
	}

	for _, k := range []int{0, 50, 100} {
		v, ok, err := db.Get(fmt.Sprintf("hello%d", k))
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, fmt.Sprintf("world%d", k), v)
	}

	_, ok, err := db.Get("nope")
	require.NoError(t, err)
	require.False(t, ok)
}

// scenario 2: persistence across close/reopen.
func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	db, err := Open(path)
	require.NoError(t, err)
	for i := 0; i <= 100; i++ {
		require.NoError(t, db.Set(fmt.Sprintf("hello%d", i), fmt.Sprintf("world%d", i)))
	}
	require.NoError(t, db.Close())

	db2, err := Open(path)
	require.NoError(t, err)
	defer db2.Close()

	for i := 0; i <= 100; i++ {
		v, ok, err := db2.Get(fmt.Sprintf("hello%d", i))
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, fmt.Sprintf("world%d", i), v)
	}
}

// scenario 3: interleaved writers from two goroutines sharing one handle.
func TestInterleavedWriters(t *testing.T) {
	db := openTestDB(t)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i <= 100; i += 2 {
			require.NoError(t, db.Set(fmt.Sprintf("hello%d", i), fmt.Sprintf("world%d", i)))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 1; i <= 100; i += 2 {
			require.NoError(t, db.Set(fmt.Sprintf("hello%d", i), fmt.Sprintf("world%d", i)))
		}
	}()
	wg.Wait()

	for i := 0; i <= 100; i++ {
		v, ok, err := db.Get(fmt.Sprintf("hello%d", i))
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, fmt.Sprintf("world%d", i), v)
	}
}

// scenario 4: overwrite.
func TestOverwrite(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Set("x", "a"))
	var before strings.Builder
	require.NoError(t, db.DebugPrint(&before))

	require.NoError(t, db.Set("x", "b"))
	var after strings.Builder
	require.NoError(t, db.DebugPrint(&after))

	v, ok, err := db.Get("x")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "b", v)

	// overwrite must not change the tree's shape, only the value in place.
	require.Equal(t, before.String(), strings.ReplaceAll(after.String(), "b", "a"))
}

// scenario 5: reverse insertion order still yields a correctly ordered tree.
func TestReverseInsertion(t *testing.T) {
	db := openTestDB(t)

	for i := 99; i >= 0; i-- {
		require.NoError(t, db.Set(fmt.Sprintf("k%03d", i), fmt.Sprintf("v%03d", i)))
	}

	v, ok, err := db.Get("k042")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v042", v)

	require.NoError(t, checkInvariants(db))
}

// scenario 6: split at the cell_idx == LEFT boundary.
func TestSplitAtBoundary(t *testing.T) {
	db := openTestDB(t)

	// leafCapacity is 4 under this build tag; fill a leaf exactly.
	require.NoError(t, db.Set("b", "2"))
	require.NoError(t, db.Set("d", "4"))
	require.NoError(t, db.Set("f", "6"))
	require.NoError(t, db.Set("h", "8"))

	// "e" sorts at index 2 == leafSplitLeft, so it must land in the left page.
	require.NoError(t, db.Set("e", "5"))

	v, ok, err := db.Get("e")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "5", v)

	// the root's separator for the left page is its new maximum, "e";
	// it would be "d" had "e" gone to the right page.
	root, err := db.getPage(RootPageIndex)
	require.NoError(t, err)
	require.Equal(t, "e", root.branchKey(0))

	require.NoError(t, checkInvariants(db))
}
