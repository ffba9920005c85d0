// Package suggest holds the ordered set of completion candidates and the
// directory scan that seeds it.
package suggest

import (
	"strings"

	"github.com/google/btree"
)

// degree of the underlying B-tree. Directory listings are small; any value
// above the minimum keeps the tree shallow.
const degree = 16

// Index is an immutable, lexicographically ordered set of completion
// candidates. A nil *Index is valid and never suggests anything.
type Index struct {
	tree *btree.BTreeG[string]
}

// NewIndex builds an index from entries. Duplicates collapse and empty
// strings are skipped.
func NewIndex(entries []string) *Index {
	tree := btree.NewOrderedG[string](degree)
	for _, e := range entries {
		if e == "" {
			continue
		}
		tree.ReplaceOrInsert(e)
	}
	return &Index{tree: tree}
}

// Lookup returns the lexicographically smallest entry that starts with prefix.
//
// Only the first entry >= prefix is inspected: every entry carrying the prefix
// sorts at or after prefix itself, and before any entry that does not, so if
// the first one fails the test no later one can pass.
func (i *Index) Lookup(prefix string) (string, bool) {
	if i == nil || i.tree == nil {
		return "", false
	}
	var (
		match string
		ok    bool
	)
	i.tree.AscendGreaterOrEqual(prefix, func(item string) bool {
		if strings.HasPrefix(item, prefix) {
			match, ok = item, true
		}
		return false
	})
	return match, ok
}

// Len returns the number of distinct entries.
func (i *Index) Len() int {
	if i == nil || i.tree == nil {
		return 0
	}
	return i.tree.Len()
}

// Entries returns all entries in ascending order.
func (i *Index) Entries() []string {
	if i == nil || i.tree == nil {
		return nil
	}
	out := make([]string, 0, i.tree.Len())
	i.tree.Ascend(func(item string) bool {
		out = append(out, item)
		return true
	})
	return out
}
