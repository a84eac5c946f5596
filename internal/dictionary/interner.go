// Package dictionary implements the per-column string interner that backs
// STRING, STRING_ARRAY, and BYTES_ARRAY columns.
//
// A Table holds one Interner per column position rather than a single map
// keyed by column name, so no hashing or lookup on column name is needed on
// the write path.
package dictionary

import "github.com/queryshard/datablock/internal/hash"

// Interner assigns dense, first-occurrence-order integer ids to the strings
// written to a single column. Ids are contiguous from 0 and the reverse
// slice is always the exact inverse of the forward map.
type Interner struct {
	forward map[string]int32
	reverse []string

	// hashIndex buckets candidate ids by hash.ID(value). Intern resolves a
	// value by comparing it only against the strings in its bucket, so a
	// value whose hash has no bucket yet is inserted without any string
	// compare. forward is written on insertion but not consulted by Intern.
	hashIndex map[uint64][]int32
}

// NewInterner creates an empty Interner. Interners are created lazily, the
// first time a column's dictionary is actually written to.
func NewInterner() *Interner {
	return &Interner{
		forward:   make(map[string]int32),
		hashIndex: make(map[uint64][]int32),
	}
}

// Intern returns the dense id for value, inserting it if this is the first
// occurrence. The id assigned on insertion is len(forward) at that moment,
// so ids reflect first-occurrence order.
func (in *Interner) Intern(value string) int32 {
	h := hash.ID(value)
	for _, candidate := range in.hashIndex[h] {
		if in.reverse[candidate] == value {
			return candidate
		}
	}

	id := int32(len(in.forward)) //nolint:gosec
	in.forward[value] = id
	in.reverse = append(in.reverse, value)
	in.hashIndex[h] = append(in.hashIndex[h], id)

	return id
}

// Len returns the number of distinct strings interned so far.
func (in *Interner) Len() int {
	return len(in.reverse)
}

// ReverseMap returns the id→string mapping built so far, to be carried on
// the produced Block. The returned map is a fresh copy safe for the caller
// to retain after the builder is frozen.
func (in *Interner) ReverseMap() map[int32]string {
	out := make(map[int32]string, len(in.reverse))
	for id, s := range in.reverse {
		out[int32(id)] = s //nolint:gosec
	}

	return out
}

// Table holds one Interner per column position, created on first write.
type Table struct {
	byColumn []*Interner // indexed by column position; nil until first write
}

// NewTable creates a Table sized for numColumns columns, all lazily nil.
func NewTable(numColumns int) *Table {
	return &Table{byColumn: make([]*Interner, numColumns)}
}

// Intern interns value into the dictionary for column colIndex, creating
// that column's Interner on first use.
func (t *Table) Intern(colIndex int, value string) int32 {
	if t.byColumn[colIndex] == nil {
		t.byColumn[colIndex] = NewInterner()
	}

	return t.byColumn[colIndex].Intern(value)
}

// ReverseDictionaries returns the reverse map for every column that has at
// least one interned value, keyed by column name. Columns with no string
// data (including string-bearing columns never written to) are absent:
// only string-bearing columns appear.
func (t *Table) ReverseDictionaries(columnNames []string) map[string]map[int32]string {
	out := make(map[string]map[int32]string)
	for i, interner := range t.byColumn {
		if interner == nil || interner.Len() == 0 {
			continue
		}
		out[columnNames[i]] = interner.ReverseMap()
	}

	return out
}
