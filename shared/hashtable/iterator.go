package hashtable

import "github.com/on-the-ground/chainhash/shared/linkedlist"

const invalidIdx = -1

// Iterator walks every pair of a HashTable, bucket by bucket. It is valid
// while its chain cursor is.
type Iterator[V any] struct {
	table     *HashTable[V]
	bucketIdx int
	chainIt   *linkedlist.Iterator[*KeyValue[V]]
}

// NewIterator positions a cursor at the first pair of the first non-empty
// bucket. The cursor is invalid right away when t is empty.
func NewIterator[V any](t *HashTable[V]) *Iterator[V] {
	it := &Iterator[V]{table: t, bucketIdx: invalidIdx}
	if t.numElements == 0 {
		return it
	}

	if !it.openFrom(0) {
		panic("hashtable: elements counted but every bucket is empty")
	}
	return it
}

func (t *HashTable[V]) Iterator() *Iterator[V] {
	return NewIterator(t)
}

func (it *Iterator[V]) IsValid() bool {
	return it.chainIt != nil && it.chainIt.IsValid()
}

// Next moves to the following pair of the current chain, or to the head of
// the next non-empty bucket. Once every bucket is exhausted it reports false
// and the iterator stays invalid.
func (it *Iterator[V]) Next() bool {
	if !it.IsValid() {
		return false
	}
	if it.chainIt.Next() {
		return true
	}
	if it.openFrom(it.bucketIdx + 1) {
		return true
	}

	it.bucketIdx = invalidIdx
	it.chainIt = nil
	return false
}

func (it *Iterator[V]) Get() (KeyValue[V], bool) {
	if !it.IsValid() {
		return KeyValue[V]{}, false
	}
	return *it.current(), true
}

// Remove deletes the current pair and returns it. The iterator advances
// before the key is removed from the table, because removal through the
// table invalidates the chain cursor of the removed node.
func (it *Iterator[V]) Remove() (KeyValue[V], bool) {
	kv, ok := it.Get()
	if !ok {
		return KeyValue[V]{}, false
	}

	it.Next()

	removed, ok := it.table.Remove(kv.Key)
	if !ok || removed.Key != kv.Key {
		panic("hashtable: pair under iterator vanished before removal")
	}
	return removed, true
}

func (it *Iterator[V]) current() *KeyValue[V] {
	return it.chainIt.Get()
}

// openFrom opens a chain cursor on the first non-empty bucket at or after from.
func (it *Iterator[V]) openFrom(from int) bool {
	for i := from; i < len(it.table.buckets); i++ {
		if it.table.buckets[i].NumElements() > 0 {
			it.bucketIdx = i
			it.chainIt = it.table.buckets[i].Iterator()
			return true
		}
	}
	return false
}
