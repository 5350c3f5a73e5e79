package hashtable

import (
	"errors"
	"fmt"
	"iter"

	"github.com/on-the-ground/chainhash/shared/linkedlist"
	"go.uber.org/zap"
)

const (
	// maxLoadFactor is the element to bucket ratio at which the table grows.
	maxLoadFactor = 3
	// growthFactor multiplies the bucket count on every growth.
	growthFactor = 9
)

var (
	// ErrInvalidBucketCount is raised when a table is allocated without buckets.
	ErrInvalidBucketCount = errors.New("bucket count must be positive")

	// ErrFreed is raised when a table is used after Free.
	ErrFreed = errors.New("hashtable has been freed")
)

// KeyValue is one entry of the table. The table owns the record, not the
// resource Value may refer to.
type KeyValue[V any] struct {
	Key   uint64
	Value V
}

// FreeFunc releases a value at teardown. nil means values are not owned.
type FreeFunc[V any] func(value V)

// HashTable is a chained hash table over uint64 keys. Every bucket is a
// linked list of key/value records, and the bucket of a key is key modulo
// the bucket count.
//
// A HashTable is not safe for concurrent use.
type HashTable[V any] struct {
	buckets     []*linkedlist.List[*KeyValue[V]]
	numElements int
	logger      *zap.Logger
}

// New allocates a table with numBuckets empty chains. It panics when
// numBuckets is not positive.
func New[V any](numBuckets int, opts ...Option) *HashTable[V] {
	if numBuckets <= 0 {
		panic(fmt.Errorf("hashtable: %d: %w", numBuckets, ErrInvalidBucketCount))
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return newTable[V](numBuckets, o.logger)
}

func newTable[V any](numBuckets int, logger *zap.Logger) *HashTable[V] {
	buckets := make([]*linkedlist.List[*KeyValue[V]], numBuckets)
	for i := range buckets {
		buckets[i] = linkedlist.New[*KeyValue[V]]()
	}
	return &HashTable[V]{
		buckets: buckets,
		logger:  logger,
	}
}

func (t *HashTable[V]) NumElements() int {
	return t.numElements
}

func (t *HashTable[V]) NumBuckets() int {
	return len(t.buckets)
}

// BucketOf maps key to its bucket index for the current bucket count.
func (t *HashTable[V]) BucketOf(key uint64) int {
	t.mustBeLive()
	return int(key % uint64(len(t.buckets)))
}

// Insert stores kv. When the key is already present its value is replaced in
// place and the previous pair is returned with replaced set.
func (t *HashTable[V]) Insert(kv KeyValue[V]) (old KeyValue[V], replaced bool) {
	t.mustBeLive()
	t.maybeResize()

	bucket := t.buckets[t.BucketOf(kv.Key)]
	if it := findInChain(bucket, kv.Key); it != nil {
		rec := it.Get()
		old = *rec
		rec.Value = kv.Value
		return old, true
	}

	bucket.Push(&KeyValue[V]{Key: kv.Key, Value: kv.Value})
	t.numElements++
	return old, false
}

// Find looks key up without modifying the table.
func (t *HashTable[V]) Find(key uint64) (KeyValue[V], bool) {
	if it := findInChain(t.buckets[t.BucketOf(key)], key); it != nil {
		return *it.Get(), true
	}
	return KeyValue[V]{}, false
}

// Remove unlinks key and returns its pair. The value itself is handed back
// to the caller, not released.
func (t *HashTable[V]) Remove(key uint64) (KeyValue[V], bool) {
	it := findInChain(t.buckets[t.BucketOf(key)], key)
	if it == nil {
		return KeyValue[V]{}, false
	}

	removed := *it.Get()
	it.Remove(nil)
	t.numElements--
	return removed, true
}

// Free empties every bucket, handing each value to release, and drops the
// bucket array. The table must not be used afterwards.
func (t *HashTable[V]) Free(release FreeFunc[V]) {
	for _, bucket := range t.buckets {
		for bucket.NumElements() > 0 {
			kv, _ := bucket.Pop()
			if release != nil {
				release(kv.Value)
			}
		}
		bucket.Free(nil)
	}
	t.buckets = nil
	t.numElements = 0
}

// All yields every pair in bucket order.
func (t *HashTable[V]) All() iter.Seq2[uint64, V] {
	return func(yield func(uint64, V) bool) {
		for _, bucket := range t.buckets {
			for kv := range bucket.All() {
				if !yield(kv.Key, kv.Value) {
					return
				}
			}
		}
	}
}

func (t *HashTable[V]) mustBeLive() {
	if t.buckets == nil {
		panic(fmt.Errorf("hashtable: %w", ErrFreed))
	}
}

// findInChain returns an iterator positioned at key, or nil when the chain
// does not hold it.
func findInChain[V any](c *linkedlist.List[*KeyValue[V]], key uint64) *linkedlist.Iterator[*KeyValue[V]] {
	for it := c.Iterator(); it.IsValid(); it.Next() {
		if it.Get().Key == key {
			return it
		}
	}
	return nil
}
