package purefn

import (
	"strconv"
	"sync"

	"github.com/on-the-ground/chainhash/shared/hashtable"
)

const initialBuckets = 16

type entry[O any] struct {
	key   string
	value O
}

// Table is a bounded memo table made of two generations. Stores go to the
// head generation; once it holds maxSize entries the older generation is
// dropped and becomes the new, empty head.
type Table[O any] struct {
	mu      sync.Mutex
	memos   [2]*hashtable.HashTable[entry[O]]
	headIdx int
	size    uint32
	maxSize uint32
}

func NewTable[O any](maxSize uint32) *Table[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &Table[O]{
		memos: [2]*hashtable.HashTable[entry[O]]{
			hashtable.New[entry[O]](initialBuckets),
			hashtable.New[entry[O]](initialBuckets),
		},
		maxSize: maxSize,
	}
}

func (t *Table[O]) Load(keys []ComparableOrString) (O, bool) {
	key := joinKeys(keys)
	hash := hashtable.XXHash64([]byte(key))

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, idx := range [2]int{t.headIdx, 1 - t.headIdx} {
		// a different key under the same hash is a miss
		if kv, ok := t.memos[idx].Find(hash); ok && kv.Value.key == key {
			return kv.Value.value, true
		}
	}
	var zero O
	return zero, false
}

func (t *Table[O]) Store(keys []ComparableOrString, value O) {
	key := joinKeys(keys)
	hash := hashtable.XXHash64([]byte(key))

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.size >= t.maxSize {
		t.headIdx = 1 - t.headIdx
		t.memos[t.headIdx].Free(nil)
		t.memos[t.headIdx] = hashtable.New[entry[O]](initialBuckets)
		t.size = 0
	}

	if _, replaced := t.memos[t.headIdx].Insert(hashtable.KeyValue[entry[O]]{
		Key:   hash,
		Value: entry[O]{key: key, value: value},
	}); !replaced {
		t.size++
	}
}

// joinKeys encodes keys as a sequence of <len>:<key> so that no two key
// paths share an encoding.
func joinKeys(keys []ComparableOrString) string {
	if len(keys) == 0 {
		panic("joinKeys: empty keys")
	}

	buf := make([]byte, 0, 64)
	for _, k := range keys {
		buf = strconv.AppendInt(buf, int64(len(k)), 10)
		buf = append(buf, ':')
		buf = append(buf, k...)
	}
	return string(buf)
}
