package hashtable

import "go.uber.org/zap"

// maybeResize grows the table once the load factor reaches maxLoadFactor.
// Every pair is rehomed into a table growthFactor times larger, whose bucket
// array then moves into t. The pair records themselves are reused.
func (t *HashTable[V]) maybeResize() {
	if t.numElements < maxLoadFactor*len(t.buckets) {
		return
	}

	oldBuckets := len(t.buckets)
	grown := newTable[V](oldBuckets*growthFactor, t.logger)
	for it := t.Iterator(); it.IsValid(); it.Next() {
		grown.rehome(it.current())
	}

	t.buckets, grown.buckets = grown.buckets, nil
	t.numElements, grown.numElements = grown.numElements, 0

	t.logger.Debug("hashtable grown",
		zap.Int("old_buckets", oldBuckets),
		zap.Int("new_buckets", len(t.buckets)),
		zap.Int("elements", t.numElements),
	)
}

// rehome links an existing record into t. Keys are unique in the source
// table, so no chain scan is needed.
func (t *HashTable[V]) rehome(kv *KeyValue[V]) {
	t.buckets[t.BucketOf(kv.Key)].Push(kv)
	t.numElements++
}
