package linkedlist

// Sort orders the payloads in place with a bubble sort, swapping adjacent
// payloads until a full pass makes no swap. Nodes keep their positions.
func (l *List[T]) Sort(ascending bool, cmp CompareFunc[T]) {
	if l.numElements < 2 {
		return
	}

	for swapped := true; swapped; {
		swapped = false
		for h := l.head; l.nodes[h].next != nilHandle; h = l.nodes[h].next {
			cur, next := &l.nodes[h], &l.nodes[l.nodes[h].next]

			result := cmp(cur.payload, next.payload)
			if ascending {
				result = -result
			}
			if result < 0 {
				cur.payload, next.payload = next.payload, cur.payload
				swapped = true
			}
		}
	}
}
