package linkedlist

import "fmt"

// Iterator is a cursor over one node of a List. It never owns the node.
type Iterator[T any] struct {
	list *List[T]
	node handle
	gen  uint32
}

// NewIterator returns a cursor at the head of l, already invalid when l is empty.
func NewIterator[T any](l *List[T]) *Iterator[T] {
	if l == nil {
		panic("linkedlist: iterator over nil list")
	}
	it := &Iterator[T]{list: l}
	it.Rewind()
	return it
}

func (l *List[T]) Iterator() *Iterator[T] {
	return NewIterator(l)
}

// IsValid reports whether the cursor is on a live node. A cursor whose node
// was removed through another path is not valid.
func (it *Iterator[T]) IsValid() bool {
	return it.node != nilHandle && !it.stale()
}

// Next advances one node. Past the tail it reports false and the cursor
// becomes invalid.
func (it *Iterator[T]) Next() bool {
	it.mustBeValid("next")

	it.moveTo(it.list.nodes[it.node].next)
	return it.node != nilHandle
}

func (it *Iterator[T]) Get() T {
	it.mustBeValid("get")
	return it.list.nodes[it.node].payload
}

// Remove releases the current payload and unlinks its node. The cursor moves
// to the following node, or to the preceding one when the tail was removed.
// It reports false exactly when the list is empty afterwards, in which case
// the cursor is invalid.
func (it *Iterator[T]) Remove(release FreeFunc[T]) bool {
	it.mustBeValid("remove")

	l := it.list
	cur := it.node
	if release != nil {
		release(l.nodes[cur].payload)
	}

	switch {
	case l.numElements == 1:
		l.head, l.tail = nilHandle, nilHandle
		l.release(cur)
		l.numElements = 0
		it.moveTo(nilHandle)
		return false
	case cur == l.tail:
		it.moveTo(l.nodes[cur].prev)
		l.Slice()
	case cur == l.head:
		it.moveTo(l.nodes[cur].next)
		l.Pop()
	default:
		prev, next := l.nodes[cur].prev, l.nodes[cur].next
		l.nodes[prev].next = next
		l.nodes[next].prev = prev
		l.release(cur)
		l.numElements--
		it.moveTo(next)
	}
	return true
}

// Rewind puts the cursor back on the head of the list.
func (it *Iterator[T]) Rewind() {
	it.moveTo(it.list.head)
}

func (it *Iterator[T]) moveTo(h handle) {
	it.node = h
	if h != nilHandle {
		it.gen = it.list.nodes[h].gen
	}
}

func (it *Iterator[T]) mustBeValid(op string) {
	if it.node == nilHandle {
		panic(fmt.Errorf("linkedlist: %s: %w", op, ErrInvalidIterator))
	}
	if it.stale() {
		panic(fmt.Errorf("linkedlist: %s: %w", op, ErrStaleIterator))
	}
}

func (it *Iterator[T]) stale() bool {
	if int(it.node) >= len(it.list.nodes) {
		return true
	}
	nd := &it.list.nodes[it.node]
	return !nd.live || nd.gen != it.gen
}
