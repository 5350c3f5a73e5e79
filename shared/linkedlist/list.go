package linkedlist

import (
	"errors"
	"iter"
)

var (
	// ErrInvalidIterator is raised when an iterator past the end of its list is dereferenced.
	ErrInvalidIterator = errors.New("iterator is not valid")

	// ErrStaleIterator is raised when an iterator refers to a node that was
	// removed through some path other than the iterator itself.
	ErrStaleIterator = errors.New("iterator refers to a released node")
)

// CompareFunc returns a negative number when a < b, zero when equal and a positive number otherwise.
type CompareFunc[T any] func(a, b T) int

// FreeFunc releases a payload the list owned. A nil FreeFunc means the
// payloads are not owned by the list and nothing has to be released.
type FreeFunc[T any] func(payload T)

type handle int32

const nilHandle handle = -1

type node[T any] struct {
	payload T
	prev    handle
	next    handle
	gen     uint32
	live    bool
}

// List is a doubly linked list whose nodes live in an arena and link to each
// other through stable handles. Released slots are recycled.
//
// A List is not safe for concurrent use.
type List[T any] struct {
	nodes       []node[T]
	free        []handle
	head        handle
	tail        handle
	numElements int
}

func New[T any]() *List[T] {
	return &List[T]{
		head: nilHandle,
		tail: nilHandle,
	}
}

func (l *List[T]) NumElements() int {
	return l.numElements
}

// Push inserts payload at the head of the list.
func (l *List[T]) Push(payload T) {
	h := l.alloc(payload)
	if l.numElements == 0 {
		l.assertEmpty()
		l.head, l.tail = h, h
		l.numElements = 1
		return
	}

	l.nodes[h].next = l.head
	l.nodes[l.head].prev = h
	l.head = h
	l.numElements++
}

// Append inserts payload at the tail of the list.
func (l *List[T]) Append(payload T) {
	h := l.alloc(payload)
	if l.numElements == 0 {
		l.assertEmpty()
		l.head, l.tail = h, h
		l.numElements = 1
		return
	}

	l.nodes[h].prev = l.tail
	l.nodes[l.tail].next = h
	l.tail = h
	l.numElements++
}

// Pop removes and returns the head payload. It reports false on an empty list.
func (l *List[T]) Pop() (T, bool) {
	var zero T
	if l.numElements == 0 {
		return zero, false
	}

	old := l.head
	payload := l.nodes[old].payload
	if l.numElements == 1 {
		l.head, l.tail = nilHandle, nilHandle
	} else {
		l.head = l.nodes[old].next
		l.nodes[l.head].prev = nilHandle
	}
	l.release(old)
	l.numElements--
	return payload, true
}

// Slice removes and returns the tail payload. It reports false on an empty list.
func (l *List[T]) Slice() (T, bool) {
	var zero T
	if l.numElements == 0 {
		return zero, false
	}

	old := l.tail
	payload := l.nodes[old].payload
	if l.numElements == 1 {
		l.head, l.tail = nilHandle, nilHandle
	} else {
		l.tail = l.nodes[old].prev
		l.nodes[l.tail].next = nilHandle
	}
	l.release(old)
	l.numElements--
	return payload, true
}

// Free hands every payload, head to tail, to release and then drops all nodes.
// The list is empty and reusable afterwards.
func (l *List[T]) Free(release FreeFunc[T]) {
	for h := l.head; h != nilHandle; h = l.nodes[h].next {
		if release != nil {
			release(l.nodes[h].payload)
		}
	}
	l.nodes = nil
	l.free = nil
	l.head, l.tail = nilHandle, nilHandle
	l.numElements = 0
}

// All yields the payloads from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := l.head; h != nilHandle; h = l.nodes[h].next {
			if !yield(l.nodes[h].payload) {
				return
			}
		}
	}
}

// Backward yields the payloads from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := l.tail; h != nilHandle; h = l.nodes[h].prev {
			if !yield(l.nodes[h].payload) {
				return
			}
		}
	}
}

func (l *List[T]) alloc(payload T) handle {
	var h handle
	if n := len(l.free); n > 0 {
		h = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		l.nodes = append(l.nodes, node[T]{})
		h = handle(len(l.nodes) - 1)
	}

	nd := &l.nodes[h]
	nd.payload = payload
	nd.prev, nd.next = nilHandle, nilHandle
	nd.live = true
	return h
}

// release invalidates h. Its generation moves on so outstanding cursors can tell.
func (l *List[T]) release(h handle) {
	var zero T
	nd := &l.nodes[h]
	nd.payload = zero
	nd.prev, nd.next = nilHandle, nilHandle
	nd.live = false
	nd.gen++
	l.free = append(l.free, h)
}

func (l *List[T]) assertEmpty() {
	if l.head != nilHandle || l.tail != nilHandle {
		panic("linkedlist: element count is zero but head or tail is set")
	}
}
