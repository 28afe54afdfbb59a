// Package selection provides cursor and tab primitives shared by the dashboard panels
package selection

// List is an ordered set of items with an optional selection cursor.
// The cursor is unset until the first Next or Previous call.
type List[T any] struct {
	items  []T
	cursor int
	ok     bool
}

// NewList creates a list over items with no selection
func NewList[T any](items []T) *List[T] {
	return &List[T]{items: items}
}

// Items returns the underlying items. Callers must not modify the slice.
func (l *List[T]) Items() []T {
	return l.items
}

// Len returns the number of items
func (l *List[T]) Len() int {
	return len(l.items)
}

// Selected returns the cursor position and whether one is set
func (l *List[T]) Selected() (int, bool) {
	return l.cursor, l.ok
}

// SelectedItem returns the item under the cursor
func (l *List[T]) SelectedItem() (T, bool) {
	var zero T
	if !l.ok || l.cursor >= len(l.items) {
		return zero, false
	}
	return l.items[l.cursor], true
}

// Select moves the cursor to i. Out of range indexes are ignored.
func (l *List[T]) Select(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.cursor = i
	l.ok = true
}

// Unselect clears the cursor
func (l *List[T]) Unselect() {
	l.cursor = 0
	l.ok = false
}

// Next advances the cursor, wrapping to the first item
func (l *List[T]) Next() {
	n := len(l.items)
	if n == 0 {
		return
	}
	if !l.ok {
		l.Select(0)
		return
	}
	l.Select((l.cursor + 1) % n)
}

// Previous moves the cursor back, wrapping to the last item
func (l *List[T]) Previous() {
	n := len(l.items)
	if n == 0 {
		return
	}
	if !l.ok {
		l.Select(0)
		return
	}
	if l.cursor == 0 {
		l.Select(n - 1)
		return
	}
	l.Select(l.cursor - 1)
}

// RotateLastToFront moves the last item to the front. The cursor keeps its index.
func (l *List[T]) RotateLastToFront() {
	RotateLastToFront(l.items)
}

// RotateLastToFront moves the last element of s to index 0 in place,
// shifting the others back by one. Slices shorter than two are left alone.
func RotateLastToFront[T any](s []T) {
	if len(s) < 2 {
		return
	}
	last := s[len(s)-1]
	copy(s[1:], s[:len(s)-1])
	s[0] = last
}
