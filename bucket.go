package hashtab

// bucket is the collision chain for a single hash slot: a growable sequence
// of items sharing that slot. Storage order carries no semantic meaning;
// removal swaps the last item into the vacated position, so iteration order
// changes across mutations.
type bucket[T any] struct {
	items []T
}

// add appends item, growing capacity by doubling-plus-one when full.
// Amortized O(1).
func (b *bucket[T]) add(item T) {
	if len(b.items) == cap(b.items) {
		grown := make([]T, len(b.items), cap(b.items)*2+1)
		copy(grown, b.items)
		b.items = grown
	}
	b.items = append(b.items, item)
}

// find returns a pointer to the first item cmp reports equal to needle, or
// nil. The pointer stays valid until the next add or removeMatch.
func (b *bucket[T]) find(needle T, cmp CompareFunc[T]) *T {
	for i := range b.items {
		if cmp(needle, b.items[i]) == 0 {
			return &b.items[i]
		}
	}
	return nil
}

// removeMatch removes and returns the first item cmp reports equal to
// needle. The last item is swapped into the freed position.
func (b *bucket[T]) removeMatch(needle T, cmp CompareFunc[T]) (removed T, ok bool) {
	for i := range b.items {
		if cmp(needle, b.items[i]) == 0 {
			removed = b.items[i]
			last := len(b.items) - 1
			b.items[i] = b.items[last]
			var zero T
			b.items[last] = zero // release the reference
			b.items = b.items[:last]
			return removed, true
		}
	}
	return removed, false
}

// forEach visits every item in storage order. It stops early and reports
// false when f returns false.
func (b *bucket[T]) forEach(f func(item T) bool) bool {
	for i := range b.items {
		if !f(b.items[i]) {
			return false
		}
	}
	return true
}

// clone duplicates the bucket. With a non-nil copyItem each item is passed
// through it to produce the duplicate's item; otherwise items are shared.
func (b *bucket[T]) clone(copyItem func(item T) T) *bucket[T] {
	c := &bucket[T]{items: make([]T, len(b.items), cap(b.items))}
	if copyItem == nil {
		copy(c.items, b.items)
		return c
	}
	for i := range b.items {
		c.items[i] = copyItem(b.items[i])
	}
	return c
}

// release invokes freeItem, when non-nil, for every item and drops the
// bucket's storage.
func (b *bucket[T]) release(freeItem func(item T)) {
	if freeItem != nil {
		for i := range b.items {
			freeItem(b.items[i])
		}
	}
	b.items = nil
}

func (b *bucket[T]) len() int { return len(b.items) }
