package hashtab

import "fmt"

// HashFunc computes the hash of an item. Hashes need not be collision-free,
// but items that compare equal must hash equally.
type HashFunc[T any] func(item T) uint64

// CompareFunc reports the ordering of a and b in strcmp style: zero means
// equal. Only equality versus inequality is significant to the table.
type CompareFunc[T any] func(a, b T) int

// Table is a hash table with incremental resizing.
//
// Growth does not rehash in place. Once the load factor exceeds the
// threshold, a shadow table of twice the size is linked and every mutating
// operation drains up to size/moveRate buckets from the primary into it.
// New items go directly to the shadow, Find falls through the chain, and
// when the primary is empty the shadow is absorbed. The shadow may itself
// grow before the primary has drained, so the chain can be more than one
// level deep.
//
// A Table is not safe for concurrent use. The caller must serialize all
// access to a table and anything in its shadow chain.
type Table[T any] struct {
	slots  []*bucket[T]
	length int // items stored at this level, excluding the shadow
	first  int // lower bound on the lowest non-empty slot; len(slots) when none is known

	hasher      HashFunc[T]
	cmp         CompareFunc[T]
	threshold   float64
	moveRate    int
	shrinkFloor int // minimum size when shrinking; 0 disables shrinking

	grows   int
	shrinks int

	// shadow is the migration target while growing, otherwise nil.
	shadow *Table[T]
}

// New creates a Table configured by the given options. hasher and cmp are
// immutable for the table's lifetime and propagate unchanged to every
// shadow it spawns. New panics on a nil hasher or cmp and on option values
// outside their documented ranges; misconfiguration is a programmer error,
// not a runtime condition.
func New[T any](hasher HashFunc[T], cmp CompareFunc[T], options ...func(*Config)) *Table[T] {
	if hasher == nil {
		panic("hashtab: nil hasher")
	}
	if cmp == nil {
		panic("hashtab: nil comparator")
	}
	c := defaultConfig()
	for _, o := range options {
		o(&c)
	}
	if c.size < 1 {
		panic(fmt.Sprintf("hashtab: size %d out of range", c.size))
	}
	if c.threshold <= 0 || c.threshold > 1 {
		panic(fmt.Sprintf("hashtab: threshold %v out of range (0, 1]", c.threshold))
	}
	if c.moveRate < 1 {
		panic(fmt.Sprintf("hashtab: move rate %d out of range", c.moveRate))
	}
	return newTable(hasher, cmp, c)
}

func newTable[T any](hasher HashFunc[T], cmp CompareFunc[T], c Config) *Table[T] {
	floor := 0
	if c.shrinkEnabled {
		floor = c.size
	}
	return &Table[T]{
		slots:       make([]*bucket[T], c.size),
		first:       c.size,
		hasher:      hasher,
		cmp:         cmp,
		threshold:   c.threshold,
		moveRate:    c.moveRate,
		shrinkFloor: floor,
	}
}

// Len returns the total number of items across the whole shadow chain.
func (t *Table[T]) Len() int {
	n := t.length
	if t.shadow != nil {
		n += t.shadow.Len()
	}
	return n
}

// Size returns the slot count of the primary table. It reflects a pending
// growth only after migration completes and the shadow is absorbed.
func (t *Table[T]) Size() int { return len(t.slots) }

// Load returns the load factor length/size of the primary table. While a
// shadow exists the primary's load sinks toward zero as buckets drain.
func (t *Table[T]) Load() float64 { return float64(t.length) / float64(len(t.slots)) }

// Grows returns how often the table has grown.
func (t *Table[T]) Grows() int { return t.grows }

// Shrinks returns how often the table has shrunk.
func (t *Table[T]) Shrinks() int { return t.shrinks }

// Add stores item, even if an equal item is already present; duplicates are
// the caller's concern (use Insert for replace-or-add semantics). Add may
// trigger growth and advances migration by one step while a shadow exists.
// It returns the length of the table the item landed in.
func (t *Table[T]) Add(item T) int {
	if t.shadow == nil && t.Load() > t.threshold {
		t.grow()
	}
	if t.shadow != nil {
		n := t.shadow.Add(item)
		t.moveOver()
		return n
	}
	t.addLocal(item)
	return t.length
}

// addLocal stores item at this level without growth checks or migration.
// Also the path migrated and rehashed items take.
func (t *Table[T]) addLocal(item T) {
	idx := t.slotOf(item)
	b := t.slots[idx]
	if b == nil {
		b = &bucket[T]{}
		t.slots[idx] = b
	}
	b.add(item)
	t.length++
	if idx < t.first {
		t.first = idx
	}
}

// Find returns the stored item that compares equal to needle. The primary
// table is consulted first, then the shadow chain.
func (t *Table[T]) Find(needle T) (item T, ok bool) {
	if ref := t.findRef(needle); ref != nil {
		return *ref, true
	}
	return item, false
}

func (t *Table[T]) findRef(needle T) *T {
	if b := t.slots[t.slotOf(needle)]; b != nil {
		if ref := b.find(needle, t.cmp); ref != nil {
			return ref
		}
	}
	if t.shadow != nil {
		return t.shadow.findRef(needle)
	}
	return nil
}

// Insert replaces the stored item equal to item and returns the previous
// value, or adds item when there is no match. Only the bucket the item
// would occupy right now is examined: the deepest table in the chain, since
// that is where Add places new items. A matching item still sitting
// unmigrated in an ancestor is not seen, so an Insert racing an in-flight
// migration can leave a duplicate in the shadow. Callers needing exact
// replace semantics should avoid Insert while a migration is pending.
func (t *Table[T]) Insert(item T) (prev T, replaced bool) {
	tail := t
	for tail.shadow != nil {
		tail = tail.shadow
	}
	if b := tail.slots[tail.slotOf(item)]; b != nil {
		if ref := b.find(item, tail.cmp); ref != nil {
			prev = *ref
			*ref = item
			return prev, true
		}
	}
	t.Add(item)
	return prev, false
}

// Remove deletes and returns the stored item equal to needle. It advances
// migration by one step while a shadow exists, and may trigger a shrink on
// a stable table when shrinking is enabled.
func (t *Table[T]) Remove(needle T) (removed T, ok bool) {
	idx := t.slotOf(needle)
	if b := t.slots[idx]; b != nil {
		removed, ok = b.removeMatch(needle, t.cmp)
		if ok && b.len() == 0 {
			t.slots[idx] = nil
		}
	}

	if t.shadow != nil {
		if ok {
			t.length--
		} else {
			removed, ok = t.shadow.Remove(needle)
		}
		t.moveOver()
		return removed, ok
	}

	if ok {
		t.length--
		if idx == t.first {
			t.findFirst(idx)
		}
		if t.shrinkFloor > 0 && len(t.slots) > t.shrinkFloor && t.Load() < 1-t.threshold {
			t.rehash(max(len(t.slots)/2, t.shrinkFloor))
			t.shrinks++
		}
	}
	return removed, ok
}

// Range calls f for every item in the table, primary first, then the shadow
// chain. Each live item is visited exactly once. Range stops early when f
// returns false. The iteration order is unspecified and changes across
// mutations; f must not mutate the table.
func (t *Table[T]) Range(f func(item T) bool) {
	t.rangeChain(f)
}

func (t *Table[T]) rangeChain(f func(item T) bool) bool {
	for _, b := range t.slots {
		if b == nil {
			continue
		}
		if !b.forEach(f) {
			return false
		}
	}
	if t.shadow != nil {
		return t.shadow.rangeChain(f)
	}
	return true
}

// Clone duplicates the table: all metadata, every bucket, and the shadow
// chain if a migration is in flight. With a non-nil copyItem every item is
// passed through it, yielding a structurally independent copy; with nil the
// clone shares item values with the original.
func (t *Table[T]) Clone(copyItem func(item T) T) *Table[T] {
	c := &Table[T]{
		slots:       make([]*bucket[T], len(t.slots)),
		length:      t.length,
		first:       t.first,
		hasher:      t.hasher,
		cmp:         t.cmp,
		threshold:   t.threshold,
		moveRate:    t.moveRate,
		shrinkFloor: t.shrinkFloor,
		grows:       t.grows,
		shrinks:     t.shrinks,
	}
	for i, b := range t.slots {
		if b != nil {
			c.slots[i] = b.clone(copyItem)
		}
	}
	if t.shadow != nil {
		c.shadow = t.shadow.Clone(copyItem)
	}
	return c
}

// Release empties the table, deepest shadow first, invoking freeItem (when
// non-nil) once per live item so the caller can release item resources.
// Counters are kept; the table remains usable at its current size.
func (t *Table[T]) Release(freeItem func(item T)) {
	if t.shadow != nil {
		t.shadow.Release(freeItem)
		t.shadow = nil
	}
	for i, b := range t.slots {
		if b != nil {
			b.release(freeItem)
			t.slots[i] = nil
		}
	}
	t.length = 0
	t.first = len(t.slots)
}

func (t *Table[T]) slotOf(item T) int {
	return int(t.hasher(item) % uint64(len(t.slots)))
}

// findFirst advances first to the next non-empty slot at or after i, or to
// len(slots) when none remains. The caller guarantees no slot before i
// holds items.
func (t *Table[T]) findFirst(i int) {
	for ; i < len(t.slots) && t.slots[i] == nil; i++ {
	}
	t.first = i
}

// grow doubles the table. With a move rate of 1 this is an immediate full
// rehash; otherwise a shadow table of double size and identical
// configuration is linked and drained incrementally by moveOver.
func (t *Table[T]) grow() {
	if t.moveRate == 1 {
		t.rehash(len(t.slots) * 2)
	} else {
		t.shadow = newTable(t.hasher, t.cmp, Config{
			size:          len(t.slots) * 2,
			threshold:     t.threshold,
			moveRate:      t.moveRate,
			shrinkEnabled: t.shrinkFloor > 0,
		})
	}
	t.grows++
}

// moveOver migrates up to size/moveRate buckets (at least one, so migration
// always makes progress) from the primary into the shadow, then absorbs the
// shadow once the primary is empty. Migrated items are re-hashed against
// the shadow's size and may land in different slots there.
func (t *Table[T]) moveOver() {
	steps := len(t.slots) / t.moveRate
	if steps < 1 {
		steps = 1
	}
	for i := 0; i < steps && t.length > 0; i++ {
		b := t.slots[t.first]
		t.slots[t.first] = nil
		if b != nil {
			for j := range b.items {
				t.shadow.addLocal(b.items[j])
			}
			t.length -= b.len()
		}
		t.findFirst(t.first)
	}

	// Absorb the drained shadow back into this table. If the shadow
	// meanwhile grew, its own shadow simply becomes ours and migration
	// continues at the next level.
	if t.length == 0 {
		sh := t.shadow
		t.slots = sh.slots
		t.length = sh.length
		t.first = sh.first
		t.grows += sh.grows
		t.shrinks += sh.shrinks
		t.shadow = sh.shadow
	}
}

// rehash redistributes every item for newSize slots in place, used for
// move-rate-1 growth and for all shrinking. When growing, the slot array is
// enlarged before redistribution; when shrinking, it is trimmed after.
// Because source and destination share one array, an item whose new slot
// lies ahead of the scan cursor is revisited once more; correct, if not
// optimal, and it avoids allocating a second table.
func (t *Table[T]) rehash(newSize int) {
	oldSize := len(t.slots)
	if newSize > oldSize {
		grown := make([]*bucket[T], newSize)
		copy(grown, t.slots)
		t.slots = grown
	}

	first := newSize
	for i := 0; i < oldSize; i++ {
		b := t.slots[i]
		if b == nil {
			continue
		}
		t.slots[i] = nil
		for j := range b.items {
			idx := int(t.hasher(b.items[j]) % uint64(newSize))
			dst := t.slots[idx]
			if dst == nil {
				dst = &bucket[T]{}
				t.slots[idx] = dst
			}
			dst.add(b.items[j])
			if idx < first {
				first = idx
			}
		}
	}
	t.first = first

	if newSize < oldSize {
		t.slots = t.slots[:newSize]
	}
}
