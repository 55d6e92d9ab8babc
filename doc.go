/*
Package hashtab provides a generic in-memory hash table with incremental
resizing.

Table maps caller-defined keys, embedded in caller-owned items, to those
items using a caller-supplied hash function and comparator. When the load
factor (length / size) exceeds the configured threshold, the table does not
rehash in one stop-the-world pass. Instead it links a shadow table of twice
the size and drains a few buckets into it on every subsequent mutating
operation. New items are added directly to the shadow, lookups fall through
from the primary to the shadow chain, and once the primary is empty the
shadow is absorbed back into it. With a move rate of 1 migration degenerates
to an immediate full rehash and no shadow is ever created.

Basic usage:

	type account struct {
		id      uint64
		balance int64
	}

	t := hashtab.New(
		func(a account) uint64 { return a.id },
		func(a, b account) int { return int(a.id) - int(b.id) },
		hashtab.WithSize(64),
	)

	t.Add(account{id: 7, balance: 100})
	if found, ok := t.Find(account{id: 7}); ok {
		fmt.Println(found.balance)
	}

For string keys the StringMap wrapper binds a Table to string-keyed entries
with an xxhash-based hasher, so no callbacks need to be written:

	m := hashtab.NewStringMap[int]()
	m.Add("one", 1)
	v, ok := m.Find("one")

The following requirements are the caller's responsibility:

  - cmp(a, b) == 0 must imply hasher(a) == hasher(b).
  - Hash and compare functions must not mutate the table they were
    installed on; behavior is undefined if they do.
  - A Table and the shadow chain it owns form one object graph. All access
    must be serialized by the caller; nothing in this package locks.

Items are owned by the caller. The table never copies or releases an item on
its own initiative; Clone and Release accept optional per-item callbacks to
delegate that responsibility explicitly.
*/
package hashtab
