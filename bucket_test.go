package hashtab

import "testing"

func intCmp(a, b int) int { return a - b }

func bucketContents(b *bucket[int]) []int {
	var out []int
	b.forEach(func(item int) bool {
		out = append(out, item)
		return true
	})
	return out
}

func TestBucketAddGrowsByDoublingPlusOne(t *testing.T) {
	b := &bucket[int]{}
	wantCaps := []int{1, 3, 3, 7, 7, 7, 7, 15}
	for i := 0; i < len(wantCaps); i++ {
		b.add(i)
		if b.len() != i+1 {
			t.Fatalf("after %d adds: len = %d, want %d", i+1, b.len(), i+1)
		}
		if cap(b.items) != wantCaps[i] {
			t.Fatalf("after %d adds: cap = %d, want %d", i+1, cap(b.items), wantCaps[i])
		}
		if b.len() > cap(b.items) {
			t.Fatalf("length %d exceeds capacity %d", b.len(), cap(b.items))
		}
	}
}

func TestBucketFindReturnsFirstMatch(t *testing.T) {
	b := &bucket[int]{}
	b.add(10)
	b.add(20)
	b.add(20)

	ref := b.find(20, intCmp)
	if ref == nil {
		t.Fatal("find(20) returned nil")
	}
	if ref != &b.items[1] {
		t.Fatalf("find(20) returned %p, want first match %p", ref, &b.items[1])
	}
	if b.find(30, intCmp) != nil {
		t.Fatal("find(30) should miss")
	}

	// The returned reference allows in-place replacement.
	*ref = 25
	if got := bucketContents(b); got[1] != 25 {
		t.Fatalf("in-place replace failed, contents = %v", got)
	}
}

func TestBucketRemoveMatchSwapsLastIntoHole(t *testing.T) {
	b := &bucket[int]{}
	for _, v := range []int{10, 20, 30, 40} {
		b.add(v)
	}

	removed, ok := b.removeMatch(20, intCmp)
	if !ok || removed != 20 {
		t.Fatalf("removeMatch(20) = %d, %v", removed, ok)
	}
	// Removal is unordered: the last item takes the freed position.
	want := []int{10, 40, 30}
	got := bucketContents(b)
	if len(got) != len(want) {
		t.Fatalf("contents = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("contents = %v, want %v", got, want)
		}
	}

	if _, ok := b.removeMatch(20, intCmp); ok {
		t.Fatal("removeMatch(20) should miss after removal")
	}
}

func TestBucketCloneSharesOrCopies(t *testing.T) {
	type box struct{ v int }
	b := &bucket[*box]{}
	b.add(&box{v: 1})
	b.add(&box{v: 2})

	shared := b.clone(nil)
	b.items[0].v = 100
	if shared.items[0].v != 100 {
		t.Fatal("clone without copy callback should share item references")
	}

	deep := b.clone(func(item *box) *box {
		cp := *item
		return &cp
	})
	b.items[1].v = 200
	if deep.items[1].v != 2 {
		t.Fatalf("deep clone affected by original mutation: v = %d", deep.items[1].v)
	}
	if deep.len() != b.len() || cap(deep.items) != cap(b.items) {
		t.Fatalf("clone shape mismatch: len %d/%d cap %d/%d",
			deep.len(), b.len(), cap(deep.items), cap(b.items))
	}
}

func TestBucketReleaseInvokesCallbackPerItem(t *testing.T) {
	b := &bucket[int]{}
	for i := 0; i < 5; i++ {
		b.add(i)
	}

	freed := 0
	b.release(func(int) { freed++ })
	if freed != 5 {
		t.Fatalf("release invoked callback %d times, want 5", freed)
	}
	if b.len() != 0 || b.items != nil {
		t.Fatal("release should drop storage")
	}
}
