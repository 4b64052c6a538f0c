package cache

import "testing"

func drain(r *ring[string, int]) []string {
	var keys []string
	for i := r.oldest(); i != ringNone; i = r.oldest() {
		keys = append(keys, r.slots[i].key)
		r.detach(i)
		r.release(i)
	}
	return keys
}

func TestRingEmpty(t *testing.T) {
	r := newRing[string, int]()

	if got := r.oldest(); got != ringNone {
		t.Errorf("Expected oldest of empty ring to be ringNone, got %d", got)
	}
}

func TestRingAttachOrder(t *testing.T) {
	r := newRing[string, int]()
	for _, k := range []string{"a", "b", "c"} {
		r.attach(r.alloc(k, 0, 1))
	}

	got := drain(r)
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected drain order %v, got %v", want, got)
		}
	}
}

func TestRingPromote(t *testing.T) {
	r := newRing[string, int]()
	idx := make(map[string]int)
	for _, k := range []string{"a", "b", "c"} {
		idx[k] = r.alloc(k, 0, 1)
		r.attach(idx[k])
	}

	r.promote(idx["a"])

	if got := r.slots[r.oldest()].key; got != "b" {
		t.Errorf("Expected oldest after promoting a to be b, got %q", got)
	}
}

func TestRingDetachMiddle(t *testing.T) {
	r := newRing[string, int]()
	idx := make(map[string]int)
	for _, k := range []string{"a", "b", "c"} {
		idx[k] = r.alloc(k, 0, 1)
		r.attach(idx[k])
	}

	r.detach(idx["b"])
	r.release(idx["b"])

	got := drain(r)
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("Expected remaining order [a c], got %v", got)
	}
}

func TestRingSlotReuse(t *testing.T) {
	r := newRing[string, int]()
	i := r.alloc("a", 0, 1)
	r.attach(i)

	r.detach(i)
	r.release(i)

	if got := r.alloc("b", 0, 1); got != i {
		t.Errorf("Expected released slot %d to be reused, got %d", i, got)
	}
	if len(r.slots) != 3 {
		t.Errorf("Expected arena to stay at 3 slots, got %d", len(r.slots))
	}
}

func TestRingReleaseDropsPayload(t *testing.T) {
	r := newRing[string, int]()
	i := r.alloc("a", 42, 1)
	r.attach(i)

	r.detach(i)
	r.release(i)

	if r.slots[i].key != "" || r.slots[i].value != 0 || r.slots[i].weight != 0 {
		t.Errorf("Expected released slot to be zeroed, got %+v", r.slots[i])
	}
}
