package slots

import (
	"testing"

	"github.com/yohamta/donburi"
)

func newEntities(n int) (donburi.World, []donburi.Entity) {
	w := donburi.NewWorld()
	es := make([]donburi.Entity, n)
	for i := range es {
		es[i] = w.Create()
	}
	return w, es
}

func TestAcquireTakesLowestFreeSlot(t *testing.T) {
	_, es := newEntities(4)
	tb := New(4)

	for i := 0; i < 3; i++ {
		got, ok := tb.Acquire(es[i])
		if !ok || got != i {
			t.Fatalf("Acquire #%d = %d,%v, want %d,true", i, got, ok, i)
		}
	}
	tb.Release(1)
	got, ok := tb.Acquire(es[3])
	if !ok || got != 1 {
		t.Fatalf("Acquire after release = %d,%v, want reuse of slot 1", got, ok)
	}
	if e, _ := tb.Entity(1); e != es[3] {
		t.Fatalf("slot 1 holds %v, want %v", e, es[3])
	}
}

func TestAcquireFull(t *testing.T) {
	_, es := newEntities(3)
	tb := New(2)
	tb.Acquire(es[0])
	tb.Acquire(es[1])
	if i, ok := tb.Acquire(es[2]); ok || i != -1 {
		t.Fatalf("Acquire on full table = %d,%v", i, ok)
	}
}

func TestCountTracksHighWaterMark(t *testing.T) {
	_, es := newEntities(4)
	tb := New(8)
	for _, e := range es {
		tb.Acquire(e)
	}

	for _, tt := range []struct {
		release   int
		wantCount int
		wantLive  int
	}{
		{1, 4, 3},
		{3, 3, 2},
		{2, 1, 1},
		{2, 1, 1},
		{0, 0, 0},
	} {
		tb.Release(tt.release)
		if tb.Count() != tt.wantCount || tb.Live() != tt.wantLive {
			t.Fatalf("after release %d: count=%d live=%d, want %d %d",
				tt.release, tb.Count(), tb.Live(), tt.wantCount, tt.wantLive)
		}
	}
}

func TestEntityOutOfRange(t *testing.T) {
	tb := New(2)
	for _, i := range []int{-1, 0, 2} {
		if _, ok := tb.Entity(i); ok {
			t.Errorf("Entity(%d) reported a holder", i)
		}
		if tb.Used(i) {
			t.Errorf("Used(%d) = true", i)
		}
	}
	tb.Release(-1)
	tb.Release(5)
}

func TestReset(t *testing.T) {
	_, es := newEntities(2)
	tb := New(2)
	tb.Acquire(es[0])
	tb.Acquire(es[1])
	tb.Reset()
	if tb.Count() != 0 || tb.Live() != 0 || tb.Used(0) {
		t.Fatal("table not empty after Reset")
	}
	if i, _ := tb.Acquire(es[1]); i != 0 {
		t.Fatalf("first slot after Reset = %d", i)
	}
}
