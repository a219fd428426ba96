package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetReturnsSamePointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyTicks)
	a.Store(7)

	if b := r.Ints.Get(KeyTicks); b != a || b.Load() != 7 {
		t.Fatal("Get did not return the cached pointer")
	}
	if ptr, ok := r.Ints.Lookup(KeyTicks); !ok || ptr != a {
		t.Error("Lookup missed a registered key")
	}
	if _, ok := r.Ints.Lookup(KeyWallHits); ok {
		t.Error("Lookup found an unregistered key")
	}
	if r.Ints.Len() != 1 {
		t.Errorf("Lookup registered a key, len = %d", r.Ints.Len())
	}
}

func TestMetricMapKeysSorted(t *testing.T) {
	m := NewMetricMap[int]()
	for _, k := range []string{"c", "a", "b"} {
		*m.Get(k) = len(k)
	}

	keys := m.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("keys = %v", keys)
	}
}

func TestRegistryDump(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get(KeyPaused).Store(true)
	r.Ints.Get(KeyTicks).Store(42)
	r.Ints.Get(KeyGoalsAI).Store(3)
	r.Floats.Get(KeyPrimarySpeed).Set(0.5)

	if got := r.Len(); got != 4 {
		t.Errorf("Len = %d, want 4", got)
	}

	want := []string{
		"balls.primary_speed=0.5000",
		"score.ai=3",
		"sim.paused=true",
		"sim.ticks=42",
	}
	got := r.Dump()
	if len(got) != len(want) {
		t.Fatalf("Dump = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAtomicFloatSetMax(t *testing.T) {
	var f AtomicFloat
	f.Set(1.5)
	if f.Get() != 1.5 {
		t.Fatalf("Get = %v", f.Get())
	}
	if f.SetMax(1.0) || f.Get() != 1.5 {
		t.Error("SetMax lowered the value")
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				f.SetMax(float64(base*1000 + j))
			}
		}(i)
	}
	wg.Wait()

	if got := f.Get(); got != 7999 {
		t.Errorf("after concurrent SetMax = %v, want 7999", got)
	}
}

func TestConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get(KeyBallsLive).Add(1)
		}()
	}
	wg.Wait()
	if got := r.Ints.Get(KeyBallsLive).Load(); got != 16 {
		t.Errorf("counter = %d, want 16", got)
	}
}
