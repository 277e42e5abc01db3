package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("x")
	b := m.Get("x")
	if a != b {
		t.Errorf("Expected same pointer for repeated key")
	}
	if !m.Has("x") || m.Has("y") {
		t.Errorf("Unexpected Has results")
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				r.Ints.Get(FramesTotal).Add(1)
			}
		}()
	}
	wg.Wait()
	if got := r.Ints.Get(FramesTotal).Load(); got != 1600 {
		t.Errorf("Expected 1600, got %d", got)
	}
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("Expected zero value 0, got %f", f.Get())
	}
	f.Set(1.5)
	if got := f.Add(0.25); got != 1.75 {
		t.Errorf("Expected 1.75, got %f", got)
	}
	if got := f.Max(1); got != 1.75 {
		t.Errorf("Expected max to keep 1.75, got %f", got)
	}
	if got := f.Max(3); got != 3 {
		t.Errorf("Expected max to raise to 3, got %f", got)
	}
}

func TestRegistryEachOrder(t *testing.T) {
	r := NewRegistry()
	r.Floats.Get(FPS).Set(59.94)
	r.Ints.Get(FramesTotal).Store(12)
	r.Ints.Get(Collisions).Store(3)
	r.Bools.Get(Running).Store(true)

	var keys, values []string
	r.Each(func(k, v string) {
		keys = append(keys, k)
		values = append(values, v)
	})

	wantKeys := []string{Running, FramesTotal, Collisions, FPS}
	wantValues := []string{"true", "12", "3", "59.94"}
	if len(keys) != len(wantKeys) {
		t.Fatalf("Expected %d metrics, got %d", len(wantKeys), len(keys))
	}
	for i := range wantKeys {
		if keys[i] != wantKeys[i] || values[i] != wantValues[i] {
			t.Errorf("Entry %d: expected %s=%s, got %s=%s", i, wantKeys[i], wantValues[i], keys[i], values[i])
		}
	}
	if r.TotalCount() != 4 {
		t.Errorf("Expected 4 metrics, got %d", r.TotalCount())
	}
}
