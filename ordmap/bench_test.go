package ordmap

import (
	"math/rand"
	"strconv"
	"testing"
)

// benchmarkMix exercises a read/write mix against a warm map. The map is
// single-threaded by contract, so the loop runs on one goroutine. String
// keys include strconv/concat costs, which is fine for an end-to-end
// benchmark.
func benchmarkMix(b *testing.B, readsPct int) {
	m := New[string, string](Options[string, string]{Capacity: 100_000, Seed: 1})

	// Preload to get a realistic hit-rate.
	for i := 0; i < 50_000; i++ {
		m.Set("k:"+strconv.Itoa(i), "v")
	}

	b.ReportAllocs()
	b.ResetTimer()

	r := rand.New(rand.NewSource(1))
	keyMask := (1 << 16) - 1 // hot keyspace (power of two for fast &-mask)
	for i := 0; i < b.N; i++ {
		k := "k:" + strconv.Itoa(i&keyMask)
		if r.Intn(100) < readsPct {
			m.Get(k)
		} else {
			m.Set(k, "v")
		}
	}
}

func BenchmarkMap_90r10w(b *testing.B) { benchmarkMix(b, 90) }
func BenchmarkMap_50r50w(b *testing.B) { benchmarkMix(b, 50) }

// benchmarkMixInt removes strconv/alloc noise and better exposes the
// index and sequence hot paths.
func benchmarkMixInt(b *testing.B, readsPct int) {
	m := New[int, int](Options[int, int]{Capacity: 100_000, Seed: 1})

	for i := 0; i < 50_000; i++ {
		m.Set(i, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()

	r := rand.New(rand.NewSource(1))
	keyMask := (1 << 16) - 1
	for i := 0; i < b.N; i++ {
		k := i & keyMask
		if r.Intn(100) < readsPct {
			m.Get(k)
		} else {
			m.Set(k, 1)
		}
	}
}

func BenchmarkMap_IntKeys_90r10w(b *testing.B) { benchmarkMixInt(b, 90) }
func BenchmarkMap_IntKeys_50r50w(b *testing.B) { benchmarkMixInt(b, 50) }

// Reordering is the operation this structure exists for; measure it alone.
func BenchmarkMap_MoveToBack(b *testing.B) {
	const n = 1 << 16
	m := New[int, int](Options[int, int]{Capacity: n, Seed: 1})
	for i := 0; i < n; i++ {
		m.Set(i, i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.MoveToBack(i & (n - 1))
	}
}

func BenchmarkMap_PopPushChurn(b *testing.B) {
	const n = 1 << 12
	m := New[int, int](Options[int, int]{Capacity: n, Seed: 1})
	for i := 0; i < n; i++ {
		m.Set(i, i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k, v, err := m.PopFront()
		if err != nil {
			b.Fatal(err)
		}
		m.Set(k, v)
	}
}
