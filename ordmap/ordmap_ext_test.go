package ordmap_test

import (
	"strconv"
	"sync"
	"testing"

	assert "github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	om "github.com/IvanBrykalov/ordmap/ordmap"
)

func TestBasicFeatures(t *testing.T) {
	n := 100
	m := om.New[string, int](om.Options[string, int]{Seed: 1})

	for i := 0; i < n; i++ {
		assert.Equal(t, i, m.Len())
		present := m.Set(strconv.Itoa(i), 2*i)
		assert.Equal(t, i+1, m.Len())
		assert.False(t, present)
	}

	for i := 0; i < n; i++ {
		value, present := m.Get(strconv.Itoa(i))
		assert.Equal(t, 2*i, value)
		assert.True(t, present)
	}
}

func TestUpdatingDoesntChangePairsOrder(t *testing.T) {
	m := om.New[string, any](om.Options[string, any]{Seed: 1})
	m.Set("foo", "bar")
	m.Set("wk", 28)
	m.Set("po", 100)
	m.Set("bar", "baz")
	present := m.Set("po", 102)
	assert.True(t, present)

	assertOrderedPairsEqual(t, m,
		[]string{"foo", "wk", "po", "bar"},
		[]any{"bar", 28, 102, "baz"})
}

func TestDeletingAndReinsertingChangesPairsOrder(t *testing.T) {
	m := om.New[string, any](om.Options[string, any]{Seed: 1})
	m.Set("foo", "bar")
	m.Set("wk", 28)
	m.Set("po", 100)
	m.Set("bar", "baz")

	_, present := m.Delete("po")
	assert.True(t, present)

	present = m.Set("po", 100)
	assert.False(t, present)

	assertOrderedPairsEqual(t, m,
		[]string{"foo", "wk", "bar", "po"},
		[]any{"bar", 28, "baz", 100})
}

func TestMovesChangePairsOrder(t *testing.T) {
	m := om.New[string, any](om.Options[string, any]{Seed: 1})
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	assert.NoError(t, m.MoveToBack("b"))
	assertOrderedPairsEqual(t, m,
		[]string{"a", "c", "b"},
		[]any{1, 3, 2})

	assert.NoError(t, m.MoveToFront("c"))
	assertOrderedPairsEqual(t, m,
		[]string{"c", "a", "b"},
		[]any{3, 1, 2})

	assert.ErrorIs(t, m.MoveToBack("missing"), om.ErrKeyNotFound)
}

func TestEmptyMapOperations(t *testing.T) {
	m := om.New[string, any](om.Options[string, any]{Seed: 1})

	val, present := m.Get("foo")
	assert.Nil(t, val)
	assert.False(t, present)

	_, present = m.Delete("bar")
	assert.False(t, present)

	_, _, err := m.PopBack()
	assert.ErrorIs(t, err, om.ErrEmpty)
	_, _, err = m.PopFront()
	assert.ErrorIs(t, err, om.ErrEmpty)

	assert.Equal(t, 0, m.Len())
	_, _, ok := m.Front()
	assert.False(t, ok)
	_, _, ok = m.Back()
	assert.False(t, ok)
}

type sampleStruct struct {
	value string
}

func TestPackUnpackStructs(t *testing.T) {
	m := om.New[string, sampleStruct](om.Options[string, sampleStruct]{Seed: 1})
	m.Set("foo", sampleStruct{"foo!"})
	m.Set("bar", sampleStruct{"bar!"})

	value, present := m.Get("foo")
	assert.True(t, present)
	assert.Equal(t, "foo!", value.value)

	present = m.Set("bar", sampleStruct{"baz!"})
	assert.True(t, present)

	value, present = m.Get("bar")
	assert.True(t, present)
	assert.Equal(t, "baz!", value.value)
}

// The map gives no internal thread-safety; this is the supported sharing
// pattern (one mutex serializing every operation), and it must keep the
// structure consistent under concurrent writers.
func TestExternalMutexSharing(t *testing.T) {
	var (
		mu sync.Mutex
		m  = om.New[string, int](om.Options[string, int]{Seed: 1})
	)

	var g errgroup.Group
	const workers, perWorker = 8, 500
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < perWorker; i++ {
				k := "k:" + strconv.Itoa(i)
				mu.Lock()
				m.Set(k, i)
				if i%5 == 0 {
					m.Delete(k)
				}
				if i%7 == 0 {
					_ = m.MoveToFront("k:0")
				}
				mu.Unlock()
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())

	mu.Lock()
	defer mu.Unlock()
	seen := 0
	it := m.Iter()
	for it.Next() {
		seen++
	}
	assert.NoError(t, it.Err())
	assert.Equal(t, m.Len(), seen)
}

func assertOrderedPairsEqual[V any](t *testing.T, m om.Map[string, V], expectedKeys []string, expectedValues []V) {
	assertOrderedPairsEqualFromFront(t, m, expectedKeys, expectedValues)
	assertOrderedPairsEqualFromBack(t, m, expectedKeys, expectedValues)
}

func assertOrderedPairsEqualFromFront[V any](t *testing.T, m om.Map[string, V], expectedKeys []string, expectedValues []V) {
	if assert.Equal(t, len(expectedKeys), len(expectedValues)) && assert.Equal(t, len(expectedKeys), m.Len()) {
		i := 0
		it := m.Iter()
		for it.Next() {
			assert.Equal(t, expectedKeys[i], it.Key())
			assert.Equal(t, expectedValues[i], it.Value())
			i++
		}
		assert.NoError(t, it.Err())
	}
}

func assertOrderedPairsEqualFromBack[V any](t *testing.T, m om.Map[string, V], expectedKeys []string, expectedValues []V) {
	if assert.Equal(t, len(expectedKeys), len(expectedValues)) && assert.Equal(t, len(expectedKeys), m.Len()) {
		i := m.Len() - 1
		it := m.IterBack()
		for it.Next() {
			assert.Equal(t, expectedKeys[i], it.Key())
			assert.Equal(t, expectedValues[i], it.Value())
			i--
		}
		assert.NoError(t, it.Err())
	}
}
