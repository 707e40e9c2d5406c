package glyphrun

import (
	"testing"
)

func TestStrikeCache_FindOrCreateExclusive(t *testing.T) {
	tf := newAlignmentTypeface()

	t.Run("advances in unique order", func(t *testing.T) {
		cache := NewStrikeCache()
		paint := Paint{Typeface: tf, Size: 12}

		handle := cache.FindOrCreateExclusive(paint)
		out := make([]Point, 3)
		handle.GetAdvances([]GlyphID{3, 1, 2}, out)
		handle.Release()

		want := []Point{{X: 5}, {X: 10}, {X: 20}}
		for i := range want {
			if out[i] != want[i] {
				t.Errorf("advances[%d] = %v, want %v", i, out[i], want[i])
			}
		}
	})

	t.Run("same paint reuses the strike", func(t *testing.T) {
		cache := NewStrikeCache()
		paint := Paint{Typeface: tf, Size: 12}

		h1 := cache.FindOrCreateExclusive(paint)
		h1.Release()
		h2 := cache.FindOrCreateExclusive(paint)
		h2.Release()

		if got := cache.Len(); got != 1 {
			t.Errorf("cache.Len() = %d, want 1", got)
		}
		hits, misses, strikes := cache.Stats()
		if misses != 1 || strikes != 1 {
			t.Errorf("misses = %d, strikes = %d, want 1 and 1", misses, strikes)
		}
		if hits != 1 {
			t.Errorf("hits = %d, want 1", hits)
		}
	})

	t.Run("different size gets its own strike", func(t *testing.T) {
		cache := NewStrikeCache()
		h1 := cache.FindOrCreateExclusive(Paint{Typeface: tf, Size: 12})
		h1.Release()
		h2 := cache.FindOrCreateExclusive(Paint{Typeface: tf, Size: 24})
		h2.Release()

		if got := cache.Len(); got != 2 {
			t.Errorf("cache.Len() = %d, want 2", got)
		}
	})

	t.Run("release is idempotent", func(t *testing.T) {
		cache := NewStrikeCache()
		h := cache.FindOrCreateExclusive(Paint{Typeface: tf, Size: 12})
		h.Release()
		h.Release() // must not panic or unlock twice

		// The strike must still be acquirable.
		h2 := cache.FindOrCreateExclusive(Paint{Typeface: tf, Size: 12})
		h2.Release()
	})

	t.Run("clear drops strikes", func(t *testing.T) {
		cache := NewStrikeCache()
		h := cache.FindOrCreateExclusive(Paint{Typeface: tf, Size: 12})
		h.Release()
		cache.Clear()
		if got := cache.Len(); got != 0 {
			t.Errorf("cache.Len() = %d after Clear, want 0", got)
		}
	})
}

func TestStrikeCache_AdvanceMemoization(t *testing.T) {
	// A typeface that counts advance computations.
	calls := 0
	tf := &countingTypeface{
		fakeTypeface: *newAlignmentTypeface(),
		calls:        &calls,
	}

	cache := NewStrikeCache()
	paint := Paint{Typeface: tf, Size: 12}

	h := cache.FindOrCreateExclusive(paint)
	out := make([]Point, 2)
	h.GetAdvances([]GlyphID{1, 2}, out)
	h.Release()

	if calls != 2 {
		t.Fatalf("advance computations = %d, want 2", calls)
	}

	h = cache.FindOrCreateExclusive(paint)
	h.GetAdvances([]GlyphID{1, 2}, out)
	h.Release()

	if calls != 2 {
		t.Errorf("advance computations = %d after second query, want 2 (memoized)", calls)
	}
}

type countingTypeface struct {
	fakeTypeface
	calls *int
}

func (c *countingTypeface) GlyphAdvance(g GlyphID, size float64) Point {
	*c.calls++
	return c.fakeTypeface.GlyphAdvance(g, size)
}

func TestGlobalStrikeCache(t *testing.T) {
	old := GetGlobalStrikeCache()
	defer SetGlobalStrikeCache(old)

	fresh := NewStrikeCache()
	SetGlobalStrikeCache(fresh)
	if GetGlobalStrikeCache() != fresh {
		t.Error("SetGlobalStrikeCache did not install the new cache")
	}

	// nil restores a usable default rather than a nil cache.
	SetGlobalStrikeCache(nil)
	if GetGlobalStrikeCache() == nil {
		t.Error("global strike cache is nil")
	}
}
