package glyphrun

import (
	"math"
	"sync"
	"sync/atomic"
)

// strikeKey identifies a strike: one typeface at one size and hinting
// mode. Equal paints map to the same strike.
type strikeKey struct {
	typeface Typeface
	sizeBits uint64
	hinting  Hinting
}

// Strike caches per-glyph metrics for one typeface/size/hinting
// combination. Advances are computed on first request and memoized, so
// repeated runs with the same paint hit the cache.
//
// A Strike is accessed only through a StrikeHandle, which holds the
// strike's lock for the duration of the queries.
type Strike struct {
	mu sync.Mutex

	typeface Typeface
	size     float64

	advances map[GlyphID]Point
}

// StrikeHandle is exclusive access to a Strike. It is returned locked by
// StrikeCache.FindOrCreateExclusive and must be released with Release as
// soon as the metric queries are done; holding it serializes every other
// user of the same strike.
type StrikeHandle struct {
	strike *Strike
}

// GetAdvances fills out with one advance vector per glyph, in input
// order. out must be at least len(glyphs) long. The handle must not
// have been released.
func (h *StrikeHandle) GetAdvances(glyphs []GlyphID, out []Point) {
	s := h.strike
	for i, g := range glyphs {
		advance, ok := s.advances[g]
		if !ok {
			advance = s.typeface.GlyphAdvance(g, s.size)
			s.advances[g] = advance
		}
		out[i] = advance
	}
}

// Release unlocks the strike. The handle is dead afterwards; Release is
// idempotent.
func (h *StrikeHandle) Release() {
	if h.strike == nil {
		return
	}
	h.strike.mu.Unlock()
	h.strike = nil
}

// StrikeCacheStats holds cache statistics.
type StrikeCacheStats struct {
	Hits    atomic.Uint64
	Misses  atomic.Uint64
	Strikes atomic.Uint64
}

// StrikeCache is a shared cache of strikes keyed by paint. Lookups for
// an existing strike take a read lock; creating a strike takes a write
// lock once.
//
// StrikeCache is safe for concurrent use, but the handles it returns are
// exclusive: two builders asking for the same strike serialize on it.
type StrikeCache struct {
	mu      sync.RWMutex
	strikes map[strikeKey]*Strike

	stats StrikeCacheStats
}

// NewStrikeCache creates an empty strike cache.
func NewStrikeCache() *StrikeCache {
	return &StrikeCache{
		strikes: make(map[strikeKey]*Strike),
	}
}

// FindOrCreateExclusive returns a locked handle to the strike for paint,
// creating the strike on first use. The caller must Release the handle
// as soon as its metric queries are done.
func (c *StrikeCache) FindOrCreateExclusive(paint Paint) *StrikeHandle {
	key := strikeKey{
		typeface: paint.typefaceOrDefault(),
		sizeBits: math.Float64bits(paint.Size),
		hinting:  paint.Hinting,
	}

	c.mu.RLock()
	strike, ok := c.strikes[key]
	c.mu.RUnlock()

	if ok {
		c.stats.Hits.Add(1)
	} else {
		c.mu.Lock()
		strike, ok = c.strikes[key]
		if !ok {
			strike = &Strike{
				typeface: key.typeface,
				size:     paint.Size,
				advances: make(map[GlyphID]Point),
			}
			c.strikes[key] = strike
			c.stats.Strikes.Add(1)
			Logger().Debug("glyphrun: strike created",
				"typeface", key.typeface.Name(), "size", paint.Size)
		}
		c.mu.Unlock()
		c.stats.Misses.Add(1)
	}

	strike.mu.Lock()
	return &StrikeHandle{strike: strike}
}

// Len returns the number of strikes in the cache.
func (c *StrikeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.strikes)
}

// Clear drops all strikes. Outstanding handles stay valid; their strikes
// are simply no longer findable.
func (c *StrikeCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.strikes = make(map[strikeKey]*Strike)
}

// Stats returns cache statistics.
func (c *StrikeCache) Stats() (hits, misses, strikes uint64) {
	return c.stats.Hits.Load(), c.stats.Misses.Load(), c.stats.Strikes.Load()
}

// globalStrikeCache is the default shared strike cache.
var globalStrikeCache = NewStrikeCache()

// GetGlobalStrikeCache returns the global shared strike cache.
func GetGlobalStrikeCache() *StrikeCache {
	return globalStrikeCache
}

// SetGlobalStrikeCache replaces the global strike cache.
// The old cache is returned for cleanup if needed.
func SetGlobalStrikeCache(cache *StrikeCache) *StrikeCache {
	if cache == nil {
		cache = NewStrikeCache()
	}
	old := globalStrikeCache
	globalStrikeCache = cache
	return old
}
