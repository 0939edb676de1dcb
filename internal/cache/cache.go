package cache

import (
	"container/list"
	"strconv"
	"sync"
	"time"

	"image-gateway/internal/mediatypes"
	"image-gateway/internal/metrics"
)

// DimensionAuto is the key component used when a request leaves a dimension
// unspecified, so that omitted-dimension requests cache separately from
// explicit ones.
const DimensionAuto = "auto"

// Key identifies one transcoded variant of an origin image.
type Key struct {
	ImageID string
	Format  mediatypes.Format
	Width   string
	Height  string
}

// NewKey builds a Key for the given request parameters, substituting the
// auto sentinel for unset dimensions.
func NewKey(imageID string, f mediatypes.Format, width, height int) Key {
	k := Key{ImageID: imageID, Format: f, Width: DimensionAuto, Height: DimensionAuto}
	if width > 0 {
		k.Width = strconv.Itoa(width)
	}
	if height > 0 {
		k.Height = strconv.Itoa(height)
	}
	return k
}

// Entry is a cached transcoded payload.
type Entry struct {
	Bytes      []byte
	MimeType   string
	InsertedAt time.Time
}

// Store is a bounded FIFO+TTL response cache.
type Store struct {
	mu      sync.Mutex
	entries map[Key]*list.Element
	order   *list.List // front = oldest insertion
	max     int
	ttl     time.Duration
	now     func() time.Time
}

type node struct {
	key   Key
	entry Entry
}

// New creates a store holding at most max entries, treating entries older
// than ttl as stale.
func New(max int, ttl time.Duration) *Store {
	return NewWithClock(max, ttl, time.Now)
}

// NewWithClock is New with an injected clock, for deterministic expiry and
// eviction tests.
func NewWithClock(max int, ttl time.Duration, now func() time.Time) *Store {
	if max < 1 {
		max = 1
	}
	return &Store{
		entries: make(map[Key]*list.Element, max),
		order:   list.New(),
		max:     max,
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the entry for key if present and younger than the TTL. A stale
// entry reads as a miss but is left in place; only eviction or an overwrite
// removes it.
func (s *Store) Get(key Key) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.entries[key]
	if !ok {
		return Entry{}, false
	}
	n := el.Value.(*node)
	if s.now().Sub(n.entry.InsertedAt) > s.ttl {
		return Entry{}, false
	}
	return n.entry, true
}

// Set stores a payload under key. When the store is at capacity it first
// evicts the entry with the globally oldest insertion time. Overwriting an
// existing key re-stamps its insertion time.
func (s *Store) Set(key Key, payload []byte, mimeType string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{Bytes: payload, MimeType: mimeType, InsertedAt: s.now()}

	if el, ok := s.entries[key]; ok {
		el.Value.(*node).entry = entry
		s.order.MoveToBack(el)
		return
	}

	if s.order.Len() >= s.max {
		s.evictOldest()
	}
	s.entries[key] = s.order.PushBack(&node{key: key, entry: entry})
	metrics.CacheEntries.Set(float64(s.order.Len()))
}

// Len returns the number of resident entries, stale ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

// evictOldest removes the front of the insertion-order list. Caller holds mu.
func (s *Store) evictOldest() {
	el := s.order.Front()
	if el == nil {
		return
	}
	n := el.Value.(*node)
	s.order.Remove(el)
	delete(s.entries, n.key)
	metrics.CacheEvictions.Inc()
}
