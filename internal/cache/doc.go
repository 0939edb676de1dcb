// Package cache implements the in-memory response cache for transcoded
// image payloads.
//
// The store is bounded by entry count and by a TTL. Eviction removes the
// entry with the oldest insertion time; a read never refreshes an entry's
// age, so the policy is insertion-order (FIFO) with independent TTL expiry,
// not LRU. Expiry is lazy: a stale entry reads as a miss but stays resident
// until capacity eviction or an overwrite reclaims it.
//
// The store is safe for concurrent use. There is no per-key request
// coalescing: two concurrent misses for the same key both transcode and the
// second write wins, which is accepted as a correctness-neutral
// inefficiency.
package cache
