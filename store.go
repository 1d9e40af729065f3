// store.go: striped concurrent entry store
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0

package keystone

import "sync"

// storeShard is one stripe of the entry store: an independently lockable
// map from key to entry. Splitting the store into shards bounds contention
// the way the teacher's single flat table bounds it with open addressing,
// but as a plain map each shard grows and shrinks freely — required for
// weight-bounded configurations where the entry count is not known in
// advance (see DESIGN.md for the rationale behind this departure from the
// teacher's fixed-size array).
type storeShard struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// entryStore is a concurrent hash map of key to *entry, sharded into N
// stripes by key hash so that reads and writes on different keys never
// contend on the same lock.
type entryStore struct {
	shards []*storeShard
	mask   uint64
}

func newEntryStore(stripes int) *entryStore {
	if stripes < 1 {
		stripes = 1
	}
	n := nextPowerOf2(stripes)
	s := &entryStore{
		shards: make([]*storeShard, n),
		mask:   uint64(n - 1),
	}
	for i := range s.shards {
		s.shards[i] = &storeShard{entries: make(map[string]*entry)}
	}
	return s
}

func (s *entryStore) shardFor(keyHash uint64) *storeShard {
	return s.shards[keyHash&s.mask]
}

// get returns the entry for key, if present. The caller is responsible for
// the expiration check and for recording the access (touch).
func (s *entryStore) get(key string, keyHash uint64) (*entry, bool) {
	shard := s.shardFor(keyHash)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	e, ok := shard.entries[key]
	return e, ok
}

// put installs e for key, returning the previous entry (if any) so the
// caller can emit remove/replace notifications and adjust weight totals.
func (s *entryStore) put(key string, keyHash uint64, e *entry) (*entry, bool) {
	shard := s.shardFor(keyHash)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	old, existed := shard.entries[key]
	shard.entries[key] = e
	return old, existed
}

// remove deletes key, returning the removed entry if present.
func (s *entryStore) remove(key string, keyHash uint64) (*entry, bool) {
	shard := s.shardFor(keyHash)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	e, ok := shard.entries[key]
	if ok {
		delete(shard.entries, key)
	}
	return e, ok
}

// removeIf deletes key only if it is still == expect (guards against a
// racing replacement between an expiration scan and a concurrent write).
func (s *entryStore) removeIf(key string, keyHash uint64, expect *entry) bool {
	shard := s.shardFor(keyHash)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	if cur, ok := shard.entries[key]; ok && cur == expect {
		delete(shard.entries, key)
		return true
	}
	return false
}

func (s *entryStore) clear() {
	for _, shard := range s.shards {
		shard.mu.Lock()
		shard.entries = make(map[string]*entry)
		shard.mu.Unlock()
	}
}

// len returns a weakly-consistent total count across all shards.
func (s *entryStore) len() int {
	total := 0
	for _, shard := range s.shards {
		shard.mu.RLock()
		total += len(shard.entries)
		shard.mu.RUnlock()
	}
	return total
}

// totalWeight returns a weakly-consistent aggregate weight across all shards.
func (s *entryStore) totalWeight() int64 {
	var total int64
	for _, shard := range s.shards {
		shard.mu.RLock()
		for _, e := range shard.entries {
			total += e.weight
		}
		shard.mu.RUnlock()
	}
	return total
}

// snapshotKeys returns a weakly-consistent snapshot of all live keys.
func (s *entryStore) snapshotKeys() []string {
	keys := make([]string, 0, s.len())
	for _, shard := range s.shards {
		shard.mu.RLock()
		for k := range shard.entries {
			keys = append(keys, k)
		}
		shard.mu.RUnlock()
	}
	return keys
}

// snapshotEntries returns a weakly-consistent snapshot of key/entry pairs,
// used by the maintenance scheduler's expiration sweep.
func (s *entryStore) snapshotEntries() []struct {
	key string
	e   *entry
} {
	out := make([]struct {
		key string
		e   *entry
	}, 0, s.len())
	for _, shard := range s.shards {
		shard.mu.RLock()
		for k, e := range shard.entries {
			out = append(out, struct {
				key string
				e   *entry
			}{k, e})
		}
		shard.mu.RUnlock()
	}
	return out
}
