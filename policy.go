// policy.go: shared contract for eviction/admission policies
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0

package keystone

// evictionPolicy is the bookkeeping structure consulted by the cache facade
// to decide what to admit and what to evict. Implementations are driven
// exclusively by the access-buffer drainer (onAccess) and the facade's
// insert/remove paths (onWrite/remove), under the single-writer discipline
// described for C3; they are never touched concurrently by more than one
// goroutine at a time.
type evictionPolicy interface {
	// onAccess records a read of key. No-op if key is unknown to the policy.
	onAccess(key string)

	// onWrite records an insertion or update of key with the given weight.
	onWrite(key string, weight int64)

	// evictionCandidate returns a key to evict, or ok=false if the policy has
	// nothing to offer (empty policy state).
	evictionCandidate() (key string, ok bool)

	// remove drops key from the policy's bookkeeping. No-op if unknown.
	remove(key string)

	// clear drops all bookkeeping.
	clear()

	// len reports how many keys the policy is currently tracking.
	len() int
}
