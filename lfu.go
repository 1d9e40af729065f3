// lfu.go: O(1) frequency-bucketed eviction policy
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0

package keystone

import "container/list"

// freqBucket groups every key currently observed exactly `freq` times.
type freqBucket struct {
	freq int64
	keys *list.List // of string
}

// lfuNode is the index entry for one key: which bucket it lives in and its
// element within that bucket's key list.
type lfuNode struct {
	bucket  *list.Element // *freqBucket within lfuPolicy.buckets
	keyElem *list.Element // string within bucket.keys
}

// lfuPolicy implements the bucket-list data model of the spec: a doubly
// linked list of frequency buckets in ascending order, each holding a
// doubly linked list of keys at that frequency. Every operation — insert,
// access-driven frequency bump, and eviction-candidate selection — touches
// O(1) nodes: the key's own bucket, and at most its immediate neighbor.
type lfuPolicy struct {
	buckets *list.List // of *freqBucket, ascending freq
	index   map[string]*lfuNode

	// sketch, if non-nil, breaks ties within the minimum-frequency bucket by
	// preferring to evict the key with the lowest Count-Min estimate.
	sketch *frequencySketch
}

func newLFUPolicy(sketch *frequencySketch) *lfuPolicy {
	return &lfuPolicy{
		buckets: list.New(),
		index:   make(map[string]*lfuNode),
		sketch:  sketch,
	}
}

// bucketFor returns the bucket with exactly freq, creating and linking it
// immediately after `after` (or at the front if after is nil) if missing.
func (p *lfuPolicy) bucketFor(freq int64, after *list.Element) *list.Element {
	if after == nil {
		if front := p.buckets.Front(); front != nil && front.Value.(*freqBucket).freq == freq {
			return front
		}
		return p.buckets.PushFront(&freqBucket{freq: freq, keys: list.New()})
	}
	if next := after.Next(); next != nil && next.Value.(*freqBucket).freq == freq {
		return next
	}
	return p.buckets.InsertAfter(&freqBucket{freq: freq, keys: list.New()}, after)
}

func (p *lfuPolicy) unlinkIfEmpty(el *list.Element) {
	if el.Value.(*freqBucket).keys.Len() == 0 {
		p.buckets.Remove(el)
	}
}

func (p *lfuPolicy) onAccess(key string) {
	node, ok := p.index[key]
	if !ok {
		return
	}
	p.bump(key, node)
}

func (p *lfuPolicy) onWrite(key string, _ int64) {
	if node, ok := p.index[key]; ok {
		p.bump(key, node)
		return
	}
	el := p.bucketFor(1, nil)
	bucket := el.Value.(*freqBucket)
	keyElem := bucket.keys.PushBack(key)
	p.index[key] = &lfuNode{bucket: el, keyElem: keyElem}
}

// bump moves key from its current bucket to the next-higher frequency
// bucket, creating it if necessary, and removes the now-possibly-empty
// source bucket. O(1).
func (p *lfuPolicy) bump(key string, node *lfuNode) {
	oldBucket := node.bucket
	bucket := oldBucket.Value.(*freqBucket)
	bucket.keys.Remove(node.keyElem)

	newFreq := bucket.freq + 1
	newEl := p.bucketFor(newFreq, oldBucket)
	newBucketVal := newEl.Value.(*freqBucket)
	node.keyElem = newBucketVal.keys.PushBack(key)
	node.bucket = newEl

	p.unlinkIfEmpty(oldBucket)
}

// evictionCandidate returns a key from the minimum-frequency bucket. When a
// sketch is configured, it picks the lowest-estimate key among that
// bucket's members rather than an arbitrary one.
func (p *lfuPolicy) evictionCandidate() (string, bool) {
	front := p.buckets.Front()
	if front == nil {
		return "", false
	}
	bucket := front.Value.(*freqBucket)
	if bucket.keys.Len() == 0 {
		return "", false
	}

	if p.sketch == nil {
		return bucket.keys.Back().Value.(string), true
	}

	var best string
	var bestEstimate uint64
	first := true
	for el := bucket.keys.Front(); el != nil; el = el.Next() {
		k := el.Value.(string)
		est := p.sketch.estimate(stringHash(k))
		if first || est < bestEstimate {
			best, bestEstimate, first = k, est, false
		}
	}
	return best, true
}

func (p *lfuPolicy) remove(key string) {
	node, ok := p.index[key]
	if !ok {
		return
	}
	bucket := node.bucket.Value.(*freqBucket)
	bucket.keys.Remove(node.keyElem)
	p.unlinkIfEmpty(node.bucket)
	delete(p.index, key)
}

func (p *lfuPolicy) clear() {
	p.buckets.Init()
	p.index = make(map[string]*lfuNode)
}

func (p *lfuPolicy) len() int {
	return len(p.index)
}
