// lru.go: recency-ordered eviction policy
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0

package keystone

import "container/list"

// lruPolicy evicts the least-recently-accessed key. on_access moves the
// node to the head; the eviction candidate is the tail.
type lruPolicy struct {
	ll    *list.List
	index map[string]*list.Element
}

func newLRUPolicy() *lruPolicy {
	return &lruPolicy{
		ll:    list.New(),
		index: make(map[string]*list.Element),
	}
}

func (p *lruPolicy) onAccess(key string) {
	if el, ok := p.index[key]; ok {
		p.ll.MoveToFront(el)
	}
}

func (p *lruPolicy) onWrite(key string, _ int64) {
	if el, ok := p.index[key]; ok {
		p.ll.MoveToFront(el)
		return
	}
	p.index[key] = p.ll.PushFront(key)
}

func (p *lruPolicy) evictionCandidate() (string, bool) {
	el := p.ll.Back()
	if el == nil {
		return "", false
	}
	return el.Value.(string), true
}

func (p *lruPolicy) remove(key string) {
	if el, ok := p.index[key]; ok {
		p.ll.Remove(el)
		delete(p.index, key)
	}
}

func (p *lruPolicy) clear() {
	p.ll.Init()
	p.index = make(map[string]*list.Element)
}

func (p *lruPolicy) len() int {
	return p.ll.Len()
}
