// fifo.go: insertion-ordered eviction policy
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0

package keystone

import "container/list"

// fifoPolicy evicts in strict insertion order. on_access is a no-op, matching
// the classic FIFO contract — recency of use never reorders the queue.
type fifoPolicy struct {
	ll    *list.List
	index map[string]*list.Element
}

func newFIFOPolicy() *fifoPolicy {
	return &fifoPolicy{
		ll:    list.New(),
		index: make(map[string]*list.Element),
	}
}

func (p *fifoPolicy) onAccess(string) {}

func (p *fifoPolicy) onWrite(key string, _ int64) {
	if _, ok := p.index[key]; ok {
		return
	}
	p.index[key] = p.ll.PushBack(key)
}

func (p *fifoPolicy) evictionCandidate() (string, bool) {
	el := p.ll.Front()
	if el == nil {
		return "", false
	}
	return el.Value.(string), true
}

func (p *fifoPolicy) remove(key string) {
	if el, ok := p.index[key]; ok {
		p.ll.Remove(el)
		delete(p.index, key)
	}
}

func (p *fifoPolicy) clear() {
	p.ll.Init()
	p.index = make(map[string]*list.Element)
}

func (p *fifoPolicy) len() int {
	return p.ll.Len()
}
