// wtinylfu.go: windowed tiny-LFU admission policy
//
// Copyright (c) 2025 Keystone authors
// SPDX-License-Identifier: MPL-2.0

package keystone

// protectedShare is the fraction of the main region reserved for the
// protected segment; the remainder is the probationary segment. Matches the
// 80/20 split used by other W-TinyLFU implementations in practice.
const protectedShare = 0.8

// wTinyLFUPolicy logically partitions the key space into a small admission
// window (LRU) and a main region (segmented LRU: protected + probationary).
// New keys always enter the window. When the window overflows, its victim
// becomes a candidate for the main region; admission is decided by comparing
// Count-Min frequency estimates against the probationary segment's own
// victim, so skewed workloads hold onto their hot keys instead of being
// evicted by a burst of one-shot insertions.
type wTinyLFUPolicy struct {
	window      *lruPolicy
	protected   *lruPolicy
	probation   *lruPolicy
	sketch      *frequencySketch

	windowCapacity    int
	protectedCapacity int
}

func newWTinyLFUPolicy(capacity int, windowRatio float64, sketch *frequencySketch) *wTinyLFUPolicy {
	if capacity < 1 {
		capacity = 1
	}
	if windowRatio <= 0 || windowRatio >= 1 {
		windowRatio = DefaultWindowRatio
	}

	windowCapacity := int(float64(capacity) * windowRatio)
	if windowCapacity < 1 {
		windowCapacity = 1
	}
	mainCapacity := capacity - windowCapacity
	if mainCapacity < 1 {
		mainCapacity = 1
	}
	protectedCapacity := int(float64(mainCapacity) * protectedShare)
	if protectedCapacity < 1 {
		protectedCapacity = 1
	}

	return &wTinyLFUPolicy{
		window:            newLRUPolicy(),
		protected:         newLRUPolicy(),
		probation:         newLRUPolicy(),
		sketch:            sketch,
		windowCapacity:    windowCapacity,
		protectedCapacity: protectedCapacity,
	}
}

func (p *wTinyLFUPolicy) segmentOf(key string) *lruPolicy {
	if _, ok := p.window.index[key]; ok {
		return p.window
	}
	if _, ok := p.protected.index[key]; ok {
		return p.protected
	}
	if _, ok := p.probation.index[key]; ok {
		return p.probation
	}
	return nil
}

func (p *wTinyLFUPolicy) onAccess(key string) {
	switch {
	case p.inWindow(key):
		p.window.onAccess(key)
	case p.inProtected(key):
		p.protected.onAccess(key)
	case p.inProbation(key):
		p.probation.remove(key)
		p.protected.onWrite(key, 0)
		p.demoteIfProtectedOverflows()
	}
}

func (p *wTinyLFUPolicy) inWindow(key string) bool {
	_, ok := p.window.index[key]
	return ok
}

func (p *wTinyLFUPolicy) inProtected(key string) bool {
	_, ok := p.protected.index[key]
	return ok
}

func (p *wTinyLFUPolicy) inProbation(key string) bool {
	_, ok := p.probation.index[key]
	return ok
}

// demoteIfProtectedOverflows pushes the protected segment's LRU victim back
// down to probation when promotion has pushed it over its share.
func (p *wTinyLFUPolicy) demoteIfProtectedOverflows() {
	if p.protected.len() <= p.protectedCapacity {
		return
	}
	victim, ok := p.protected.evictionCandidate()
	if !ok {
		return
	}
	p.protected.remove(victim)
	p.probation.onWrite(victim, 0)
}

func (p *wTinyLFUPolicy) onWrite(key string, weight int64) {
	if seg := p.segmentOf(key); seg != nil {
		p.onAccess(key)
		return
	}
	p.window.onWrite(key, weight)
}

// evictionCandidate resolves one pending decision: either a window-to-main
// admission (which may instead sacrifice the candidate or the main victim),
// or, if the window is within budget, a plain main-region eviction.
func (p *wTinyLFUPolicy) evictionCandidate() (string, bool) {
	if p.window.len() > p.windowCapacity {
		return p.admitFromWindow()
	}
	if p.probation.len() > 0 {
		key, _ := p.probation.evictionCandidate()
		return key, true
	}
	if p.protected.len() > 0 {
		key, _ := p.protected.evictionCandidate()
		return key, true
	}
	return "", false
}

func (p *wTinyLFUPolicy) admitFromWindow() (string, bool) {
	candidate, ok := p.window.evictionCandidate()
	if !ok {
		return "", false
	}

	victim, hasVictim := p.probation.evictionCandidate()
	if !hasVictim {
		p.window.remove(candidate)
		p.probation.onWrite(candidate, 0)
		return p.evictionCandidate()
	}

	candidateFreq := p.sketch.estimate(stringHash(candidate))
	victimFreq := p.sketch.estimate(stringHash(victim))

	if candidateFreq > victimFreq {
		p.window.remove(candidate)
		p.probation.remove(victim)
		p.probation.onWrite(candidate, 0)
		return victim, true
	}

	p.window.remove(candidate)
	return candidate, true
}

func (p *wTinyLFUPolicy) remove(key string) {
	if seg := p.segmentOf(key); seg != nil {
		seg.remove(key)
	}
}

func (p *wTinyLFUPolicy) clear() {
	p.window.clear()
	p.protected.clear()
	p.probation.clear()
}

func (p *wTinyLFUPolicy) len() int {
	return p.window.len() + p.protected.len() + p.probation.len()
}
