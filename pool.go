// SPDX-License-Identifier: Apache-2.0

package strarena

import (
	"sync"
	"weak"
)

const (
	defaultPoolBytes   = 4 * 1024
	defaultPoolStrings = 128
)

// Pool keeps cleared arenas around for reuse.
//
// Idle arenas are held through weak pointers, so the GC may reclaim them at any time.
// Acquire turns a weak pointer back into a strong one while removing it from the pool,
// and Release makes it weak again. The pool size therefore follows memory pressure.
//
// Arenas are created with capacity hints learned per key: the average peak usage of the
// last 50 arenas released under that key.
type Pool struct {
	pool  []weak.Pointer[PoolItem]
	sizes map[uint64]*poolItemSize
	mu    sync.Mutex
}

type poolItemSize struct {
	count        int
	totalBytes   int
	totalStrings int
}

// PoolItem wraps an arena handed out by a Pool.
type PoolItem struct {
	Arena *StringArena
	Key   uint64
}

// NewPool creates an empty Pool.
func NewPool() *Pool {
	return &Pool{
		sizes: make(map[uint64]*poolItemSize),
	}
}

// Acquire returns an empty arena, reusing a released one when available.
// key identifies the use case whose past usage sizes newly created arenas.
func (p *Pool) Acquire(key uint64) *PoolItem {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.pool) > 0 {
		last := len(p.pool) - 1
		wp := p.pool[last]
		p.pool = p.pool[:last]

		if v := wp.Value(); v != nil {
			v.Key = key
			return v
		}
	}

	bytes, strings := p.capacityHint(key)
	return &PoolItem{
		Arena: WithCapacity(bytes, strings),
		Key:   key,
	}
}

// Release clears the item's arena and returns it to the pool.
// The arena must not be used after Release.
func (p *Pool) Release(item *PoolItem) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.release(item)
}

// ReleaseMany is Release for a batch of items.
func (p *Pool) ReleaseMany(items []*PoolItem) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, item := range items {
		p.release(item)
	}
}

func (p *Pool) release(item *PoolItem) {
	a := item.Arena
	peakBytes, peakStrings := a.Peak()
	a.Clear()
	a.peakBytes, a.peakStrings = 0, 0

	if size, ok := p.sizes[item.Key]; ok {
		if size.count == 50 {
			size.count = 1
			size.totalBytes /= 50
			size.totalStrings /= 50
		}
		size.count++
		size.totalBytes += peakBytes
		size.totalStrings += peakStrings
	} else {
		p.sizes[item.Key] = &poolItemSize{
			count:        1,
			totalBytes:   peakBytes,
			totalStrings: peakStrings,
		}
	}

	item.Key = 0
	p.pool = append(p.pool, weak.Make(item))
}

// capacityHint returns the average peak usage recorded for key,
// or defaults when nothing has been recorded yet.
func (p *Pool) capacityHint(key uint64) (bytes, strings int) {
	if size, ok := p.sizes[key]; ok {
		return size.totalBytes / size.count, size.totalStrings / size.count
	}
	return defaultPoolBytes, defaultPoolStrings
}
