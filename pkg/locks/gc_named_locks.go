// Copyright 2025 NetApp, Inc. All Rights Reserved.

package locks

import "sync"

// GCNamedMutex hands out one mutex per name, dropping it once no holder or waiter remains.
type GCNamedMutex struct {
	mutexes map[string]*gcMutex
	m       sync.Mutex
}

type gcMutex struct {
	mu   sync.Mutex
	refs int
}

func NewGCNamedMutex() *GCNamedMutex {
	return &GCNamedMutex{mutexes: make(map[string]*gcMutex)}
}

func (g *GCNamedMutex) Lock(name string) {
	g.m.Lock()
	entry, ok := g.mutexes[name]
	if !ok {
		entry = &gcMutex{}
		g.mutexes[name] = entry
	}
	entry.refs++
	g.m.Unlock()

	entry.mu.Lock()
}

// Unlock releases name. Unlocking a name that is not held is a no-op.
func (g *GCNamedMutex) Unlock(name string) {
	g.m.Lock()
	entry, ok := g.mutexes[name]
	if !ok {
		g.m.Unlock()
		return
	}
	entry.refs--
	if entry.refs == 0 {
		delete(g.mutexes, name)
	}
	g.m.Unlock()

	entry.mu.Unlock()
}

// LockWithGuard locks name and returns a function that unlocks it exactly once.
//
//	unlock := mutex.LockWithGuard(lunName)
//	defer unlock()
func (g *GCNamedMutex) LockWithGuard(name string) func() {
	g.Lock(name)
	var once sync.Once
	return func() { once.Do(func() { g.Unlock(name) }) }
}

func (g *GCNamedMutex) size() int {
	g.m.Lock()
	defer g.m.Unlock()
	return len(g.mutexes)
}
