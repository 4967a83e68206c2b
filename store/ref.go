// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

// cell is the shared state between a Handle and its Refs.
type cell struct {
	store Store
	alive bool
}

// Handle is the owning reference to a [Store], held by whatever
// publishes or catalogs the data. Consumers that do not control the
// lifetime of the data, such as slices and proxies, hold a [Ref]
// obtained from [Handle.Ref] instead, and every Ref becomes dead
// when the Handle is closed.
type Handle struct {
	c *cell
}

// NewHandle returns a new owning Handle for given store.
func NewHandle(s Store) *Handle {
	return &Handle{c: &cell{store: s, alive: s != nil}}
}

// Store returns the store, or nil if the handle has been closed.
func (h *Handle) Store() Store {
	if h == nil || !h.c.alive {
		return nil
	}
	return h.c.store
}

// Ref returns a new non-owning reference to the store.
func (h *Handle) Ref() Ref {
	if h == nil {
		return Ref{}
	}
	return Ref{c: h.c}
}

// Close releases the store: all Refs obtained from this handle
// report it as gone from now on. It is safe to call more than once.
func (h *Handle) Close() {
	if h == nil {
		return
	}
	h.c.alive = false
	h.c.store = nil
}

// IsClosed returns true if the handle has been closed.
func (h *Handle) IsClosed() bool {
	return h == nil || !h.c.alive
}

// Ref is a non-owning (weak) reference to a [Store] whose lifetime is
// controlled by a [Handle]. It must be checked with [Ref.Get] before
// every use. The zero Ref is dead.
type Ref struct {
	c *cell
}

// RefOf returns a Ref to given store through a new Handle that is
// never closed, for stores whose lifetime is not managed, such as in
// tests or one-shot command line use.
func RefOf(s Store) Ref {
	return NewHandle(s).Ref()
}

// Get returns the store and true if it is still alive,
// or nil and false otherwise.
func (r Ref) Get() (Store, bool) {
	if r.c == nil || !r.c.alive {
		return nil, false
	}
	return r.c.store, true
}

// Alive returns true if the store is still alive.
func (r Ref) Alive() bool {
	return r.c != nil && r.c.alive
}

// Same returns true if both references were obtained from the same Handle.
func (r Ref) Same(o Ref) bool {
	return r.c != nil && r.c == o.c
}
