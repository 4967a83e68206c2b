// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog provides a registry of data stores organized in a
// tree of named groups, addressed by slash-separated paths such as
// "/sim/run1/random3d". The catalog owns each store through a
// [store.Handle], and hands out non-owning [store.Ref]s to consumers.
package catalog

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"cogentcore.org/databrowse/base/errors"
	"cogentcore.org/databrowse/store"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

var (
	// ErrNotFound is returned when no node exists at a path.
	ErrNotFound = errors.New("not found")

	// ErrNotGroup is returned when a path that must be a group is a data node.
	ErrNotGroup = errors.New("not a group")

	// ErrExist is returned when adding a group whose name is already taken.
	ErrExist = fs.ErrExist
)

// minSimilarity is the minimum similarity of a name to be suggested
// for a path that was not found.
const minSimilarity = 0.5

// Catalog is a tree of groups and data nodes.
type Catalog struct {
	root *Node

	onUpdate []func(path string)
	onRemove []func(path string)
}

// New returns a new empty catalog.
func New() *Catalog {
	return &Catalog{root: newGroup(nil, "", "")}
}

// Root returns the root group.
func (c *Catalog) Root() *Node { return c.root }

// OnUpdate adds a function called with the path of
// a node when its data has been updated.
func (c *Catalog) OnUpdate(fun func(path string)) {
	c.onUpdate = append(c.onUpdate, fun)
}

// OnRemove adds a function called with the path of a removed node,
// after its stores have been closed.
func (c *Catalog) OnRemove(fun func(path string)) {
	c.onRemove = append(c.onRemove, fun)
}

// splitPath returns the names in given path, which are
// separated by "/", ignoring leading and trailing "/".
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// Node returns the node at given path, where "/" and "" are the root.
func (c *Catalog) Node(path string) (*Node, error) {
	nd := c.root
	for _, name := range splitPath(path) {
		ch := nd.Child(name)
		if ch == nil {
			return nil, c.notFound(path, nd, name)
		}
		nd = ch
	}
	return nd, nil
}

// notFound returns an [ErrNotFound] error for name in group nd,
// suggesting the most similar existing name.
func (c *Catalog) notFound(path string, nd *Node, name string) error {
	lev := metrics.NewLevenshtein()
	best, bestSim := "", 0.0
	for _, ch := range nd.Nodes() {
		if sim := strutil.Similarity(name, ch.name, lev); sim > bestSim {
			best, bestSim = ch.name, sim
		}
	}
	if bestSim >= minSimilarity {
		return fmt.Errorf("catalog: %q: %w (did you mean %q?)", path, ErrNotFound, best)
	}
	return fmt.Errorf("catalog: %q: %w", path, ErrNotFound)
}

// group returns the group at given path.
func (c *Catalog) group(op, path string) (*Node, error) {
	nd, err := c.Node(path)
	if err != nil {
		return nil, err
	}
	if !nd.IsGroup() {
		return nil, fmt.Errorf("catalog %s: %q: %w", op, path, ErrNotGroup)
	}
	return nd, nil
}

// AddGroup adds a new group with given name and description
// to the group at location. It returns [ErrExist] along with
// the existing node if the name is already taken.
func (c *Catalog) AddGroup(name, location, doc string) (*Node, error) {
	dir, err := c.group("AddGroup", location)
	if err != nil {
		return nil, err
	}
	if ex := dir.Child(name); ex != nil {
		return ex, fmt.Errorf("catalog AddGroup: %q: %w", ex.Path(), ErrExist)
	}
	nd := newGroup(dir, name, doc)
	errors.Log(dir.nodes.Add(name, nd))
	return nd, nil
}

// AddData adds given store to the group at location, as a data node
// named after the store. If a data node with that name already exists,
// its store is replaced and closed, and the node keeps its position.
// The catalog takes ownership of the store.
func (c *Catalog) AddData(s store.Store, location string) (*Node, error) {
	if err := store.Validate(s); err != nil {
		return nil, fmt.Errorf("catalog AddData: %w", err)
	}
	dir, err := c.group("AddData", location)
	if err != nil {
		return nil, err
	}
	name := s.Name()
	if ex := dir.Child(name); ex != nil {
		if ex.IsGroup() {
			return nil, fmt.Errorf("catalog AddData: %q: %w", ex.Path(), ErrExist)
		}
		ex.handle.Close()
		ex.handle = store.NewHandle(s)
		ex.modTime = time.Now()
		slog.Debug("catalog: replaced data", "path", ex.Path())
		return ex, nil
	}
	nd := &Node{Parent: dir, name: name, modTime: time.Now(), handle: store.NewHandle(s)}
	errors.Log(dir.nodes.Add(name, nd))
	slog.Debug("catalog: added data", "path", nd.Path())
	return nd, nil
}

// Ref returns a non-owning reference to the store at given path.
func (c *Catalog) Ref(path string) (store.Ref, error) {
	nd, err := c.Node(path)
	if err != nil {
		return store.Ref{}, err
	}
	if nd.IsGroup() {
		return store.Ref{}, fmt.Errorf("catalog Ref: %q is a group: %w", path, ErrNotFound)
	}
	return nd.Ref(), nil
}

// Remove removes the node at given path and closes every store at
// or below it. Removing the root removes all nodes.
func (c *Catalog) Remove(path string) error {
	nd, err := c.Node(path)
	if err != nil {
		return err
	}
	nd.close()
	if nd == c.root {
		c.root.nodes.Reset()
	} else {
		nd.Parent.nodes.DeleteByKey(nd.name)
	}
	p := nd.Path()
	for _, fun := range c.onRemove {
		fun(p)
	}
	return nil
}

// Updated marks the data at or below given path as updated,
// calling the [Catalog.OnUpdate] functions.
func (c *Catalog) Updated(path string) error {
	nd, err := c.Node(path)
	if err != nil {
		return err
	}
	nd.modTime = time.Now()
	p := nd.Path()
	for _, fun := range c.onUpdate {
		fun(p)
	}
	return nil
}

// Walk calls fun on every node, depth first from the root.
func (c *Catalog) Walk(fun func(nd *Node) bool) {
	c.root.Walk(fun)
}

// List returns a listing of the group at given path.
func (c *Catalog) List(path string, long, recursive bool) (string, error) {
	dir, err := c.group("List", path)
	if err != nil {
		return "", err
	}
	return dir.List(long, recursive), nil
}
