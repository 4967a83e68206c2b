// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"strconv"
	"strings"
	"time"

	"cogentcore.org/databrowse/base/keylist"
	"cogentcore.org/databrowse/store"
)

// Nodes is an ordered list of nodes, keyed by name.
type Nodes = keylist.List[string, *Node]

// Node is an element of a [Catalog], which is either a group containing
// other nodes, or a data node owning a [store.Store] through its [store.Handle].
type Node struct {
	// Parent is the parent group, nil for the root.
	Parent *Node

	// name is the name of this node.  it is not a path.
	name string

	// doc is the description of a group.
	doc string

	// modTime is when the node was added or last updated.
	modTime time.Time

	// handle owns the store of a data node.
	handle *store.Handle

	// nodes are the children of a group node.
	nodes *Nodes
}

func newGroup(parent *Node, name, doc string) *Node {
	return &Node{Parent: parent, name: name, doc: doc, modTime: time.Now(), nodes: &Nodes{}}
}

// Name returns the name of the node, which is not a path.
func (nd *Node) Name() string { return nd.name }

// IsGroup returns true for a group node.
func (nd *Node) IsGroup() bool { return nd.nodes != nil }

// ModTime returns when the node was added or last updated.
func (nd *Node) ModTime() time.Time { return nd.modTime }

// Doc returns the description of the node: the group description,
// or the description of the store, with defaults when empty.
func (nd *Node) Doc() string {
	if nd.IsGroup() {
		if nd.doc == "" {
			return "Group"
		}
		return nd.doc
	}
	if s := nd.Store(); s != nil && s.Doc() != "" {
		return s.Doc()
	}
	return "Data array"
}

// Store returns the store of a data node, or nil.
func (nd *Node) Store() store.Store {
	return nd.handle.Store()
}

// Ref returns a non-owning reference to the store of a data node,
// which is dead for a group.
func (nd *Node) Ref() store.Ref {
	return nd.handle.Ref()
}

// Path returns the full path of the node, starting with "/".
func (nd *Node) Path() string {
	if nd.Parent == nil {
		return "/"
	}
	pp := nd.Parent.Path()
	if pp == "/" {
		return "/" + nd.name
	}
	return pp + "/" + nd.name
}

// Nodes returns the children of a group, in the order added.
func (nd *Node) Nodes() []*Node {
	if !nd.IsGroup() {
		return nil
	}
	return nd.nodes.Values
}

// Child returns the child with given name, or nil.
func (nd *Node) Child(name string) *Node {
	if !nd.IsGroup() {
		return nil
	}
	ch, _ := nd.nodes.AtTry(name)
	return ch
}

// IsBelow returns true if nd is the same as or a descendant of other.
func (nd *Node) IsBelow(other *Node) bool {
	for n := nd; n != nil; n = n.Parent {
		if n == other {
			return true
		}
	}
	return false
}

// Walk calls fun on nd and all nodes below it, depth first,
// stopping the descent into a group when fun returns false.
func (nd *Node) Walk(fun func(nd *Node) bool) {
	if !fun(nd) {
		return
	}
	for _, ch := range nd.Nodes() {
		ch.Walk(fun)
	}
}

// close releases the stores of all data nodes at and below nd.
func (nd *Node) close() {
	nd.Walk(func(n *Node) bool {
		if n.handle != nil {
			n.handle.Close()
		}
		return true
	})
}

// List returns a listing of nodes in the given group.
//   - long = include the shape and description of each node, vs just the name.
//   - recursive = descend into subgroups.
func (nd *Node) List(long, recursive bool) string {
	var b strings.Builder
	nd.list(&b, long, recursive, 0)
	return b.String()
}

func (nd *Node) list(b *strings.Builder, long, recursive bool, depth int) {
	for _, it := range nd.Nodes() {
		b.WriteString(strings.Repeat("\t", depth))
		switch {
		case it.IsGroup():
			b.WriteString(it.name + "/")
			if long {
				b.WriteString("\t" + it.Doc())
			}
			b.WriteString("\n")
			if recursive {
				it.list(b, long, recursive, depth+1)
			}
		case long:
			b.WriteString(it.name + " " + shapeString(it.Store()) + "\t" + it.Doc() + "\n")
		default:
			b.WriteString(it.name + "\n")
		}
	}
}

func shapeString(s store.Store) string {
	if s == nil {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for d := range s.NumDims() {
		if d > 0 {
			b.WriteString(", ")
		}
		ax := s.Axis(d)
		b.WriteString(ax.Label + ": " + strconv.Itoa(ax.Size))
	}
	b.WriteByte(']')
	return b.String()
}
