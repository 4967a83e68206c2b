// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package browser provides the controller of a data browser: it keeps
// the currently selected data node of a [catalog.Catalog] bound to a
// set of views, each with its own [selector.Selector], and keeps the
// views in sync as data is updated or removed.
package browser

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/databrowse/catalog"
	"cogentcore.org/databrowse/export"
	"cogentcore.org/databrowse/selector"
	"cogentcore.org/databrowse/slice"
)

// ViewSpec describes a view: its name and the rank of the window it shows.
type ViewSpec struct {

	// Name of the view.
	Name string

	// Rank is the number of free axes of the window, 1 or 2.
	Rank int
}

// DefaultViews are the default views: a table, a line plot and a heat map.
var DefaultViews = []ViewSpec{
	{Name: "Table", Rank: 2},
	{Name: "Line", Rank: 1},
	{Name: "HeatMap", Rank: 2},
}

// View is one view of the current data.
type View struct {
	ViewSpec

	// Selector controls the window of the view.
	Selector *selector.Selector
}

// Slice returns the slice of the view.
func (v *View) Slice() *slice.Slice { return v.Selector.Slice() }

// Browser is the data browser controller.
type Browser struct {

	// Catalog has the data.
	Catalog *catalog.Catalog

	// Views are the views of the current data.
	Views []*View

	// current is the path of the selected data node, or "".
	current string

	onSelect []func(path string)
}

// New returns a new browser over given catalog with given views,
// using [DefaultViews] if none are given.
func New(cat *catalog.Catalog, views ...ViewSpec) *Browser {
	if len(views) == 0 {
		views = DefaultViews
	}
	br := &Browser{Catalog: cat}
	for _, vs := range views {
		br.Views = append(br.Views, &View{ViewSpec: vs, Selector: selector.New()})
	}
	cat.OnUpdate(br.DataUpdated)
	cat.OnRemove(br.removed)
	return br
}

// Current returns the path of the selected data node, or "" if none.
func (br *Browser) Current() string { return br.current }

// OnSelect adds a function called with the path of the selected
// data node, or "" when the selection is cleared.
func (br *Browser) OnSelect(fun func(path string)) {
	br.onSelect = append(br.onSelect, fun)
}

// Select selects the data node at given path and binds all views to it.
func (br *Browser) Select(path string) error {
	nd, err := br.Catalog.Node(path)
	if err != nil {
		return err
	}
	if nd.IsGroup() {
		return fmt.Errorf("browser Select: %q is a group", path)
	}
	br.current = nd.Path()
	for _, v := range br.Views {
		v.Selector.Assign(nd.Ref(), v.Rank)
	}
	slog.Info("browser: selected", "path", br.current)
	br.sendSelect()
	return nil
}

// under returns true if the current selection is at or below path.
func (br *Browser) under(path string) bool {
	if br.current == "" {
		return false
	}
	path = "/" + strings.Trim(path, "/")
	return path == "/" || br.current == path || strings.HasPrefix(br.current, path+"/")
}

// DataUpdated refreshes the views if the current selection is at or
// below given path. Views are rebound when the data shape has changed.
// It is called automatically on [catalog.Catalog.Updated].
func (br *Browser) DataUpdated(path string) {
	if !br.under(path) {
		return
	}
	nd, err := br.Catalog.Node(br.current)
	if err != nil {
		br.clearViews()
		return
	}
	for _, v := range br.Views {
		if !v.Slice().Source().Same(nd.Ref()) {
			// the store was replaced
			v.Selector.Assign(nd.Ref(), v.Rank)
			continue
		}
		v.Selector.Update()
	}
}

// Clear removes the node at given path from the catalog,
// clearing the views if the current selection was removed.
func (br *Browser) Clear(path string) error {
	return br.Catalog.Remove(path)
}

func (br *Browser) removed(path string) {
	if br.under(path) {
		br.clearViews()
	}
}

func (br *Browser) clearViews() {
	br.current = ""
	for _, v := range br.Views {
		v.Selector.Clear()
	}
	br.sendSelect()
}

func (br *Browser) sendSelect() {
	for _, fun := range br.onSelect {
		fun(br.current)
	}
}

// View returns the view with given index, or nil.
func (br *Browser) View(i int) *View {
	if i < 0 || i >= len(br.Views) {
		return nil
	}
	return br.Views[i]
}

// CanExport returns true if the given view has data to export.
func (br *Browser) CanExport(view int) bool {
	v := br.View(view)
	return v != nil && !v.Slice().IsEmpty()
}

// ExportCSV exports the window of given view to the named file.
func (br *Browser) ExportCSV(view int, filename string) error {
	if !br.CanExport(view) {
		return fmt.Errorf("browser ExportCSV: view %d has no data", view)
	}
	return export.SaveCSV(filename, br.Views[view].Slice())
}
