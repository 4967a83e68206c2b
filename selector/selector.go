// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selector provides the control model for choosing the window
// of a [slice.Slice]: the X and Y free axis choices, their exchange,
// and one slider per fixed axis. It holds no presentation code:
// views read its [State] and call its methods on user input.
package selector

import (
	"fmt"
	"log/slog"
	"strconv"

	"cogentcore.org/databrowse/base/errors"
	"cogentcore.org/databrowse/slice"
	"cogentcore.org/databrowse/store"
	"github.com/jinzhu/copier"
)

// MaxTicks is the maximum number of ticks shown on a slider.
// Sliders over larger axes page through them in steps.
const MaxTicks = 15

// Slider is the control for one fixed (non-free) axis.
type Slider struct {

	// Dim is the source axis.
	Dim int

	// Label is the axis label, as "label [n=size]".
	Label string

	// Max is the maximum index, size - 1.
	Max int

	// Page is the tick interval and page step, chosen so
	// there are at most [MaxTicks] ticks.
	Page int

	// Enabled is false for an axis of size 1.
	Enabled bool

	// Value is the current index.
	Value int

	// ValueLabels have a label for each index, as "index: coordinate"
	// or "index: category".
	ValueLabels []string
}

// Text returns the value label of the current index.
func (s *Slider) Text() string {
	if s.Value < 0 || s.Value >= len(s.ValueLabels) {
		return ""
	}
	return s.ValueLabels[s.Value]
}

// State is a snapshot of the controls.
type State struct {

	// Labels has the label of every source axis, for the X and Y choosers.
	Labels []string

	// X and Y are the free axes, with Y -1 for a 1D window.
	X, Y int

	// CanExchange is true for a 2D window.
	CanExchange bool

	// Sliders are the controls of the fixed axes, in dimension order.
	Sliders []Slider
}

// Selector is the control model for one [slice.Slice].
type Selector struct {
	slice *slice.Slice
	state State

	onReset  []func()
	onChange []func(slice.Change)
}

// New returns a new selector with an empty slice.
func New() *Selector {
	return &Selector{slice: slice.New(), state: State{X: -1, Y: -1}}
}

// Slice returns the slice controlled by the selector.
func (sr *Selector) Slice() *slice.Slice { return sr.slice }

// OnReset adds a function called when the controls are rebuilt,
// after [Selector.Assign], [Selector.Clear] or a shape change.
func (sr *Selector) OnReset(fun func()) {
	sr.onReset = append(sr.onReset, fun)
}

// OnChange adds a function called after every change to the window.
func (sr *Selector) OnChange(fun func(ch slice.Change)) {
	sr.onChange = append(sr.onChange, fun)
}

// Assign binds the slice to given store with rank free axes,
// and rebuilds the controls.
func (sr *Selector) Assign(ref store.Ref, rank int) {
	sr.slice.Bind(ref, rank)
	sr.rebuild()
	sr.sendReset()
}

// Clear clears the slice and the controls.
func (sr *Selector) Clear() {
	sr.slice.Clear()
	sr.rebuild()
	sr.sendReset()
}

// SetX sets the X (first free) axis.
func (sr *Selector) SetX(dx int) slice.Change {
	return sr.apply(sr.slice.SetX(dx))
}

// SetY sets the Y (second free) axis.
func (sr *Selector) SetY(dy int) slice.Change {
	return sr.apply(sr.slice.SetY(dy))
}

// Exchange exchanges the X and Y axes.
func (sr *Selector) Exchange() slice.Change {
	return sr.apply(sr.slice.Exchange())
}

// SetIndex sets the index of given fixed axis, from its slider.
func (sr *Selector) SetIndex(dim, index int) slice.Change {
	return sr.apply(sr.slice.SetIndex(dim, index))
}

// Update re-pulls the window after the store contents changed.
func (sr *Selector) Update() slice.Change {
	return sr.apply(sr.slice.Refresh())
}

// apply updates the controls as needed for given change,
// and sends it to the listeners.
func (sr *Selector) apply(ch slice.Change) slice.Change {
	switch ch {
	case slice.Unchanged:
		return ch
	case slice.Swapped:
		sr.state.X, sr.state.Y = sr.slice.X(), sr.slice.Y()
	case slice.Updated:
		sr.updateValues()
	case slice.Reset, slice.Cleared:
		sr.rebuild()
		sr.sendReset()
	}
	slog.Debug("selector: change", "name", sr.slice.Name(), "change", ch)
	for _, fun := range sr.onChange {
		fun(ch)
	}
	return ch
}

func (sr *Selector) sendReset() {
	for _, fun := range sr.onReset {
		fun()
	}
}

// State returns a deep copy of the current controls.
func (sr *Selector) State() State {
	var st State
	errors.Log(copier.CopyWithOption(&st, &sr.state, copier.Option{DeepCopy: true}))
	// copier makes empty slices from nil ones
	if sr.state.Labels == nil {
		st.Labels = nil
	}
	if sr.state.Sliders == nil {
		st.Sliders = nil
	}
	return st
}

// Sliders returns the current slider controls, which must not be modified.
func (sr *Selector) Sliders() []Slider {
	return sr.state.Sliders
}

// AxisLabel returns the label of given source axis as "label [n=size]".
func (sr *Selector) AxisLabel(dim int) string {
	s, ok := sr.slice.Source().Get()
	if !ok || sr.slice.IsEmpty() || dim < 0 || dim >= s.NumDims() {
		return ""
	}
	ax := s.Axis(dim)
	return fmt.Sprintf("%s [n=%d]", ax.Label, ax.Size)
}

// rebuild remakes all the controls from the slice.
func (sr *Selector) rebuild() {
	sr.state = State{X: -1, Y: -1}
	if sr.slice.IsEmpty() {
		return
	}
	s, _ := sr.slice.Source().Get()
	nd := s.NumDims()
	sr.state.Labels = make([]string, nd)
	for d := range nd {
		sr.state.Labels[d] = sr.AxisLabel(d)
	}
	sr.state.X, sr.state.Y = sr.slice.X(), sr.slice.Y()
	sr.state.CanExchange = sr.slice.NumDims() == 2
	order := sr.slice.DimOrder()
	for _, d := range order[sr.slice.NumDims():] {
		sr.state.Sliders = append(sr.state.Sliders, newSlider(s, d, sr.AxisLabel(d)))
	}
	sr.updateValues()
}

// updateValues updates the slider values from the slice.
func (sr *Selector) updateValues() {
	fixed := sr.slice.Fixed()
	for i := range sr.state.Sliders {
		sl := &sr.state.Sliders[i]
		if sl.Enabled && sl.Dim < len(fixed) {
			sl.Value = fixed[sl.Dim]
		} else {
			sl.Value = 0
		}
	}
}

func newSlider(s store.Store, dim int, label string) Slider {
	n := s.Axis(dim).Size
	sl := Slider{Dim: dim, Label: label, Max: max(n-1, 0), Page: Page(n), Enabled: n > 1}
	sl.ValueLabels = make([]string, n)
	if store.IsCategorical(s, dim) {
		cats := make([]string, n)
		store.FetchCategories(s, dim, cats)
		for i, c := range cats {
			sl.ValueLabels[i] = strconv.Itoa(i) + ": " + c
		}
		return sl
	}
	coords := make([]float64, n)
	store.FetchCoords(s, dim, coords)
	for i, c := range coords {
		sl.ValueLabels[i] = strconv.Itoa(i) + ": " + strconv.FormatFloat(c, 'g', -1, 64)
	}
	return sl
}

// Page returns the slider page step for an axis of size n,
// which is the smallest step giving at most [MaxTicks] ticks.
func Page(n int) int {
	page := 1
	for nticks := n; nticks > MaxTicks; nticks = n / page {
		page++
	}
	return page
}
