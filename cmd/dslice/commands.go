// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cogentcore.org/databrowse/browser"
	"cogentcore.org/databrowse/catalog"
	"cogentcore.org/databrowse/export"
	"cogentcore.org/databrowse/gen"
	"cogentcore.org/databrowse/slice"
	"cogentcore.org/databrowse/store"
	"github.com/spf13/cobra"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE...",
		Short: "List data files with their shapes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := a.load(args...)
			if err != nil {
				return err
			}
			return a.info(nodes[0].Parent.Path())
		},
	}
}

// info lists the catalog below path with a count of stores and values.
func (a *app) info(path string) error {
	ls, err := a.cat.List(path, true, true)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, ls)
	stores, values := 0, 0
	nd, err := a.cat.Node(path)
	if err != nil {
		return err
	}
	nd.Walk(func(it *catalog.Node) bool {
		if s := it.Store(); s != nil {
			stores++
			values += store.Len(s)
		}
		return true
	})
	a.numbers.Fprintf(a.out, "%d stores, %d values\n", stores, values)
	return nil
}

func (a *app) showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a window of a data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sl, err := a.window(args[0])
			if err != nil {
				return err
			}
			a.describe(sl)
			return export.WriteCSV(a.out, sl)
		},
	}
	a.windowFlags(cmd)
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export FILE OUTPUT",
		Short: "Export a window of a data file as CSV",
		Long:  "Export a window of a data file as CSV, compressed when OUTPUT ends in .gz, .zst or .lz4.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sl, err := a.window(args[0])
			if err != nil {
				return err
			}
			return export.SaveCSV(args[1], sl)
		},
	}
	a.windowFlags(cmd)
	return cmd
}

// window loads the named file and binds a new slice to it.
func (a *app) window(file string) (*slice.Slice, error) {
	nodes, err := a.load(file)
	if err != nil {
		return nil, err
	}
	sl := slice.New()
	if err := a.bind(sl, nodes[0].Ref()); err != nil {
		return nil, err
	}
	return sl, nil
}

// describe prints the name and axes of the window.
func (a *app) describe(sl *slice.Slice) {
	var b strings.Builder
	b.WriteString(a.color(sl.Name(), "6"))
	for k := range sl.NumDims() {
		fmt.Fprintf(&b, " %s=%s[%d]", []string{"x", "y"}[k], sl.AxisLabel(k), sl.DimSize(k))
	}
	fixed := sl.Fixed()
	s, _ := sl.Source().Get()
	for _, d := range sl.DimOrder()[sl.NumDims():] {
		fmt.Fprintf(&b, " %s=%d", s.Axis(d).Label, fixed[d])
	}
	fmt.Fprintln(a.out, b.String())
}

func (a *app) demoCmd() *cobra.Command {
	var seed uint64
	var ticks int
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "List the demo data, optionally updating it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.demo(seed); err != nil {
				return err
			}
			if err := a.info("/"); err != nil {
				return err
			}
			if ticks <= 0 {
				return nil
			}
			return a.animate(cmd.Context(), seed, ticks, interval)
		},
	}
	f := cmd.Flags()
	f.Uint64Var(&seed, "seed", 1, "random seed")
	f.IntVar(&ticks, "ticks", 0, "number of updates of the 3D data")
	f.DurationVar(&interval, "interval", 100*time.Millisecond, "time between updates")
	return cmd
}

// demo adds the demo data to the catalog.
func (a *app) demo(seed uint64) (*store.Dense[float64], error) {
	return gen.Populate(a.cat, gen.NewRand(seed))
}

// animate updates the 3D demo data ticks times, printing the
// fingerprint of each view after each update.
func (a *app) animate(ctx context.Context, seed uint64, ticks int, interval time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ref, err := a.cat.Ref(gen.Random3DPath)
	if err != nil {
		return err
	}
	s, _ := ref.Get()
	ds := s.(*store.Dense[float64])
	br := browser.New(a.cat, a.cfg.Views...)
	if err := br.Select(gen.Random3DPath); err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	n := 0
	err = gen.Animate(ctx, a.cat, ds, gen.NewRand(seed+1), interval, func() {
		n++
		fmt.Fprintf(a.out, "%d:", n)
		for _, v := range br.Views {
			fmt.Fprintf(a.out, " %s=%016x", v.Name, v.Slice().Fingerprint())
		}
		fmt.Fprintln(a.out)
		if n == ticks {
			cancel()
		}
	})
	if n == ticks {
		return nil
	}
	return err
}
