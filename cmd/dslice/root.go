// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/databrowse/base/errors"
	"cogentcore.org/databrowse/base/logx"
	"cogentcore.org/databrowse/base/metadata"
	"cogentcore.org/databrowse/catalog"
	"cogentcore.org/databrowse/config"
	"cogentcore.org/databrowse/loader"
	"cogentcore.org/databrowse/slice"
	"cogentcore.org/databrowse/store"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// app has the state shared by the commands.
type app struct {
	cfg *config.Config
	cat *catalog.Catalog

	in  io.Reader
	out io.Writer

	// term colors the output when it is a terminal.
	term *termenv.Output

	// numbers formats counts with digit grouping.
	numbers *message.Printer

	// flags
	configFile string
	verbosity  int
	log        config.Log
	x, y, rank int
	fix        []int
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{in: in, out: out, x: -1, y: -1}
	root := &cobra.Command{
		Use:          "dslice",
		Short:        "Browse n-dimensional data through 1D and 2D windows",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default "+config.DefaultFile+")")
	pf.CountVarP(&a.verbosity, "verbose", "v", "log informational messages, or debug messages with -vv")
	pf.BoolVarP(&a.log.Quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(a.infoCmd(), a.showCmd(), a.exportCmd(), a.demoCmd(), a.replCmd())
	return root
}

// windowFlags adds the flags selecting the window of a store.
func (a *app) windowFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&a.x, "x", "x", -1, "source axis of the first free axis (default largest)")
	f.IntVarP(&a.y, "y", "y", -1, "source axis of the second free axis")
	f.IntSliceVar(&a.fix, "fix", nil, "fixed index of every source axis")
	f.IntVar(&a.rank, "rank", 0, "number of free axes, 1 or 2 (default from config)")
}

func (a *app) setup() error {
	a.log.Verbose = a.verbosity == 1
	a.log.VeryVerbose = a.verbosity > 1
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.log.VeryVerbose || a.log.Verbose || a.log.Quiet {
		cfg.Log = a.log
	}
	if a.rank != 0 {
		cfg.Rank = a.rank
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	logx.UserLevel = cfg.Log.Level()
	slog.SetDefault(slog.New(logx.NewHandler(os.Stderr, logx.UserLevel)))
	a.cat = catalog.New()
	a.term = termenv.NewOutput(a.out)
	a.numbers = message.NewPrinter(language.English)
	return nil
}

// load loads the named files into the configured catalog location.
func (a *app) load(files ...string) ([]*catalog.Node, error) {
	if err := a.ensureGroup(a.cfg.Location); err != nil {
		return nil, err
	}
	var nodes []*catalog.Node
	for _, fn := range files {
		s, err := loader.Open(fn)
		if err != nil {
			return nodes, err
		}
		a.applyPrecision(s)
		nd, err := a.cat.AddData(s, a.cfg.Location)
		if err != nil {
			return nodes, err
		}
		nodes = append(nodes, nd)
	}
	return nodes, nil
}

// applyPrecision sets the configured precision on a store without one.
func (a *app) applyPrecision(s store.Store) {
	if a.cfg.Precision < 0 {
		return
	}
	if md := metadata.GetData(s); md != nil && md.Precision() < 0 {
		md.SetPrecision(a.cfg.Precision)
	}
}

// ensureGroup adds the groups of given path that do not exist.
func (a *app) ensureGroup(path string) error {
	loc := "/"
	for _, name := range strings.Split(strings.Trim(path, "/"), "/") {
		if name == "" {
			continue
		}
		_, err := a.cat.AddGroup(name, loc, "")
		if err != nil && !errors.Is(err, catalog.ErrExist) {
			return err
		}
		loc = strings.TrimSuffix(loc, "/") + "/" + name
	}
	return nil
}

// bind binds the slice to the store according to the window flags.
func (a *app) bind(sl *slice.Slice, ref store.Ref) error {
	switch {
	case a.x < 0 && a.y < 0:
		sl.Bind(ref, a.cfg.Rank)
		if a.fix != nil {
			sl.SetFixed(a.fix)
		}
	case a.y >= 0 || a.cfg.Rank == 2:
		x, y := max(a.x, 0), a.y
		if y < 0 {
			// the largest remaining axis
			y = x
		}
		sl.Bind2D(ref, x, y, a.fix)
	default:
		sl.Bind1D(ref, a.x, a.fix)
	}
	if sl.IsEmpty() {
		return errors.New("no data to show")
	}
	return nil
}

// color returns s in the given ANSI color when the output supports it.
func (a *app) color(s, color string) string {
	return a.term.String(s).Foreground(a.term.Color(color)).String()
}
