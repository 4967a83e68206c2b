// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/databrowse/base/errors"
	"cogentcore.org/databrowse/browser"
	"cogentcore.org/databrowse/export"
	"cogentcore.org/databrowse/slice"
	"cogentcore.org/databrowse/watch"
	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

// errQuit ends the interactive session.
var errQuit = errors.New("quit")

// command is one interactive command.
type command struct {
	args string
	doc  string
	run  func(r *repl, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":   {"", "list commands", (*repl).help},
		"ls":     {"[-l] [PATH]", "list the data below PATH", (*repl).ls},
		"open":   {"FILE...", "load data files", (*repl).open},
		"demo":   {"[SEED]", "load the demo data", (*repl).demo},
		"select": {"PATH", "show the data at PATH in all views", (*repl).selectPath},
		"view":   {"N", "make view N current", (*repl).setView},
		"x":      {"AXIS", "set the first free axis", (*repl).setX},
		"y":      {"AXIS", "set the second free axis", (*repl).setY},
		"swap":   {"", "exchange the free axes", (*repl).swap},
		"fix":    {"AXIS INDEX", "set the index of a fixed axis", (*repl).fixAxis},
		"show":   {"", "print the window of the current view", (*repl).show},
		"export": {"FILE", "export the window of the current view as CSV", (*repl).export},
		"rm":     {"PATH", "remove the data at PATH", (*repl).rm},
		"quit":   {"", "end the session", (*repl).quit},
		"exit":   {"", "end the session", (*repl).quit},
	}
}

func (a *app) replCmd() *cobra.Command {
	var demo bool
	cmd := &cobra.Command{
		Use:   "repl [FILE...]",
		Short: "Browse data interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.newRepl()
			if err != nil {
				return err
			}
			defer r.close()
			if demo {
				if err := r.demo(nil); err != nil {
					return err
				}
			}
			if len(args) > 0 {
				if err := r.open(args); err != nil {
					return err
				}
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return r.run(ctx)
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "load the demo data")
	return cmd
}

// repl is an interactive session on a browser.
type repl struct {
	*app
	br   *browser.Browser
	view int

	// watcher is nil unless files are watched.
	watcher *watch.Watcher
}

func (a *app) newRepl() (*repl, error) {
	r := &repl{app: a}
	if err := a.ensureGroup(a.cfg.Location); err != nil {
		return nil, err
	}
	r.br = browser.New(a.cat, a.cfg.Views...)
	if a.cfg.Watch {
		w, err := watch.New(a.cat, a.cfg.Location)
		if err != nil {
			return nil, err
		}
		r.watcher = w
	}
	return r, nil
}

func (r *repl) close() {
	if r.watcher != nil {
		errors.Log(r.watcher.Close())
	}
}

// run reads and runs commands until the input ends or quit.
// File changes are applied between commands.
func (r *repl) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	var events <-chan fsnotify.Event
	var werrs <-chan error
	if r.watcher != nil {
		events, werrs = r.watcher.Events(), r.watcher.Errors()
	}
	r.prompt()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			err := r.exec(line)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				fmt.Fprintln(r.out, r.color("error: "+err.Error(), "1"))
			}
			r.prompt()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			r.reload(ev)
		case err, ok := <-werrs:
			if !ok {
				werrs = nil
				continue
			}
			fmt.Fprintln(r.out, r.color("watch: "+err.Error(), "1"))
		}
	}
}

// reload applies a file event, reporting the reloaded node.
func (r *repl) reload(ev fsnotify.Event) {
	ok, err := r.watcher.Apply(ev)
	if err != nil {
		fmt.Fprintln(r.out, r.color("reload: "+err.Error(), "1"))
	} else if ok {
		fmt.Fprintln(r.out, r.color("reloaded "+r.watcher.Path(ev.Name), "3"))
	}
}

func (r *repl) prompt() {
	fmt.Fprint(r.out, r.color("dslice> ", "6"))
}

// exec runs one command line.
func (r *repl) exec(line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	c, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q (try help)", args[0])
	}
	return c.run(r, args[1:])
}

func (r *repl) help(args []string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		c := commands[name]
		fmt.Fprintf(r.out, "  %-22s %s\n", strings.TrimSpace(name+" "+c.args), c.doc)
	}
	return nil
}

func (r *repl) ls(args []string) error {
	long := false
	if len(args) > 0 && args[0] == "-l" {
		long, args = true, args[1:]
	}
	path := "/"
	if len(args) > 0 {
		path = args[0]
	}
	ls, err := r.cat.List(path, long, true)
	if err != nil {
		return err
	}
	fmt.Fprint(r.out, ls)
	return nil
}

func (r *repl) open(args []string) error {
	if len(args) == 0 {
		return errors.New("open: no files")
	}
	for _, fn := range args {
		if r.watcher == nil {
			if _, err := r.load(fn); err != nil {
				return err
			}
			continue
		}
		if err := r.watcher.Add(fn); err != nil {
			return err
		}
		if nd, err := r.cat.Node(r.watcher.Path(fn)); err == nil {
			r.applyPrecision(nd.Store())
		}
	}
	return nil
}

func (r *repl) demo(args []string) error {
	seed := uint64(1)
	if len(args) > 0 {
		s, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}
		seed = s
	}
	_, err := r.app.demo(seed)
	return err
}

func (r *repl) selectPath(args []string) error {
	if len(args) != 1 {
		return errors.New("select: need one path")
	}
	if err := r.br.Select(args[0]); err != nil {
		return err
	}
	return r.show(nil)
}

func (r *repl) setView(args []string) error {
	n, err := intArgs(args, 1)
	if err != nil {
		return err
	}
	if r.br.View(n[0]) == nil {
		return fmt.Errorf("view: no view %d", n[0])
	}
	r.view = n[0]
	return nil
}

// current returns the current view.
func (r *repl) current() *browser.View {
	return r.br.View(r.view)
}

// changed reports a window change.
func (r *repl) changed(ch slice.Change) error {
	fmt.Fprintln(r.out, ch)
	return nil
}

func (r *repl) setX(args []string) error {
	n, err := intArgs(args, 1)
	if err != nil {
		return err
	}
	return r.changed(r.current().Selector.SetX(n[0]))
}

func (r *repl) setY(args []string) error {
	n, err := intArgs(args, 1)
	if err != nil {
		return err
	}
	return r.changed(r.current().Selector.SetY(n[0]))
}

func (r *repl) swap(args []string) error {
	return r.changed(r.current().Selector.Exchange())
}

func (r *repl) fixAxis(args []string) error {
	n, err := intArgs(args, 2)
	if err != nil {
		return err
	}
	return r.changed(r.current().Selector.SetIndex(n[0], n[1]))
}

func (r *repl) show(args []string) error {
	v := r.current()
	sl := v.Slice()
	if sl.IsEmpty() {
		fmt.Fprintln(r.out, "(empty)")
		return nil
	}
	fmt.Fprintf(r.out, "%s: ", v.Name)
	r.describe(sl)
	for _, s := range v.Selector.Sliders() {
		fmt.Fprintf(r.out, "  %s = %s\n", s.Label, s.Text())
	}
	return export.WriteCSV(r.out, sl)
}

func (r *repl) export(args []string) error {
	if len(args) != 1 {
		return errors.New("export: need one file name")
	}
	return r.br.ExportCSV(r.view, args[0])
}

func (r *repl) rm(args []string) error {
	if len(args) != 1 {
		return errors.New("rm: need one path")
	}
	return r.br.Clear(args[0])
}

func (r *repl) quit(args []string) error {
	return errQuit
}

// intArgs parses exactly n integer arguments.
func intArgs(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("need %d numbers", n)
	}
	vals := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
