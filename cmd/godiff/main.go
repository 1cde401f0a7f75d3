// Copyright 2026 The godiff Authors
// This file is part of godiff.
//
// godiff is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// godiff is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with godiff. If not, see <http://www.gnu.org/licenses/>.

// Command godiff memory-maps two files, diffs them with the default
// myers->patience->myers_divide composition, and prints the result in one
// of several classic diff(1) formats.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/gofrs/flock"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	diff "github.com/ethdiff/godiff"
	"github.com/ethdiff/godiff/internal/format"
	"github.com/ethdiff/godiff/internal/metrics"
	"github.com/ethdiff/godiff/internal/mmapfile"
	"github.com/ethdiff/godiff/internal/xlog"
)

func main() {
	app := &cli.App{
		Name:      "godiff",
		Usage:     "compute a minimal-edit, line-oriented diff between two files",
		ArgsUsage: "left right",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "u", Usage: "unified output, default 3 lines of context"},
			&cli.IntFlag{Name: "U", Usage: "unified output with N lines of context", Value: -1},
			&cli.BoolFlag{Name: "c", Usage: "context output, default 3 lines of context"},
			&cli.IntFlag{Name: "C", Usage: "context output with N lines of context", Value: -1},
			&cli.BoolFlag{Name: "e", Usage: "ed-style output script"},
			&cli.BoolFlag{Name: "f", Usage: "forward ed-style output script"},
			&cli.BoolFlag{Name: "stat", Usage: "print an insertion/deletion summary instead of the diff"},
			&cli.BoolFlag{Name: "watch", Usage: "re-run whenever either input file changes"},
			&cli.StringFlag{Name: "output", Usage: "write the diff to this path instead of stdout"},
			&cli.StringFlag{Name: "config", Usage: "path to a TOML config file overriding the defaults below"},
			&cli.StringFlag{Name: "metrics-addr", Usage: "serve Prometheus metrics on this address while godiff runs; without --watch it exits after one run"},
			&cli.BoolFlag{Name: "color", Usage: "force colorized output even when stdout is not a terminal"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		xlog.Error("godiff: fatal", "err", err)
		fmt.Fprintln(os.Stderr, "godiff:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("expected exactly two file arguments", 2)
	}
	leftPath, rightPath := c.Args().Get(0), c.Args().Get(1)

	cfg, err := loadCLIConfig(c)
	if err != nil {
		return err
	}

	if addr := c.String("metrics-addr"); addr != "" {
		go serveMetrics(addr)
	}

	runOnce := func() error {
		return diffOnce(leftPath, rightPath, cfg)
	}

	if !c.Bool("watch") {
		return runOnce()
	}
	return watchAndRun(leftPath, rightPath, runOnce)
}

// cliConfig is the resolved set of output options, merged from an optional
// TOML file (see config.go) and command-line flags, flags taking
// precedence.
type cliConfig struct {
	kind       format.Kind
	context    int
	stat       bool
	output     string
	forceColor bool
}

func diffOnce(leftPath, rightPath string, cfg cliConfig) error {
	lf, err := mmapfile.Open(leftPath)
	if err != nil {
		return fmt.Errorf("godiff: open %s: %w", leftPath, err)
	}
	defer lf.Close()
	rf, err := mmapfile.Open(rightPath)
	if err != nil {
		return fmt.Errorf("godiff: open %s: %w", rightPath, err)
	}
	defer rf.Close()

	result, err := diff.Run(diff.DefaultConfig(), lf.Bytes(), rf.Bytes())
	if err != nil {
		return fmt.Errorf("godiff: diff: %w", err)
	}

	out, closeOut, err := openOutput(cfg.output)
	if err != nil {
		return err
	}
	defer closeOut()

	color := cfg.forceColor
	if f, ok := out.(*os.File); ok && !cfg.forceColor {
		color = format.IsColorTerminal(f)
	}
	if color {
		if f, ok := out.(*os.File); ok {
			out = format.Colorable(f)
		}
	}

	if cfg.stat {
		return format.Stat(result, out, leftPath, rightPath)
	}
	return format.Format(cfg.kind, result, out, cfg.context, color)
}

// openOutput returns stdout, or a flock-guarded file at path. The lock is
// advisory and protects only against two godiff processes racing on the
// same output path; it has nothing to do with the core engine's
// concurrency model.
func openOutput(path string) (out io.Writer, closeFn func(), err error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, nil, fmt.Errorf("godiff: lock %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		lock.Unlock()
		return nil, nil, fmt.Errorf("godiff: create %s: %w", path, err)
	}
	return f, func() {
		f.Close()
		lock.Unlock()
	}, nil
}

func watchAndRun(leftPath, rightPath string, runOnce func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("godiff: watch: %w", err)
	}
	defer watcher.Close()
	for _, p := range []string{leftPath, rightPath} {
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("godiff: watch %s: %w", p, err)
		}
	}

	if err := runOnce(); err != nil {
		xlog.Error("godiff: run failed", "err", err)
	}
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := runOnce(); err != nil {
				xlog.Error("godiff: run failed", "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			xlog.Error("godiff: watch error", "err", err)
		}
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		xlog.Error("godiff: metrics server stopped", "err", err)
	}
}
