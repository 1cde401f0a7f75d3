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

package main

import (
	"fmt"
	"os"

	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"

	"github.com/ethdiff/godiff/internal/format"
)

// fileConfig is the shape of the optional --config TOML file; any flag
// explicitly set on the command line overrides the corresponding field
// here.
type fileConfig struct {
	Context int  `toml:"context"`
	Stat    bool `toml:"stat"`
	Color   bool `toml:"color"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fc, fmt.Errorf("godiff: config: %w", err)
	}
	defer f.Close()
	if err := toml.NewDecoder(f).Decode(&fc); err != nil {
		return fc, fmt.Errorf("godiff: config: %w", err)
	}
	return fc, nil
}

func loadCLIConfig(c *cli.Context) (cliConfig, error) {
	fc, err := loadFileConfig(c.String("config"))
	if err != nil {
		return cliConfig{}, err
	}

	cfg := cliConfig{
		kind:       format.Plain,
		context:    3,
		stat:       fc.Stat,
		output:     c.String("output"),
		forceColor: fc.Color,
	}
	if fc.Context > 0 {
		cfg.context = fc.Context
	}

	switch {
	case c.Bool("e"):
		cfg.kind = format.Ed
	case c.Bool("f"):
		cfg.kind = format.ForwardEd
	case c.Bool("c") || c.Int("C") >= 0:
		cfg.kind = format.Context
		if n := c.Int("C"); n >= 0 {
			cfg.context = n
		}
	case c.Bool("u") || c.Int("U") >= 0:
		cfg.kind = format.Unified
		if n := c.Int("U"); n >= 0 {
			cfg.context = n
		}
	}

	if c.IsSet("stat") {
		cfg.stat = c.Bool("stat")
	}
	if c.IsSet("color") {
		cfg.forceColor = c.Bool("color")
	}
	return cfg, nil
}
