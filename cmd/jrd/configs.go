package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// colorize decides whether to color output for w: forced by -color,
// otherwise on when w is a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type MaterializeConfig struct {
	*MainConfig
	Include string `cli:"name=include desc='comma-separated keys to keep at every level'"`
	Exclude string `cli:"name=exclude desc='comma-separated keys to drop at every level'"`
	Map     string `cli:"name=map desc='expression applied to every scalar leaf (env: value)'"`
	Label   bool   `cli:"name=label desc='annotate each mapping with its source location'"`

	Materialize *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
