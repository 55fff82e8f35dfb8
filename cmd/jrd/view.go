package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	jsonref "github.com/jacksmith15/json-ref-dict"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: view takes exactly one location", cli.ErrUsage)
	}
	v, err := jsonref.Open(args[0])
	if err != nil {
		return err
	}
	var colors *Colors
	if cfg.colorize(cc.Out) {
		colors = NewColors()
	}
	return fprintNode(cc.Out, v.Raw(), colors)
}
