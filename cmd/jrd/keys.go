package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	jsonref "github.com/jacksmith15/json-ref-dict"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: keys takes exactly one location", cli.ErrUsage)
	}
	v, err := jsonref.Open(args[0])
	if err != nil {
		return err
	}
	switch t := v.(type) {
	case *jsonref.Map:
		for _, k := range t.Keys() {
			if _, err := fmt.Fprintln(cc.Out, k); err != nil {
				return err
			}
		}
	case *jsonref.List:
		for i := range t.Len() {
			if _, err := fmt.Fprintln(cc.Out, i); err != nil {
				return err
			}
		}
	}
	return nil
}
