package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	jsonref "github.com/jacksmith15/json-ref-dict"
	"github.com/jacksmith15/json-ref-dict/ir"
	"github.com/jacksmith15/json-ref-dict/uri"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: get takes exactly one location", cli.ErrUsage)
	}
	sess := jsonref.NewSession()
	v, err := sess.Open(args[0])
	if err != nil {
		if !errors.Is(err, jsonref.ErrInvalidRoot) {
			return err
		}
		// scalar location: print the resolved leaf
		u, perr := uri.Parse(args[0])
		if perr != nil {
			return perr
		}
		node, _, rerr := sess.ResolveURI(u)
		if rerr != nil {
			return rerr
		}
		return printJSON(cc.Out, ir.ToGo(node))
	}
	res, err := jsonref.Materialize(v)
	if err != nil {
		return err
	}
	return printJSON(cc.Out, res)
}

func printJSON(w io.Writer, v any) error {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode result (structure may be cyclic): %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", d)
	return err
}
