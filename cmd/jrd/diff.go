package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	jsonref "github.com/jacksmith15/json-ref-dict"
)

// diff shows what reference resolution changes: the raw structure at a
// location against its fully resolved form.
func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: diff takes exactly one location", cli.ErrUsage)
	}
	v, err := jsonref.Open(args[0])
	if err != nil {
		return err
	}
	var raw bytes.Buffer
	if err := fprintNode(&raw, v.Raw(), nil); err != nil {
		return err
	}
	res, err := jsonref.Materialize(v)
	if err != nil {
		return err
	}
	resolved, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode resolved form (structure may be cyclic): %w", err)
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(raw.String(), string(resolved)+"\n", false)
	if cfg.colorize(cc.Out) {
		_, err = fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
		return err
	}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(cc.Out, "+%s", d.Text)
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(cc.Out, "-%s", d.Text)
		default:
			fmt.Fprint(cc.Out, d.Text)
		}
	}
	return nil
}
