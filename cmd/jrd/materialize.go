package main

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	jsonref "github.com/jacksmith15/json-ref-dict"
	"github.com/jacksmith15/json-ref-dict/uri"
)

func materialize(cfg *MaterializeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Materialize.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: materialize takes exactly one location", cli.ErrUsage)
	}
	if cfg.Include != "" && cfg.Exclude != "" {
		return fmt.Errorf("%w: -include and -exclude are mutually exclusive", cli.ErrUsage)
	}
	var opts []jsonref.MaterializeOption
	if cfg.Include != "" {
		opts = append(opts, jsonref.WithIncludeKeys(splitKeys(cfg.Include)...))
	}
	if cfg.Exclude != "" {
		opts = append(opts, jsonref.WithExcludeKeys(splitKeys(cfg.Exclude)...))
	}
	var exprErr error
	if cfg.Map != "" {
		prog, err := expr.Compile(cfg.Map, expr.AllowUndefinedVariables())
		if err != nil {
			return fmt.Errorf("%w: bad -map expression: %v", cli.ErrUsage, err)
		}
		opts = append(opts, jsonref.WithValueMap(func(v any) any {
			out, err := expr.Run(prog, map[string]any{"value": v})
			if err != nil {
				if exprErr == nil {
					exprErr = err
				}
				return v
			}
			return out
		}))
	}
	if cfg.Label {
		opts = append(opts, jsonref.WithContextLabeller(func(u uri.URI) (string, any) {
			return "$src", u.String()
		}))
	}
	v, err := jsonref.Open(args[0])
	if err != nil {
		return err
	}
	res, err := jsonref.Materialize(v, opts...)
	if err != nil {
		return err
	}
	if exprErr != nil {
		return fmt.Errorf("-map expression failed: %w", exprErr)
	}
	return printJSON(cc.Out, res)
}

func splitKeys(s string) []string {
	var res []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}
