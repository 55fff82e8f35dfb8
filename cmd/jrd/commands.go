package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jrd").
		WithSynopsis("jrd [opts] command [opts]").
		WithDescription("jrd navigates linked JSON/YAML documents, resolving $ref pointers.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jrdMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			ViewCommand(cfg),
			KeysCommand(cfg),
			MaterializeCommand(cfg),
			DiffCommand(cfg))
}

func jrdMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <location>").
		WithDescription("resolve a location and print its value").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view <location>").
		WithDescription("print the raw structure at a location, references literal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("keys").
		WithAliases("k").
		WithSynopsis("keys <location>").
		WithDescription("list the keys or indices at a location without resolving children").
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
	cfg.Keys = cmd
	return cmd
}

func MaterializeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MaterializeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("materialize").
		WithAliases("m", "mat").
		WithSynopsis("materialize [-include keys|-exclude keys] [-map expr] [-label] <location>").
		WithDescription("eagerly resolve every reference under a location and print the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return materialize(cfg, cc, args)
		})
	cfg.Materialize = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <location>").
		WithDescription("diff the raw structure at a location against its resolved form").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
