package main

import (
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

	return cli.NewCommandAt(&cfg.Main, "om").
		WithSynopsis("om [opts] command [opts]").
		WithDescription("om is a tool for working with OpenMath XML objects.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return omMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			WireCommand(cfg),
			ValueCommand(cfg))
}

func ViewCommand(cfg *MainConfig) *cli.Command {
	return cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view OpenMath objects indented, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func WireCommand(cfg *MainConfig) *cli.Command {
	return cli.NewCommand("wire").
		WithAliases("w").
		WithSynopsis("wire [files]").
		WithDescription("re-encode OpenMath objects in the compact wire form").
		WithRun(func(cc *cli.Context, args []string) error {
			return wire(cfg, cc, args)
		})
}

func ValueCommand(cfg *MainConfig) *cli.Command {
	return cli.NewCommand("value").
		WithAliases("val").
		WithSynopsis("value [files]").
		WithDescription("convert OpenMath objects to Go values").
		WithRun(func(cc *cli.Context, args []string) error {
			return value(cfg, cc, args)
		})
}
