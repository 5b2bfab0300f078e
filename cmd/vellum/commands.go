package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "vellum").
		WithSynopsis("vellum [opts] command [opts] [files...]").
		WithDescription("vellum parses and re-serializes JSON documents through an arena-backed value tree.").
		WithOpts(opts...).
		WithSubs(
			FmtCommand(cfg),
			ValidateCommand(cfg),
			GetCommand(cfg),
		)
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	return cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [files...]").
		WithDescription("re-serialize JSON documents, optionally pretty-printed or colorized").
		WithRun(func(cc *cli.Context, args []string) error {
			return runFmt(cfg, cc, args)
		})
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	return cli.NewCommand("validate").
		WithAliases("v", "check").
		WithSynopsis("validate [files...]").
		WithDescription("parse JSON documents and report the first error, if any").
		WithRun(func(cc *cli.Context, args []string) error {
			return runValidate(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <dotted.path> [files...]").
		WithDescription("extract a value at a dotted field/index path and print it as JSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return runGet(cfg, cc, args)
		})
}
