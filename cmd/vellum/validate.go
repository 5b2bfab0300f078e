package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/vellumjson/vellum/parse"
)

type ValidateConfig struct {
	*MainConfig
}

func runValidate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, path := range args {
		data, err := readInput(path)
		if err != nil {
			return err
		}
		doc, err := parse.Parse(data, cfg.parseOpts()...)
		if err != nil {
			failed = true
			theLog.Error("invalid document", "file", path, "err", err)
			fmt.Fprintln(os.Stderr, color.RedString("FAIL"), path, err)
			continue
		}
		doc.Close()
		fmt.Fprintln(os.Stdout, color.GreenString("OK"), path)
	}
	if failed {
		return cli.ErrUsage
	}
	return nil
}
