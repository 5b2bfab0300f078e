package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/vellumjson/vellum/encode"
	"github.com/vellumjson/vellum/parse"
)

type FmtConfig struct {
	*MainConfig
}

func runFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, path := range args {
		if err := fmtOne(cfg, cc, path); err != nil {
			return err
		}
	}
	return nil
}

func fmtOne(cfg *FmtConfig, cc *cli.Context, path string) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}
	doc, err := parse.Parse(data, cfg.parseOpts()...)
	if err != nil {
		theLog.Error("parse failed", "file", path, "err", err)
		return fmt.Errorf("%w: %s", cli.ErrUsage, err)
	}
	defer doc.Close()

	out := cc.Out
	if out == nil {
		out = os.Stdout
	}
	f, _ := out.(*os.File)
	if f == nil {
		f = os.Stdout
	}
	if err := encode.Encode(doc.Root(), out, cfg.encodeOpts(f)...); err != nil {
		return err
	}
	_, err = io.WriteString(out, "\n")
	return err
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
