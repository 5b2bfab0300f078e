package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/vellumjson/vellum/encode"
	"github.com/vellumjson/vellum/parse"
)

// MainConfig holds the flags shared by every subcommand. Struct tags drive
// cli.StructOpts' reflection-based flag registration.
type MainConfig struct {
	Pretty bool `cli:"name=p aliases=pretty desc='pretty-print output with indentation'"`
	Indent int  `cli:"name=indent desc='indent width used with -p' default=2"`
	Color  bool `cli:"name=color desc='force colorized output'"`
	NoColor bool `cli:"name=nocolor desc='disable colorized output even on a tty'"`
	MaxDepth int `cli:"name=maxdepth desc='reject input nested deeper than this (0 = unlimited)'"`

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	var opts []parse.Option
	if cfg.MaxDepth > 0 {
		opts = append(opts, parse.MaxDepth(cfg.MaxDepth))
	}
	return opts
}

func (cfg *MainConfig) encodeOpts(out *os.File) []encode.Option {
	opts := []encode.Option{encode.Pretty(cfg.Pretty)}
	if cfg.Indent > 0 {
		opts = append(opts, encode.Indent(cfg.Indent))
	}
	switch {
	case cfg.NoColor:
	case cfg.Color:
		opts = append(opts, encode.WithColors(encode.NewColors()))
	case isatty.IsTerminal(out.Fd()):
		opts = append(opts, encode.WithColors(encode.NewColors()))
	}
	return opts
}
