package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/vellumjson/vellum/encode"
	"github.com/vellumjson/vellum/parse"
	"github.com/vellumjson/vellum/value"
)

type GetConfig struct {
	*MainConfig
}

func runGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a dotted path argument", cli.ErrUsage)
	}
	path := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, fpath := range files {
		data, err := readInput(fpath)
		if err != nil {
			return err
		}
		doc, err := parse.Parse(data, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("%w: %s", cli.ErrUsage, err)
		}
		v, err := lookup(doc.Root(), path)
		if err != nil {
			doc.Close()
			return err
		}
		if err := encode.Encode(v, os.Stdout, cfg.encodeOpts(os.Stdout)...); err != nil {
			doc.Close()
			return err
		}
		fmt.Fprintln(os.Stdout)
		doc.Close()
	}
	return nil
}

// lookup walks a dotted path of field names and numeric array indices,
// e.g. "items.3.name", against v.
func lookup(v *value.Value, path string) (*value.Value, error) {
	cur := v
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			continue
		}
		if idx, err := strconv.Atoi(seg); err == nil {
			next, err := cur.Index(idx)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", seg, err)
			}
			cur = next
			continue
		}
		next, err := cur.Field(seg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", seg, err)
		}
		cur = next
	}
	return cur, nil
}
