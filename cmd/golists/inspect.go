package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/sandrolain/golists/pkg/convert"
	"github.com/sandrolain/golists/pkg/lists"
)

func inspect(cfg *InspectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Inspect.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return inspectReader(cfg, cc.Out, cc.In)
	}
	for _, file := range args {
		if err := inspectFile(cfg, cc.Out, cc.In, file); err != nil {
			return err
		}
	}
	return nil
}

func inspectFile(cfg *InspectConfig, w io.Writer, stdin io.Reader, file string) error {
	if file == "-" {
		return inspectReader(cfg, w, stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	if err := inspectReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func inspectReader(cfg *InspectConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	for i, doc := range bytes.Split(in, []byte("\n---\n")) {
		var v any
		if err := yaml.UnmarshalWithOptions(doc, &v, yaml.UseOrderedMap()); err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		n, err := convert.FromAny(v)
		if err != nil {
			return fmt.Errorf("error converting document %d: %w", i, err)
		}
		if _, err := fmt.Fprintln(w, lists.Stringify(n, cfg.Prefix, cfg.Suffix)); err != nil {
			return fmt.Errorf("error writing document %d: %w", i, err)
		}
	}
	return nil
}
