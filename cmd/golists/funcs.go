package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func funcs(cfg *FuncsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Funcs.Parse(cc, args); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "available functions:\n")
	for _, name := range cfg.evaluator().Functions() {
		fmt.Fprintf(cc.Out, "\t- %s\n", name)
	}
	return nil
}
