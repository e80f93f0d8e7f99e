package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sandrolain/golists/pkg/scenario"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no scenario files given", cli.ErrUsage)
	}
	ctx := context.Background()
	ev := cfg.evaluator()
	color := cfg.colors(cc.Out)
	total, failed := 0, 0
	for _, file := range args {
		scs, err := scenario.Load(file)
		if err != nil {
			return err
		}
		for i := range scs {
			total++
			res := scenario.Run(ctx, ev, &scs[i])
			if res.OK() {
				if cfg.Verbose {
					fmt.Fprintf(cc.Out, "ok   %s: %s\n", file, scs[i].Name)
				}
				continue
			}
			failed++
			fmt.Fprintf(cc.Out, "FAIL %s: %s\n\t%s\n\t%s\n", file, scs[i].Name, scs[i].Expr, failure(res, color))
		}
	}
	fmt.Fprintf(cc.Out, "%d scenarios, %d failed\n", total, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, total)
	}
	return nil
}

func failure(res *scenario.Result, color bool) string {
	sc := res.Scenario
	if !color || res.Got == nil || sc.CSS == nil || res.Err != nil {
		return res.Failure
	}
	return "css: " + scenario.PrettyDiff(*sc.CSS, res.Got.CSS())
}
