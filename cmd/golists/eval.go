package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/sandrolain/golists/pkg/convert"
	"github.com/sandrolain/golists/pkg/evaluator"
	"github.com/sandrolain/golists/pkg/render"
	"github.com/sandrolain/golists/pkg/types"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	ctx := context.Background()
	ev := cfg.evaluator()
	r := cfg.renderer(cc.Out)
	if len(args) != 0 {
		for i, src := range args {
			if err := evalOne(ctx, ev, r, cc.Out, src, cfg.Env); err != nil {
				return fmt.Errorf("expression %d: %w", i+1, err)
			}
		}
		return nil
	}
	return evalLines(ctx, ev, r, cc.Out, cc.In, cfg.Env)
}

func evalLines(ctx context.Context, ev *evaluator.Evaluator, r *render.Renderer, w io.Writer, in io.Reader, env map[string]*types.Node) error {
	sc := bufio.NewScanner(in)
	n := 0
	for sc.Scan() {
		n++
		src := strings.TrimSpace(sc.Text())
		if src == "" || strings.HasPrefix(src, "#") {
			continue
		}
		if err := evalOne(ctx, ev, r, w, src, env); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	return nil
}

func evalOne(ctx context.Context, ev *evaluator.Evaluator, r *render.Renderer, w io.Writer, src string, env map[string]*types.Node) error {
	res, err := ev.EvalString(ctx, src, env)
	if err != nil {
		return err
	}
	if res == nil {
		_, err = fmt.Fprintln(w)
		return err
	}
	_, err = fmt.Fprintln(w, r.String(res))
	return err
}

func envFunc(env map[string]*types.Node, a string) error {
	name, n, err := convert.ParseBinding(a)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	env[name] = n
	return nil
}
