package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/sandrolain/golists/pkg/evaluator"
	"github.com/sandrolain/golists/pkg/render"
	"github.com/sandrolain/golists/pkg/types"
)

type MainConfig struct {
	B           bool `cli:"name=b desc='render lists with brackets'"`
	Color       bool `cli:"name=color desc='render with color'"`
	NoBroadcast bool `cli:"name=nobroadcast desc='disable elementwise list arithmetic'"`
	MaxDepth    int  `cli:"name=depth desc='max call and list nesting'"`
	Debug       bool `cli:"name=debug desc='log evaluation steps to stderr'"`

	Timeout time.Duration

	Main *cli.Command
}

func (cfg *MainConfig) timeoutOpt(_ *cli.Context, a string) (any, error) {
	d, err := time.ParseDuration(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Timeout = d
	return d, nil
}

func (cfg *MainConfig) evalOpts() []evaluator.EvalOption {
	res := []evaluator.EvalOption{
		evaluator.WithBroadcasting(!cfg.NoBroadcast),
		evaluator.WithDebug(cfg.Debug),
		evaluator.WithLogger(newLogger(cfg.Debug)),
	}
	if cfg.MaxDepth > 0 {
		res = append(res, evaluator.WithMaxDepth(cfg.MaxDepth))
	}
	if cfg.Timeout > 0 {
		res = append(res, evaluator.WithTimeout(cfg.Timeout))
	}
	return res
}

func (cfg *MainConfig) evaluator(extra ...evaluator.EvalOption) *evaluator.Evaluator {
	return evaluator.New(append(cfg.evalOpts(), extra...)...)
}

// colors reports whether output to w is colored: -color wins when given,
// otherwise terminals get color.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) renderOpts(w io.Writer) []render.Option {
	var res []render.Option
	if cfg.B {
		res = append(res, render.WithBrackets("[", "]"))
	}
	if cfg.colors(w) {
		res = append(res, render.WithColors(render.NewColors()))
	}
	return res
}

func (cfg *MainConfig) renderer(w io.Writer) *render.Renderer {
	return render.New(cfg.renderOpts(w)...)
}

type EvalConfig struct {
	*MainConfig
	Env map[string]*types.Node

	Eval *cli.Command
}

type InspectConfig struct {
	*MainConfig
	Prefix string `cli:"name=p aliases=prefix desc='opening bracket'"`
	Suffix string `cli:"name=s aliases=suffix desc='closing bracket'"`

	Inspect *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Verbose bool `cli:"name=v desc='report passing scenarios too'"`

	Check *cli.Command
}

type FuncsConfig struct {
	*MainConfig

	Funcs *cli.Command
}

type ReplConfig struct {
	*MainConfig
	History string `cli:"name=history desc='history file'"`

	Repl *cli.Command
}
