package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/peterh/liner"
	"github.com/scott-cotton/cli"

	"github.com/sandrolain/golists"
	"github.com/sandrolain/golists/pkg/convert"
	"github.com/sandrolain/golists/pkg/evaluator"
	"github.com/sandrolain/golists/pkg/render"
	"github.com/sandrolain/golists/pkg/types"
)

const prompt = "> "

func repl(cfg *ReplConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Repl.Parse(cc, args); err != nil {
		return err
	}
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	ev := cfg.evaluator(evaluator.WithCaching(true))
	s := &session{
		ev:  ev,
		r:   cfg.renderer(cc.Out),
		env: map[string]*types.Node{},
		out: cc.Out,
	}
	line.SetCompleter(s.complete)

	history := cfg.History
	if history == "" {
		history = filepath.Join(os.TempDir(), ".golists_history")
	}
	if f, err := os.Open(history); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(history); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintf(cc.Out, "golists %s, :help for commands, Ctrl+D to quit\n", golists.Version())
	for {
		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(cc.Out)
			return nil
		}
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		if s.line(input) {
			return nil
		}
	}
}

type session struct {
	ev  *evaluator.Evaluator
	r   *render.Renderer
	env map[string]*types.Node
	out io.Writer
}

// line handles one input line and reports whether the session should end.
func (s *session) line(input string) bool {
	if !strings.HasPrefix(input, ":") {
		s.eval(input)
		return false
	}
	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)
	switch cmd {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		fmt.Fprint(s.out, replHelp)
	case ":set":
		name, n, err := convert.ParseBinding(rest)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			break
		}
		s.env[name] = n
	case ":let":
		name, src, ok := strings.Cut(rest, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			fmt.Fprintln(s.out, "error: expected :let name = expr")
			break
		}
		res, err := s.ev.EvalString(context.Background(), strings.TrimSpace(src), s.env)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			break
		}
		if res == nil {
			res = types.Empty()
		}
		s.env[name] = res
	case ":unset":
		delete(s.env, rest)
	case ":vars":
		for _, name := range slices.Sorted(maps.Keys(s.env)) {
			fmt.Fprintf(s.out, "%s = %s\n", name, s.r.String(s.env[name]))
		}
	case ":funcs":
		fmt.Fprintln(s.out, strings.Join(s.ev.Functions(), " "))
	default:
		fmt.Fprintf(s.out, "unknown command %s\n", cmd)
	}
	return false
}

func (s *session) eval(src string) {
	res, err := s.ev.EvalString(context.Background(), src, s.env)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	if res == nil {
		fmt.Fprintln(s.out, "(none)")
		return
	}
	fmt.Fprintln(s.out, s.r.String(res))
}

// complete offers function and variable names for the identifier under
// the cursor at the end of the line.
func (s *session) complete(line string) []string {
	i := strings.LastIndexFunc(line, func(r rune) bool {
		return !(r == '_' || r == '-' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	head, word := line[:i+1], line[i+1:]
	if word == "" {
		return nil
	}
	var res []string
	for _, name := range s.ev.Functions() {
		name = strings.ReplaceAll(name, "-", "_")
		if strings.HasPrefix(name, word) {
			res = append(res, head+name+"(")
		}
	}
	for name := range s.env {
		if strings.HasPrefix(name, word) {
			res = append(res, head+name)
		}
	}
	slices.Sort(res)
	return res
}

const replHelp = `expressions are evaluated and printed; commands:
  :set name=yaml      bind name to a yaml value
  :let name = expr    bind name to the result of expr
  :unset name         remove a binding
  :vars               show bindings
  :funcs              list functions
  :quit               leave
`
