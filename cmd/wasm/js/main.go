//go:build js && wasm

// Command golists-wasm-js is the WebAssembly entrypoint for browser and Node.js.
//
// It exposes a global `golists` object with the following API:
//
//	golists.version()                   → string
//	golists.eval(expr, bindingsJSON)    → resultJSON  (throws on error)
//	golists.css(expr, bindingsJSON)     → string      (throws on error)
//	golists.compile(expr)               → { eval(bindingsJSON) → resultJSON }  (throws on error)
//
// bindingsJSON is a JSON object mapping names to values. Numbers become
// unitless dimensions, strings such as "10px" become dimensions, arrays
// become comma lists and objects become detached rulesets.
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o golists.wasm ./cmd/wasm/js/
//
// Usage in Node.js:
//
//	const gl = await load()
//	const result = gl.eval('at(xs, -1)', JSON.stringify({xs: [1, 2, 3]}))
//	console.log(JSON.parse(result)) // 3
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/sandrolain/golists"
	"github.com/sandrolain/golists/pkg/convert"
	"github.com/sandrolain/golists/pkg/evaluator"
	"github.com/sandrolain/golists/pkg/types"
)

// jsThrow panics with a JS Error so the caller receives a thrown exception.
func jsThrow(msg string) {
	js.Global().Get("Error").New(msg)
	panic(msg)
}

func bindings(fn string, args []js.Value, i int) map[string]*types.Node {
	if len(args) <= i || args[i].IsUndefined() || args[i].IsNull() {
		return nil
	}
	var vars map[string]any
	if err := json.Unmarshal([]byte(args[i].String()), &vars); err != nil {
		jsThrow(fmt.Sprintf("%s: invalid bindings JSON: %v", fn, err))
	}
	b, err := convert.Bindings(vars)
	if err != nil {
		jsThrow(fmt.Sprintf("%s: %v", fn, err))
	}
	return b
}

func marshal(fn string, n *types.Node) string {
	out, err := json.Marshal(convert.ToAny(n))
	if err != nil {
		jsThrow(fmt.Sprintf("%s: marshal result: %v", fn, err))
	}
	return string(out)
}

// jsEval implements golists.eval(expr, bindingsJSON) → resultJSON.
func jsEval(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		jsThrow("golists.eval requires an expression")
	}
	result, err := golists.EvalWithContext(context.Background(), args[0].String(), bindings("golists.eval", args, 1))
	if err != nil {
		jsThrow(fmt.Sprintf("golists.eval: %v", err))
	}
	return marshal("golists.eval", result)
}

// jsCSS implements golists.css(expr, bindingsJSON) → string.
func jsCSS(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		jsThrow("golists.css requires an expression")
	}
	result, err := golists.EvalWithContext(context.Background(), args[0].String(), bindings("golists.css", args, 1))
	if err != nil {
		jsThrow(fmt.Sprintf("golists.css: %v", err))
	}
	return result.CSS()
}

// jsCompile implements golists.compile(expr) → { eval(bindingsJSON) → resultJSON }.
func jsCompile(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		jsThrow("golists.compile requires an expression")
	}
	expr, err := golists.Compile(args[0].String())
	if err != nil {
		jsThrow(fmt.Sprintf("golists.compile: %v", err))
	}
	ev := evaluator.New()

	evalFn := js.FuncOf(func(_ js.Value, innerArgs []js.Value) any {
		r, e := ev.EvalWithBindings(context.Background(), expr, bindings("compiled.eval", innerArgs, 0))
		if e != nil {
			jsThrow(fmt.Sprintf("compiled.eval: %v", e))
		}
		return marshal("compiled.eval", r)
	})
	return js.ValueOf(map[string]any{"eval": evalFn})
}

func main() {
	api := map[string]any{
		"eval":    js.FuncOf(jsEval),
		"css":     js.FuncOf(jsCSS),
		"compile": js.FuncOf(jsCompile),
		"version": js.FuncOf(func(_ js.Value, _ []js.Value) any {
			return golists.Version()
		}),
	}
	js.Global().Set("golists", js.ValueOf(api))

	select {}
}
