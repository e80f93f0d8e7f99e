//go:build wasip1

// Command golists-wasm-wasi is the WASI (wasip1) entrypoint for use from any
// language that supports the WebAssembly System Interface.
//
// Protocol: single JSON object on stdin → single JSON object on stdout.
//
//	stdin:  { "expr": "<expression>", "bindings": { "<name>": <any JSON value> } }
//	stdout: { "result": <any JSON value>, "css": "<text>" }    on success
//	        { "error": "<message>", "code": "<error code>" }   on failure (exit code 1)
//
// Build:
//
//	GOOS=wasip1 GOARCH=wasm go build -o golists.wasm ./cmd/wasm/wasi/
//
// Usage with wasmtime CLI:
//
//	echo '{"expr":"l(1, 2) * 10"}' | wasmtime golists.wasm
package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/sandrolain/golists"
	"github.com/sandrolain/golists/pkg/convert"
	"github.com/sandrolain/golists/pkg/types"
)

type request struct {
	Expr     string         `json:"expr"`
	Bindings map[string]any `json:"bindings"`
}

type response struct {
	Result any    `json:"result,omitempty"`
	CSS    string `json:"css,omitempty"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`
}

func writeResponse(r response, exitCode int) {
	_ = json.NewEncoder(os.Stdout).Encode(r)
	os.Exit(exitCode)
}

func fail(err error) {
	r := response{Error: err.Error()}
	var te *types.Error
	if errors.As(err, &te) {
		r.Code = string(te.Code)
	}
	writeResponse(r, 1)
}

func main() {
	var req request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeResponse(response{Error: "invalid request JSON: " + err.Error()}, 1)
	}
	b, err := convert.Bindings(req.Bindings)
	if err != nil {
		fail(err)
	}
	result, err := golists.EvalWithContext(context.Background(), req.Expr, b)
	if err != nil {
		fail(err)
	}
	writeResponse(response{Result: convert.ToAny(result), CSS: result.CSS()}, 0)
}
