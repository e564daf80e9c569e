// Copyright 2026 the urdujs authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package engine executes transpiled output as JavaScript, guarded by a
// denylist scan.
//
// The denylist is an advisory filter, not a sandbox: beyond refusing
// source that names a denylisted identifier, the executed code can do
// anything the embedded engine allows. True isolation (separate process,
// restricted globals) is a concern for the caller, not this package.
package engine

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/require"
	"github.com/rs/zerolog"
	"github.com/urdujs/urdujs/pkg/transpile"
	"github.com/urdujs/urdujs/pkg/vocab"
	"gitlab.com/tozd/go/errors"
)

// denylist holds the identifiers whose whole-word presence in generated
// output blocks execution. Fixed; not configurable at runtime.
var denylist = []string{
	"process",
	"require",
	"child_process",
	"fs",
	"Function",
	"eval",
}

// Denylist returns a copy of the denylisted identifiers.
func Denylist() []string {
	out := make([]string, len(denylist))
	copy(out, denylist)
	return out
}

// bindingName matches a valid JavaScript formal parameter name. Binding
// names are spliced into function source, so anything else is rejected
// before it can change the shape of the generated function.
var bindingName = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// 🔄 Binding is one named value injected as a local binding during
// execution. Bindings are ordered: names become the formal parameters of
// the generated function, in slice order.
type Binding struct {
	Name  string
	Value any
}

// BindMap converts a map into an ordered binding list, sorted by name so
// the generated parameter order is deterministic.
func BindMap(m map[string]any) []Binding {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	bindings := make([]Binding, 0, len(names))
	for _, name := range names {
		bindings = append(bindings, Binding{Name: name, Value: m[name]})
	}
	return bindings
}

// 🎯 Executor transpiles source text and runs the result as JavaScript.
type Executor struct {
	transpiler *transpile.Transpiler
	stdout     io.Writer
}

// Option configures an Executor.
type Option func(*Executor)

// WithConsoleOutput redirects the script's console methods to w. Without
// it, console output goes to the process's standard streams.
func WithConsoleOutput(w io.Writer) Option {
	return func(e *Executor) {
		e.stdout = w
	}
}

// 🏭 New creates an executor over the given transpiler.
func New(transpiler *transpile.Transpiler, opts ...Option) *Executor {
	e := &Executor{transpiler: transpiler}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// 📝 Execute transpiles input, scans the output against the denylist,
// and runs it as the body of a JavaScript function whose parameters are
// the binding names in order, called with the binding values in the same
// order. It returns the body's explicit return value exported to Go
// (nil for undefined).
//
// A denylist hit fails with *UnsafeTokenError before the engine sees the
// code. Errors raised by the body itself, including syntax errors in
// malformed output, propagate to the caller unwrapped.
func (e *Executor) Execute(ctx context.Context, input string, bindings []Binding) (any, error) {
	output := e.transpiler.Transpile(ctx, input)

	for _, name := range denylist {
		if vocab.ContainsWord(output, name) {
			zerolog.Ctx(ctx).Warn().Str("token", name).Msg("refused unsafe generated code")
			return nil, &UnsafeTokenError{Token: name}
		}
	}

	names := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !bindingName.MatchString(b.Name) {
			return nil, errors.Errorf("invalid binding name: %q", b.Name)
		}
		names = append(names, b.Name)
	}

	vm := goja.New()
	registry := require.NewRegistry()
	if e.stdout != nil {
		registry.RegisterNativeModule(console.ModuleName, console.RequireWithPrinter(writerPrinter{w: e.stdout}))
	}
	registry.Enable(vm)
	console.Enable(vm)

	src := fmt.Sprintf("(function(%s) {\n%s\n})", strings.Join(names, ", "), output)
	fnValue, err := vm.RunString(src)
	if err != nil {
		// Syntax errors in the generated text belong to the caller.
		return nil, err
	}

	fn, ok := goja.AssertFunction(fnValue)
	if !ok {
		return nil, errors.Errorf("generated source did not evaluate to a function")
	}

	args := make([]goja.Value, 0, len(bindings))
	for _, b := range bindings {
		args = append(args, vm.ToValue(b.Value))
	}

	result, err := fn(goja.Undefined(), args...)
	if err != nil {
		// Runtime errors from the body propagate unchanged.
		return nil, err
	}
	if result == nil || goja.IsUndefined(result) || goja.IsNull(result) {
		return nil, nil
	}
	return result.Export(), nil
}

// writerPrinter adapts an io.Writer to the console module's Printer.
type writerPrinter struct {
	w io.Writer
}

func (p writerPrinter) Log(msg string)   { fmt.Fprintln(p.w, msg) }
func (p writerPrinter) Warn(msg string)  { fmt.Fprintln(p.w, msg) }
func (p writerPrinter) Error(msg string) { fmt.Fprintln(p.w, msg) }
