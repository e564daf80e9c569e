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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 ScriptStatus represents the outcome of processing one script
type ScriptStatus int

const (
	ScriptTranspiled ScriptStatus = iota
	ScriptUnchanged
	ScriptExecuted
	ScriptRefused
	ScriptError
)

// 🎯 ScriptOperation represents a script operation for logging
type ScriptOperation struct {
	Path         string       // Source file path (or "<stdin>")
	Status       ScriptStatus // Outcome
	Replacements int          // Number of token replacements made
	Err          error        // Failure, when Status is ScriptRefused or ScriptError
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 LogScript logs a script operation with a status-appropriate prefix
func (l *Logger) LogScript(op ScriptOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var printer *pterm.PrefixPrinter
	var action string
	switch op.Status {
	case ScriptTranspiled:
		action = "Transpiled"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "✨"})
	case ScriptUnchanged:
		action = "Unchanged"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "⏭️"})
	case ScriptExecuted:
		action = "Executed"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: "▶️"})
	case ScriptRefused:
		action = "Refused"
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: "🛑"})
	default:
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"})
	}

	msg := fmt.Sprintf("%s %s", action, op.Path)
	if op.Replacements > 0 {
		msg += fmt.Sprintf(" (%d replacements)", op.Replacements)
	}
	if op.Err != nil {
		msg += fmt.Sprintf(": %s", op.Err)
	}
	printer.WithWriter(l.console).Println(msg)

	event := l.zlog.Info()
	if op.Status == ScriptRefused || op.Status == ScriptError {
		event = l.zlog.Warn().Err(op.Err)
	}
	event.
		Str("script", op.Path).
		Str("status", action).
		Int("replacements", op.Replacements).
		Msg("script operation")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("urdujs")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}
