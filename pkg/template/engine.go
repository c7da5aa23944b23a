// Package template substitutes {{variable}} placeholders in request text.
//
// A placeholder is resolved in this order:
//
//  1. a predefined variable such as {{$guid}} or {{$randomFullName}}
//  2. a user variable set with WithVariables
//
// Placeholders that resolve to nothing are left exactly as written, so
// {{$unknownThing}} passes through unchanged.
//
// # Functions
//
//   - {{upper(name)}} - Convert the resolved value to uppercase
//   - {{lower(name)}} - Convert the resolved value to lowercase
//   - {{default(name, "fallback")}} - Use fallback if name does not resolve
package template

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/getmockd/mockvars/pkg/logging"
)

// Resolver resolves a variable key. *vars.Resolver satisfies it.
type Resolver interface {
	Resolve(key string) (string, bool)
}

// Engine processes templates with variable substitution.
// It holds no mutable state and is safe for concurrent use when its
// Resolver is.
type Engine struct {
	resolver  Resolver
	variables map[string]string
	log       *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithVariables adds user variables. Predefined variables take precedence
// over user variables of the same name.
func WithVariables(vars map[string]string) Option {
	return func(e *Engine) {
		for k, v := range vars {
			e.variables[k] = v
		}
	}
}

// WithLogger sets the logger. Defaults to logging.Nop().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates a template engine over r. A nil r resolves only user
// variables.
func New(r Resolver, opts ...Option) *Engine {
	e := &Engine{
		resolver:  r,
		variables: make(map[string]string),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logging.Nop()
	}
	return e
}

// templateRegex matches {{expression}} patterns with optional whitespace.
var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+?)\s*\}\}`)

// funcCallPattern matches upper(value), lower(value) and default(value, fallback).
var funcCallPattern = regexp.MustCompile(`^(\w+)\((.+)\)$`)

// Process replaces every {{expression}} in tmpl with its value.
func (e *Engine) Process(tmpl string) string {
	return templateRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		inner := templateRegex.FindStringSubmatch(match)
		if len(inner) < 2 {
			return match
		}
		if val, ok := e.evaluate(strings.TrimSpace(inner[1])); ok {
			return val
		}
		e.log.Debug("unresolved placeholder left as is", "placeholder", match)
		return match
	})
}

// evaluate processes a single expression. The second result is false when
// the expression does not resolve.
func (e *Engine) evaluate(expr string) (string, bool) {
	if matches := funcCallPattern.FindStringSubmatch(expr); matches != nil {
		if val, handled := e.evaluateFunc(matches[1], matches[2]); handled {
			return val, true
		}
	}
	return e.lookup(expr)
}

func (e *Engine) evaluateFunc(name, argsStr string) (string, bool) {
	switch name {
	case "upper":
		if value, ok := e.lookup(strings.TrimSpace(argsStr)); ok {
			return strings.ToUpper(value), true
		}
		return "", false
	case "lower":
		if value, ok := e.lookup(strings.TrimSpace(argsStr)); ok {
			return strings.ToLower(value), true
		}
		return "", false
	case "default":
		args := splitFuncArgs(argsStr)
		if len(args) != 2 {
			return "", false
		}
		if value, ok := e.lookup(args[0]); ok && value != "" {
			return value, true
		}
		return parseStringArg(args[1]), true
	}
	return "", false
}

func (e *Engine) lookup(key string) (string, bool) {
	if e.resolver != nil {
		if val, ok := e.resolver.Resolve(key); ok {
			return val, true
		}
	}
	val, ok := e.variables[key]
	return val, ok
}

// ProcessInterface recursively processes all string values in data.
// Map keys and non-string values are returned unchanged.
func (e *Engine) ProcessInterface(data any) any {
	switch v := data.(type) {
	case string:
		return e.Process(v)
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, val := range v {
			result[key] = e.ProcessInterface(val)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, val := range v {
			result[i] = e.ProcessInterface(val)
		}
		return result
	default:
		return data
	}
}

// parseStringArg removes surrounding quotes from a string argument if present.
func parseStringArg(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// splitFuncArgs splits function arguments separated by commas,
// respecting quoted strings.
func splitFuncArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := byte(0)

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case inQuote:
			current.WriteByte(ch)
			if ch == quoteChar {
				inQuote = false
			}
		case ch == '"' || ch == '\'':
			inQuote = true
			quoteChar = ch
			current.WriteByte(ch)
		case ch == ',':
			args = append(args, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	if current.Len() > 0 {
		args = append(args, strings.TrimSpace(current.String()))
	}
	return args
}
