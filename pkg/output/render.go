// Package output renders mixed text/directive token streams to a sink.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/crystal-mush/gozif/pkg/world"
)

// Sink is the output capability the host hands the engine. Append-only.
type Sink interface {
	Write(text string)
}

// WriterSink adapts an io.Writer to a Sink.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Write(text string) {
	io.WriteString(s.W, text)
}

// Directive is a rendering instruction embedded in a token stream. Desc,
// Number and Char consume the following token as their operand.
type Directive int

const (
	Newline Directive = iota // emit one line break
	Desc                     // write the next token's object description
	Number                   // write the next token in decimal
	Char                     // write the next token as a single character
)

// String returns the directive's stream-facing name.
func (d Directive) String() string {
	switch d {
	case Newline:
		return "CR"
	case Desc:
		return "DESC"
	case Number:
		return "NUM"
	case Char:
		return "CHAR"
	default:
		return "DIRECTIVE"
	}
}

// MalformedStreamError reports a directive missing its operand. It marks a
// bug in game content, not the engine: rendering of the valid prefix has
// already happened, and the caller should report and continue.
type MalformedStreamError struct {
	Directive Directive
	Pos       int
}

func (e *MalformedStreamError) Error() string {
	return fmt.Sprintf("output: %s directive at token %d has no operand", e.Directive, e.Pos)
}

// Renderer writes token streams to a sink, resolving Desc directives against
// an object graph.
type Renderer struct {
	World *world.Store
	Sink  Sink
}

// Render processes tokens left to right in a single pass with one token of
// lookahead. Plain strings are written verbatim; unrecognized tokens fall
// back to their default printable representation. A trailing directive with
// no operand renders nothing and yields a MalformedStreamError.
func (r *Renderer) Render(tokens []any) error {
	for i := 0; i < len(tokens); i++ {
		switch tok := tokens[i].(type) {
		case Directive:
			if tok == Newline {
				r.Sink.Write("\n")
				continue
			}
			if i+1 >= len(tokens) {
				return &MalformedStreamError{Directive: tok, Pos: i}
			}
			i++
			r.directive(tok, tokens[i])
		case string:
			r.Sink.Write(tok)
		default:
			r.Sink.Write(printable(tok))
		}
	}
	return nil
}

func (r *Renderer) directive(d Directive, operand any) {
	switch d {
	case Desc:
		r.Sink.Write(r.describe(operand))
	case Number:
		r.Sink.Write(decimal(operand))
	case Char:
		r.Sink.Write(character(operand))
	}
}

// describe resolves an object description, falling back to the identity's
// printable name when the object is unknown or has no description.
func (r *Renderer) describe(operand any) string {
	id, ok := objID(operand)
	if !ok {
		return printable(operand)
	}
	if r.World != nil {
		if obj, ok := r.World.Get(id); ok {
			return obj.PrintedName()
		}
	}
	return string(id)
}

func objID(operand any) (world.ObjID, bool) {
	switch v := operand.(type) {
	case world.ObjID:
		return v, true
	case string:
		return world.ObjID(v), true
	default:
		return world.Nothing, false
	}
}

func decimal(operand any) string {
	switch v := operand.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatInt(int64(v), 10)
	default:
		return printable(v)
	}
}

func character(operand any) string {
	switch v := operand.(type) {
	case rune:
		return string(v)
	case byte:
		return string(rune(v))
	case int:
		return string(rune(v))
	case string:
		return v
	default:
		return printable(v)
	}
}

func printable(v any) string {
	return fmt.Sprint(v)
}
