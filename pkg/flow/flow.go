// Package flow implements the engine's non-local control transfer: routine
// exits that unwind to the nearest invocation boundary, and termination
// signals that unwind past every routine to the game loop. The two signal
// kinds are distinct types so a routine boundary can never swallow a
// termination by accident.
package flow

import "reflect"

// Kind classifies how a routine invocation ended.
type Kind int

const (
	KindFalse Kind = iota // "return false" exit
	KindTrue              // "return true" exit, or normal fall-off
	KindFatal             // "fatal return" exit
	KindValue             // "return explicit value" exit
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindFalse:
		return "false"
	case KindTrue:
		return "true"
	case KindFatal:
		return "fatal"
	case KindValue:
		return "value"
	default:
		return "unknown"
	}
}

// Result is the outcome of one routine invocation.
type Result struct {
	Kind  Kind
	Value any // set only for KindValue
}

// Bool collapses the result to the truthiness game code branches on.
func (r Result) Bool() bool {
	switch r.Kind {
	case KindFalse:
		return false
	case KindValue:
		return r.Value != nil && r.Value != false
	default:
		return true
	}
}

// exit is the routine-level signal. It is unexported: the only way to raise
// one is through RTrue/RFalse/RFatal/Return, and the only place it is caught
// is Invoke.
type exit struct {
	result Result
}

// RTrue unwinds to the nearest routine boundary with a true result.
func RTrue() {
	panic(exit{Result{Kind: KindTrue}})
}

// RFalse unwinds to the nearest routine boundary with a false result.
func RFalse() {
	panic(exit{Result{Kind: KindFalse}})
}

// RFatal unwinds to the nearest routine boundary with the fatal result,
// the third signaling value for unusual outcomes.
func RFatal() {
	panic(exit{Result{Kind: KindFatal}})
}

// Return unwinds to the nearest routine boundary with an explicit value.
func Return(v any) {
	panic(exit{Result{Kind: KindValue, Value: v}})
}

// Invoke runs fn under a routine boundary. An exit raised anywhere inside
// fn, however deeply nested, lands here. A fall-off-the-end return counts
// as true. Termination signals and genuine panics pass through untouched.
func Invoke(fn func()) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			if sig, ok := r.(exit); ok {
				res = sig.result
				return
			}
			panic(r)
		}
	}()
	fn()
	return Result{Kind: KindTrue}
}

// Termination reasons.
const (
	ReasonDied = "died"
	ReasonWon  = "won"
)

// Termination is the outer-level signal that ends a game session. It unwinds
// past all active routine invocations to the game-loop boundary.
type Termination struct {
	Reason  string
	Message string
}

// Terminate raises a termination signal.
func Terminate(reason, message string) {
	panic(Termination{Reason: reason, Message: message})
}

// CaptureTermination runs fn under the game-loop boundary, converting a
// termination signal into a value. It returns nil when fn completes without
// terminating. Routine exits raised with no routine boundary in between are
// authoring bugs and propagate as panics.
func CaptureTermination(fn func()) (term *Termination) {
	defer func() {
		if r := recover(); r != nil {
			if t, ok := r.(Termination); ok {
				term = &t
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}

// Clause pairs a condition with its body for Cond.
type Clause struct {
	When func() bool
	Then func()
}

// Else is a clause that always fires, for use as the last argument to Cond.
func Else(then func()) Clause {
	return Clause{When: func() bool { return true }, Then: then}
}

// Cond evaluates clauses in order and runs the body of the first whose
// condition holds. It reports whether any clause fired.
func Cond(clauses ...Clause) bool {
	for _, c := range clauses {
		if c.When() {
			if c.Then != nil {
				c.Then()
			}
			return true
		}
	}
	return false
}

// EqualAll reports whether every value is structurally equal to the first.
// Fewer than two values compare vacuously true.
func EqualAll(vals ...any) bool {
	if len(vals) < 2 {
		return true
	}
	for _, v := range vals[1:] {
		if !reflect.DeepEqual(vals[0], v) {
			return false
		}
	}
	return true
}
