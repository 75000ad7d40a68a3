package lisp

import (
	"fmt"
	"strings"

	"github.com/steelseries/golisp"

	"zile/internal/logger"
)

// Runtime owns the NIL and T sentinels and the frame forms are evaluated in.
// Init and Finalise bracket its use; both are called once per session.
type Runtime struct {
	Nil *golisp.Data
	T   *golisp.Data
	env *golisp.SymbolTableFrame
}

// NewRuntime returns an uninitialised runtime.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// Init creates the sentinels and binds them in a fresh frame below golisp's global one.
func (r *Runtime) Init() error {
	r.Nil = golisp.Intern("NIL")
	r.T = golisp.Intern("T")
	r.env = golisp.NewSymbolTableFrameBelow(golisp.Global, "zile")

	if _, err := r.env.BindTo(r.Nil, golisp.EmptyCons()); err != nil {
		return fmt.Errorf("failed to bind NIL: %w", err)
	}
	if _, err := r.env.BindTo(r.T, golisp.BooleanWithValue(true)); err != nil {
		return fmt.Errorf("failed to bind T: %w", err)
	}

	logger.Debug("lisp runtime initialised")
	return nil
}

// Finalise releases the sentinels and the evaluation frame.
func (r *Runtime) Finalise() {
	r.Nil = nil
	r.T = nil
	r.env = nil
	logger.Debug("lisp runtime finalised")
}

// Initialized reports whether Init has run without a matching Finalise.
func (r *Runtime) Initialized() bool {
	return r.env != nil
}

// Eval evaluates one form in the runtime's frame.
func (r *Runtime) Eval(form *golisp.Data) (result *golisp.Data, err error) {
	if r.env == nil {
		return nil, fmt.Errorf("lisp runtime not initialised")
	}
	defer func() {
		if p := recover(); p != nil {
			result, err = nil, fmt.Errorf("evaluation panicked: %v", p)
		}
	}()
	return golisp.Eval(form, r.env)
}

// DumpEval evaluates every top-level form and renders each with its result.
func (r *Runtime) DumpEval(list *golisp.Data) string {
	var sb strings.Builder
	for _, form := range Forms(list) {
		sb.WriteString(Print(form))
		result, err := r.Eval(form)
		if err != nil {
			fmt.Fprintf(&sb, "\n => error: %v\n", err)
			continue
		}
		fmt.Fprintf(&sb, "\n => %s\n", Print(result))
	}
	return sb.String()
}

// Dump concatenates the evaluation trace of list with a variable listing.
func (r *Runtime) Dump(list *golisp.Data, variables string) string {
	var sb strings.Builder
	sb.WriteString("Eval results:\n")
	sb.WriteString(r.DumpEval(list))
	sb.WriteString("\n\nVariables:\n")
	sb.WriteString(variables)
	return sb.String()
}
