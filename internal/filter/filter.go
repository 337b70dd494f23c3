// Package filter compiles and evaluates object-selection expressions for
// the dump-phdrs command.
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprEnv defines the variables a filter expression may reference, used for
// type checking at compile time. One environment is built per object.
var exprEnv = map[string]interface{}{
	"name":   "",
	"path":   "",
	"addr":   uint64(0),
	"nphdrs": 0,
}

// Filter is a pre-compiled boolean selection expression.
type Filter struct {
	program *vm.Program
}

// Compile compiles an expression such as `name contains "libc"` or
// `nphdrs > 4`. The expression must produce a boolean.
func Compile(src string) (*Filter, error) {
	program, err := expr.Compile(src, expr.Env(exprEnv), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter expression %q: %w", src, err)
	}
	return &Filter{program: program}, nil
}

// Match evaluates the filter against one object. name is the raw loader
// name (empty for the main executable); path is the resolved on-disk path.
func (f *Filter) Match(name, path string, addr uint64, nphdrs int) (bool, error) {
	env := map[string]interface{}{
		"name":   name,
		"path":   path,
		"addr":   addr,
		"nphdrs": nphdrs,
	}

	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating filter: %w", err)
	}

	keep, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter produced %T, want bool", out)
	}
	return keep, nil
}
