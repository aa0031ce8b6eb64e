package query

import (
	"fmt"

	"github.com/signadot/rpgmap/rpg"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Filter struct {
	src string
	prg *vm.Program
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env((&Summary{}).env()),
		expr.AsBool(),
		expr.Function("command", func(params ...any) (any, error) {
			return rpg.CommandName(int64(params[0].(int))), nil
		},
			new(func(int) string)),
	}
}

// Compile compiles a boolean filter expression. The empty expression
// matches every event.
func Compile(src string) (*Filter, error) {
	f := &Filter{src: src}
	if src == "" {
		return f, nil
	}
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrQuery, src, err)
	}
	f.prg = prg
	return f, nil
}

func (f *Filter) Match(s *Summary) (bool, error) {
	if f.prg == nil {
		return true, nil
	}
	v, err := vm.Run(f.prg, s.env())
	if err != nil {
		return false, fmt.Errorf("%w: evaluating %q on event %d: %w", ErrQuery, f.src, s.ID, err)
	}
	return v.(bool), nil
}

// Select returns the summaries matching f.
func (f *Filter) Select(sums []*Summary) ([]*Summary, error) {
	var res []*Summary
	for _, s := range sums {
		ok, err := f.Match(s)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, s)
		}
	}
	return res, nil
}
