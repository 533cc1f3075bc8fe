// Package markcheck defines an analyzer that reports misuse of covmark:
// mark names that are not constants, and guards that are discarded or
// returned out of the scope that opened them.
package markcheck

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const covmarkPath = "jonwillia.ms/covmark"

const Doc = `check covmark marks and guards

Mark names must be constant strings so that hit and check sites can be
found with grep. A guard returned by Check or CheckCount must be closed in
the scope that opened it, normally with defer ....Done(). Done must be the
deferred call itself, not called from a deferred closure, or it cannot
tell that a panic is unwinding the scope.`

var Analyzer = &analysis.Analyzer{
	Name:     "markcheck",
	Doc:      Doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// position of the mark name argument, by function
var nameArg = map[string]int{
	"Hit":         0,
	"Define":      0,
	"Check":       1,
	"CheckCount":  1,
	"Run":         1,
	"RunCount":    1,
	"Expect":      1,
	"ExpectCount": 1,
}

var closable = map[string]bool{
	"Check":      true,
	"CheckCount": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Path() == covmarkPath {
		return nil, nil
	}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
		(*ast.ExprStmt)(nil),
		(*ast.ReturnStmt)(nil),
		(*ast.DeferStmt)(nil),
	}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.CallExpr:
			checkName(pass, n)
		case *ast.ExprStmt:
			call, ok := n.X.(*ast.CallExpr)
			if !ok {
				return
			}
			if fn := covmarkFunc(pass, call); fn != nil && closable[fn.Name()] {
				pass.Reportf(call.Pos(), "result of %s is discarded; close the guard with defer", describe(fn))
			}
		case *ast.ReturnStmt:
			for _, res := range n.Results {
				if isGuard(pass.TypesInfo.TypeOf(res)) {
					pass.Reportf(res.Pos(), "guard escapes the scope that opened it")
				}
			}
		case *ast.DeferStmt:
			if lit, ok := n.Call.Fun.(*ast.FuncLit); ok {
				checkWrappedDone(pass, lit)
			}
		}
	})
	return nil, nil
}

func checkName(pass *analysis.Pass, call *ast.CallExpr) {
	fn := covmarkFunc(pass, call)
	if fn == nil || isMethod(fn) {
		return
	}
	i, ok := nameArg[fn.Name()]
	if !ok || i >= len(call.Args) {
		return
	}
	arg := call.Args[i]
	if tv, ok := pass.TypesInfo.Types[arg]; ok && tv.Value != nil {
		return
	}
	pass.Reportf(arg.Pos(), "mark name passed to %s must be a constant string", describe(fn))
}

// checkWrappedDone reports Guard.Done calls inside a deferred closure.
// Done recovers a passing panic only when it is the deferred call itself.
func checkWrappedDone(pass *analysis.Pass, lit *ast.FuncLit) {
	ast.Inspect(lit.Body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		fn := covmarkFunc(pass, call)
		if fn == nil || fn.Name() != "Done" || !isMethod(fn) {
			return true
		}
		if isGuard(fn.Type().(*types.Signature).Recv().Type()) {
			pass.Reportf(call.Pos(), "Guard.Done called from a deferred closure cannot see panics; defer Done directly")
		}
		return true
	})
}

// covmarkFunc returns the covmark function or method called by call.
func covmarkFunc(pass *analysis.Pass, call *ast.CallExpr) *types.Func {
	fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != covmarkPath {
		return nil
	}
	return fn
}

func isMethod(fn *types.Func) bool {
	return fn.Type().(*types.Signature).Recv() != nil
}

func describe(fn *types.Func) string {
	if isMethod(fn) {
		return "(*covmark.Counter)." + fn.Name()
	}
	return "covmark." + fn.Name()
}

func isGuard(t types.Type) bool {
	ptr, ok := t.(*types.Pointer)
	if !ok {
		return false
	}
	named, ok := ptr.Elem().(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == covmarkPath && obj.Name() == "Guard"
}
