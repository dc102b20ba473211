package main

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
)

// OSExitAnalyzer reports direct os.Exit calls inside func main of package
// main. Exiting through log.Fatal or a deferred cleanup path keeps shutdown
// behavior in one place.
var OSExitAnalyzer = &analysis.Analyzer{
	Name: "osexit",
	Doc:  "forbids direct os.Exit calls in the main function of package main",
	Run:  runOSExit,
}

func runOSExit(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		if file.Name.Name != "main" {
			continue
		}

		ast.Inspect(file, func(node ast.Node) bool {
			fn, ok := node.(*ast.FuncDecl)
			if !ok || fn.Name.Name != "main" {
				return true
			}

			ast.Inspect(fn.Body, func(node ast.Node) bool {
				call, ok := node.(*ast.CallExpr)
				if !ok {
					return true
				}
				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				ident, ok := sel.X.(*ast.Ident)
				if !ok {
					return true
				}
				if ident.Name == "os" && sel.Sel.Name == "Exit" {
					pass.Reportf(call.Pos(), "direct os.Exit call in main")
				}
				return true
			})
			return false
		})
	}

	return nil, nil
}
