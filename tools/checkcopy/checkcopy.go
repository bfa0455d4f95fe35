// Copyright 2026 The clist Authors.
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

// Package checkcopy flags by-value copies of types containing a clist.Entry.
//
// A linked Entry's neighbors reference the original record. A copy claims the
// same membership without being part of the cycle, and linking or unlinking
// through the copy corrupts the list. Entry-bearing types must be handled
// through pointers, like types containing a sync.Mutex.
package checkcopy

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// Analyzer defines the entrypoint.
var Analyzer = &analysis.Analyzer{
	Name: "checkcopy",
	Doc:  "flags by-value copies of types containing a clist.Entry",
	Run:  run,
}

// entryPath is the import path of the package defining Entry.
const entryPath = "clist.dev/clist/pkg/clist"

func run(pass *analysis.Pass) (any, error) {
	// clist itself copies Entry records deliberately (Swap exchanges two head
	// records in place), and its tests stage link states the same way.
	if pass.Pkg.Name() == "clist" {
		return nil, nil
	}

	for _, file := range pass.Files {
		ast.Inspect(file, func(node ast.Node) bool {
			switch stmt := node.(type) {
			case *ast.AssignStmt:
				for i, rhs := range stmt.Rhs {
					// Assigning to the blank identifier discards the value;
					// no usable copy is made.
					if len(stmt.Lhs) == len(stmt.Rhs) && isBlank(stmt.Lhs[i]) {
						continue
					}
					report(pass, rhs, "assignment")
				}
			case *ast.ValueSpec:
				for i, value := range stmt.Values {
					if len(stmt.Names) == len(stmt.Values) && stmt.Names[i].Name == "_" {
						continue
					}
					report(pass, value, "declaration")
				}
			case *ast.CallExpr:
				if exemptBuiltin(pass, stmt) {
					return true
				}
				for _, arg := range stmt.Args {
					report(pass, arg, "call argument")
				}
			}
			return true
		})
	}

	return nil, nil
}

// isBlank returns true if x is the blank identifier.
func isBlank(x ast.Expr) bool {
	id, ok := x.(*ast.Ident)
	return ok && id.Name == "_"
}

// report emits a diagnostic if evaluating x copies an Entry-bearing value.
func report(pass *analysis.Pass, x ast.Expr, what string) {
	t := copiesEntry(pass, x)
	if t == nil {
		return
	}
	pass.Reportf(x.Pos(), "%s copies %s, which contains a clist.Entry; handle it through a pointer", what, types.TypeString(t, types.RelativeTo(pass.Pkg)))
}

// copiesEntry returns the type of x if evaluating x as an rvalue copies a
// clist.Entry, and nil otherwise. Fresh values carry no list membership:
// composite literals, call results, and dereferences of call results are
// not copies of anything reachable.
func copiesEntry(pass *analysis.Pass, x ast.Expr) types.Type {
	switch v := ast.Unparen(x).(type) {
	case *ast.CompositeLit:
		return nil
	case *ast.CallExpr:
		return nil
	case *ast.StarExpr:
		if _, ok := ast.Unparen(v.X).(*ast.CallExpr); ok {
			return nil
		}
	}
	tv, ok := pass.TypesInfo.Types[x]
	if !ok || !tv.IsValue() || tv.Type == nil {
		return nil
	}
	if !containsEntry(tv.Type) {
		return nil
	}
	return tv.Type
}

// containsEntry returns true if a value of type t holds a clist.Entry
// directly or through nested structs and arrays. Pointers, slices, and maps
// do not propagate: copying a reference does not copy the Entry behind it.
func containsEntry(t types.Type) bool {
	if isEntry(t) {
		return true
	}
	switch u := t.Underlying().(type) {
	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			if containsEntry(u.Field(i).Type()) {
				return true
			}
		}
	case *types.Array:
		return containsEntry(u.Elem())
	}
	return false
}

// isEntry returns true if t is the clist.Entry type itself.
func isEntry(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Name() == "Entry" && obj.Pkg() != nil && obj.Pkg().Path() == entryPath
}

// exemptBuiltin returns true for builtin calls that do not copy their
// arguments, len and unsafe.Sizeof in particular. new is included because
// its argument is a type, not a value.
func exemptBuiltin(pass *analysis.Pass, call *ast.CallExpr) bool {
	var id *ast.Ident
	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.Ident:
		id = fun
	case *ast.SelectorExpr:
		id = fun.Sel
	}
	if id == nil {
		return false
	}
	b, ok := pass.TypesInfo.Uses[id].(*types.Builtin)
	if !ok {
		return false
	}
	switch b.Name() {
	case "new", "len", "cap", "Sizeof", "Offsetof", "Alignof":
		return true
	}
	return false
}
