package syntax

import (
	"go/ast"
	"go/format"
	"go/token"
	"strings"
)

// ExprString renders a type expression as it is spelled in source. It
// returns "" if the expression is absent or contains a parse error, which
// marks the type as undeterminable.
//
// e.g., ExprString(fset, [ast.Expr for map[string][]byte]) => "map[string][]byte"
func ExprString(fset *token.FileSet, expr ast.Expr) string {
	if expr == nil || hasBadNode(expr) {
		return ""
	}

	var b strings.Builder
	if err := format.Node(&b, fset, expr); err != nil {
		return ""
	}
	return b.String()
}

// hasBadNode reports whether the expression contains nodes produced by
// error-tolerant parsing.
func hasBadNode(expr ast.Expr) bool {
	bad := false
	ast.Inspect(expr, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.BadExpr, *ast.BadStmt, *ast.BadDecl:
			bad = true
		}
		return !bad
	})
	return bad
}
