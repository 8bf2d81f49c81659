package front

import (
	"context"
	"fmt"

	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/slowlang/lam/ast"
	"github.com/slowlang/lam/sexp"
)

// Lambda is the marker symbol heading an abstraction form: (lambda (x) body).
const Lambda = "lambda"

type (
	InvalidExpressionError struct {
		Node sexp.Node
	}
)

// Parse converts a generic s-expression tree into an ast.Expr.
//
// Rules are tried in order, first match wins:
// a symbol passing the Ident guard is a variable,
// (lambda (param) body) is an abstraction,
// any other two-element list is an application.
// A node matching none of them fails with InvalidExpressionError
// carrying that node, and the failure aborts the whole parse.
//
// Parse holds no state and never mutates its input, so concurrent calls
// over shared trees are safe. Recursion depth equals input depth; callers
// feeding it untrusted input are expected to bound the depth themselves.
func Parse(ctx context.Context, node sexp.Node) (ast.Expr, error) {
	if tr := tlog.SpanFromContext(ctx); tr.If("parse_node") {
		tr.Printw("parse node", "node", node, "from", loc.Callers(1, 3))
	}

	switch n := node.(type) {
	case sexp.Sym:
		if Ident(n.Name) {
			return ast.Var{Name: n.Name}, nil
		}
	case *sexp.List:
		if p, ok := absParam(n); ok {
			return parseAbs(ctx, p, n.Items[2])
		}

		if len(n.Items) == 2 {
			return parseApp(ctx, n.Items[0], n.Items[1])
		}
	}

	return nil, NewInvalidExpression(node)
}

// absParam reports whether n is shaped (lambda (param) body),
// returning the parameter symbol if so. The shape check covers the
// guard on the parameter: a list or a non-identifier in param position
// rejects the whole form.
func absParam(n *sexp.List) (p sexp.Sym, ok bool) {
	if len(n.Items) != 3 {
		return p, false
	}

	m, ok := n.Items[0].(sexp.Sym)
	if !ok || m.Name != Lambda {
		return p, false
	}

	l, ok := n.Items[1].(*sexp.List)
	if !ok || len(l.Items) != 1 {
		return p, false
	}

	p, ok = l.Items[0].(sexp.Sym)
	if !ok || !Ident(p.Name) {
		return p, false
	}

	return p, true
}

func parseAbs(ctx context.Context, param sexp.Sym, body sexp.Node) (ast.Expr, error) {
	b, err := Parse(ctx, body)
	if err != nil {
		return nil, err
	}

	return ast.Abs{Param: param.Name, Body: b}, nil
}

func parseApp(ctx context.Context, op, arg sexp.Node) (ast.Expr, error) {
	f, err := Parse(ctx, op)
	if err != nil {
		return nil, err
	}

	a, err := Parse(ctx, arg)
	if err != nil {
		return nil, err
	}

	return ast.App{Operator: f, Operand: a}, nil
}

// Ident is the variable guard: a letter or underscore followed by
// letters, digits and underscores.
func Ident(s string) bool {
	if s == "" || s[0] >= '0' && s[0] <= '9' {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' {
			continue
		}

		return false
	}

	return true
}

func NewInvalidExpression(n sexp.Node) error {
	return InvalidExpressionError{Node: n}
}

func (e InvalidExpressionError) Error() string {
	if e.Node == nil {
		return "invalid expression: <nil>"
	}

	if p := e.Node.Position(); p.Line != 0 {
		return fmt.Sprintf("invalid expression at %v: %v", p, e.Node)
	}

	return fmt.Sprintf("invalid expression: %v", e.Node)
}
