package format

import (
	"context"

	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/slowlang/lam/ast"
	"github.com/slowlang/lam/front"
)

// Format appends the canonical s-expression rendering of x to b.
func Format(ctx context.Context, b []byte, x ast.Expr) (_ []byte, err error) {
	switch x := x.(type) {
	case ast.Var:
		return append(b, x.Name...), nil
	case ast.Abs:
		b = hfmt.Appendf(b, "(%v (%v) ", front.Lambda, x.Param)

		b, err = Format(ctx, b, x.Body)
		if err != nil {
			return nil, errors.Wrap(err, "body")
		}

		return append(b, ')'), nil
	case ast.App:
		b = append(b, '(')

		b, err = Format(ctx, b, x.Operator)
		if err != nil {
			return nil, errors.Wrap(err, "operator")
		}

		b = append(b, ' ')

		b, err = Format(ctx, b, x.Operand)
		if err != nil {
			return nil, errors.Wrap(err, "operand")
		}

		return append(b, ')'), nil
	default:
		return nil, errors.New("unsupported type: %T", x)
	}
}
