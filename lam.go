package lam

import (
	"context"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/lam/ast"
	"github.com/slowlang/lam/front"
	"github.com/slowlang/lam/sexp"
)

func ParseFile(ctx context.Context, name string) (ast.Expr, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Parse(ctx, name, text)
}

func Parse(ctx context.Context, name string, text []byte) (_ ast.Expr, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "parse expression", "name", name)
	defer tr.Finish("err", &err)

	n, err := sexp.Read(ctx, text)
	if err != nil {
		return nil, errors.Wrap(err, "read tree")
	}

	x, err := front.Parse(ctx, n)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}

	tr.Printw("expression", "expr", x)

	return x, nil
}
