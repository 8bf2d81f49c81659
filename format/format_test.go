package format

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/lam/ast"
)

func TestFormat(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		x    ast.Expr
		want string
	}{
		{ast.Var{Name: "a"}, "a"},
		{ast.Abs{Param: "x", Body: ast.Var{Name: "x"}}, "(lambda (x) x)"},
		{ast.App{Operator: ast.Var{Name: "f"}, Operand: ast.Var{Name: "a"}}, "(f a)"},
		{ast.App{
			Operator: ast.Abs{Param: "x", Body: ast.Var{Name: "x"}},
			Operand:  ast.Var{Name: "a"},
		}, "((lambda (x) x) a)"},
		{ast.Abs{
			Param: "x",
			Body:  ast.Abs{Param: "y", Body: ast.App{Operator: ast.Var{Name: "x"}, Operand: ast.Var{Name: "y"}}},
		}, "(lambda (x) (lambda (y) (x y)))"},
	} {
		b, err := Format(ctx, nil, tc.x)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(b))
	}
}

func TestFormatAppend(t *testing.T) {
	ctx := context.Background()

	b := []byte("expr: ")

	b, err := Format(ctx, b, ast.Var{Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, "expr: a", string(b))
}

func TestFormatNil(t *testing.T) {
	ctx := context.Background()

	_, err := Format(ctx, nil, nil)
	assert.Error(t, err)
}
