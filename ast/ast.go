package ast

type (
	// Expr is a lambda expression.
	// The set of forms is closed: adding one requires updating every
	// switch over Expr, which the compiler points out.
	Expr interface {
		expr()
	}

	Var struct {
		Name string
	}

	Abs struct {
		Param string
		Body  Expr
	}

	App struct {
		Operator Expr
		Operand  Expr
	}
)

func (Var) expr() {}
func (Abs) expr() {}
func (App) expr() {}
