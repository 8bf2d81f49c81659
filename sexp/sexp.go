package sexp

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

type (
	// Node is a generic s-expression tree: an atom or a list of nodes.
	Node interface {
		Position() Pos
		String() string

		node()
	}

	Sym struct {
		Name string
		Pos  Pos
	}

	List struct {
		Items []Node
		Pos   Pos
	}

	Pos struct {
		Line int
		Col  int
	}
)

// Read decodes a single yaml document into a Node.
// Scalars become symbols, sequences become lists, everything else is an error.
// Flow sequences make yaml a ready-made reader for s-expressions:
// [lambda, [x], x] decodes into the tree ((lambda (x) x)) is read from.
func Read(ctx context.Context, text []byte) (Node, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(text, &doc)
	if err != nil {
		return nil, errors.Wrap(err, "decode yaml")
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty document")
	}

	n, err := read(ctx, doc.Content[0])
	if err != nil {
		return nil, err
	}

	tlog.SpanFromContext(ctx).Printw("read tree", "node", n)

	return n, nil
}

func read(ctx context.Context, y *yaml.Node) (Node, error) {
	pos := Pos{Line: y.Line, Col: y.Column}

	switch y.Kind {
	case yaml.ScalarNode:
		return Sym{Name: y.Value, Pos: pos}, nil
	case yaml.SequenceNode:
		l := &List{
			Items: make([]Node, 0, len(y.Content)),
			Pos:   pos,
		}

		for _, c := range y.Content {
			n, err := read(ctx, c)
			if err != nil {
				return nil, err
			}

			l.Items = append(l.Items, n)
		}

		return l, nil
	default:
		return nil, errors.New("scalar or sequence expected at %v", pos)
	}
}

func (s Sym) Position() Pos { return s.Pos }

func (s Sym) String() string { return s.Name }

func (l *List) Position() Pos { return l.Pos }

func (l *List) String() string {
	b := []byte{'('}

	for i, n := range l.Items {
		if i != 0 {
			b = append(b, ' ')
		}

		b = append(b, n.String()...)
	}

	b = append(b, ')')

	return string(b)
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

func (Sym) node()   {}
func (*List) node() {}
