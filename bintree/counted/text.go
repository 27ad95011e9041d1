package counted

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/adt-go/adt"
	"github.com/cockroachdb/errors"
)

// Textual formats, identical to the garbage-collected variant's: a
// pre-order token grammar with an empty-tree sentinel, a parenthesized
// in-order grammar, and the sideways indented rendering. The two grammars
// are independent formats; neither claims to read the other's output.

// indentStep is the indentation added per tree level by WriteIndented.
const indentStep = 4

// ReadPreOrder parses a tree from whitespace-delimited tokens following
// the grammar Tree ::= SENTINEL | VALUE Tree Tree, allocating its nodes in
// this arena. Exactly one tree's worth of tokens is consumed.
func (a *Arena[T]) ReadPreOrder(r io.Reader, sentinel string, parse func(string) (T, error)) (Tree[T], error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return a.readPreOrder(sc, sentinel, parse)
}

func (a *Arena[T]) readPreOrder(sc *bufio.Scanner, sentinel string, parse func(string) (T, error)) (Tree[T], error) {
	tok, err := nextToken(sc)
	if err != nil {
		return a.Empty(), err
	}
	if tok == sentinel {
		return a.Empty(), nil
	}
	elem, err := parse(tok)
	if err != nil {
		return a.Empty(), errors.Mark(errors.Wrapf(err, "cannot parse value %q", tok), adt.ErrSyntax)
	}
	left, err := a.readPreOrder(sc, sentinel, parse)
	if err != nil {
		return a.Empty(), err
	}
	right, err := a.readPreOrder(sc, sentinel, parse)
	if err != nil {
		left.Release() // do not leak the finished left subtree
		return a.Empty(), err
	}
	tree := a.Compose(left, elem, right)
	left.Release()
	right.Release()
	return tree, nil
}

// WritePreOrder renders the tree as pre-order tokens separated by single
// spaces, using sentinel for empty subtrees. The inverse of ReadPreOrder.
func (t Tree[T]) WritePreOrder(w io.Writer, sentinel string) error {
	var tokens []string
	t.arena.writePreOrder(t.root, sentinel, &tokens)
	_, err := io.WriteString(w, strings.Join(tokens, " "))
	return err
}

func (a *Arena[T]) writePreOrder(r ref, sentinel string, tokens *[]string) {
	if r == none {
		*tokens = append(*tokens, sentinel)
		return
	}
	n := a.at(r)
	*tokens = append(*tokens, fmt.Sprintf("%v", n.elem))
	a.writePreOrder(n.left, sentinel, tokens)
	a.writePreOrder(n.right, sentinel, tokens)
}

// ReadInOrder parses a tree from whitespace-delimited tokens following the
// grammar Tree ::= '.' | '(' Tree VALUE Tree ')', allocating its nodes in
// this arena. A mismatched delimiter is a detected syntax error.
func (a *Arena[T]) ReadInOrder(r io.Reader, parse func(string) (T, error)) (Tree[T], error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return a.readInOrder(sc, parse)
}

func (a *Arena[T]) readInOrder(sc *bufio.Scanner, parse func(string) (T, error)) (Tree[T], error) {
	tok, err := nextToken(sc)
	if err != nil {
		return a.Empty(), err
	}
	if tok == "." {
		return a.Empty(), nil
	}
	if tok != "(" {
		return a.Empty(), errors.Wrapf(adt.ErrSyntax, "expected '(' or '.', got %q", tok)
	}
	left, err := a.readInOrder(sc, parse)
	if err != nil {
		return a.Empty(), err
	}
	tok, err = nextToken(sc)
	if err != nil {
		left.Release()
		return a.Empty(), err
	}
	elem, err := parse(tok)
	if err != nil {
		left.Release()
		return a.Empty(), errors.Mark(errors.Wrapf(err, "cannot parse value %q", tok), adt.ErrSyntax)
	}
	right, err := a.readInOrder(sc, parse)
	if err != nil {
		left.Release()
		return a.Empty(), err
	}
	tok, err = nextToken(sc)
	if err == nil && tok != ")" {
		err = errors.Wrapf(adt.ErrSyntax, "expected ')', got %q", tok)
	}
	if err != nil {
		left.Release()
		right.Release()
		return a.Empty(), err
	}
	tree := a.Compose(left, elem, right)
	left.Release()
	right.Release()
	return tree, nil
}

// WriteInOrder renders the tree in the parenthesized in-order format, with
// tokens separated by single spaces. The inverse of ReadInOrder.
func (t Tree[T]) WriteInOrder(w io.Writer) error {
	var tokens []string
	t.arena.writeInOrder(t.root, &tokens)
	_, err := io.WriteString(w, strings.Join(tokens, " "))
	return err
}

func (a *Arena[T]) writeInOrder(r ref, tokens *[]string) {
	if r == none {
		*tokens = append(*tokens, ".")
		return
	}
	n := a.at(r)
	*tokens = append(*tokens, "(")
	a.writeInOrder(n.left, tokens)
	*tokens = append(*tokens, fmt.Sprintf("%v", n.elem))
	a.writeInOrder(n.right, tokens)
	*tokens = append(*tokens, ")")
}

func nextToken(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", errors.Wrap(err, "cannot read token")
		}
		return "", errors.Wrap(adt.ErrSyntax, "unexpected end of input")
	}
	return sc.Text(), nil
}

// WriteIndented prints the tree rotated 90°: the right subtree first, then
// the root at the current indentation, then the left subtree, indenting by
// a fixed step per level.
func (t Tree[T]) WriteIndented(w io.Writer) error {
	return t.arena.writeIndented(w, 0, t.root)
}

func (a *Arena[T]) writeIndented(w io.Writer, indent int, r ref) error {
	if r == none {
		return nil
	}
	n := a.at(r)
	if err := a.writeIndented(w, indent+indentStep, n.right); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%*s%v\n", indent, "", n.elem); err != nil {
		return err
	}
	return a.writeIndented(w, indent+indentStep, n.left)
}

func (t Tree[T]) String() string {
	var sb strings.Builder
	sb.WriteString("==== Tree =====\n")
	_ = t.WriteIndented(&sb)
	sb.WriteString("===============\n")
	return sb.String()
}
