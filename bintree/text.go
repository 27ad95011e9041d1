package bintree

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/adt-go/adt"
	"github.com/cockroachdb/errors"
)

// The two textual formats are independent of each other: a tree written
// pre-order round-trips through ReadPreOrder, a tree written in-order
// round-trips through ReadInOrder, and that is all that is promised.
//
// Both formats are streams of whitespace-delimited tokens, so element
// values must render to a single token for the round-trip to hold.

// indentStep is the indentation added per tree level by WriteIndented.
const indentStep = 4

// --- Pre-order format ----------------------------------------------------
//
// Grammar: Tree ::= SENTINEL | VALUE Tree Tree
//
// With sentinel X, the tokens `1 2 X X 3 X X` read as
//
//       1
//     2   3

// ReadPreOrder parses a tree from a stream of whitespace-delimited tokens
// in pre-order. A token equal to sentinel stands for an empty tree; any
// other token is handed to parse to produce an element, and is followed by
// the left and the right subtree. Exactly one tree's worth of tokens is
// consumed.
func ReadPreOrder[T comparable](r io.Reader, sentinel string, parse func(string) (T, error)) (Tree[T], error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return readPreOrder(sc, sentinel, parse)
}

func readPreOrder[T comparable](sc *bufio.Scanner, sentinel string, parse func(string) (T, error)) (Tree[T], error) {
	tok, err := nextToken(sc)
	if err != nil {
		return Tree[T]{}, err
	}
	if tok == sentinel {
		return Tree[T]{}, nil
	}
	elem, err := parse(tok)
	if err != nil {
		return Tree[T]{}, errors.Mark(errors.Wrapf(err, "cannot parse value %q", tok), adt.ErrSyntax)
	}
	tracer().Debugf("pre-order input: node ⟨%v⟩", elem)
	left, err := readPreOrder(sc, sentinel, parse)
	if err != nil {
		return Tree[T]{}, err
	}
	right, err := readPreOrder(sc, sentinel, parse)
	if err != nil {
		return Tree[T]{}, err
	}
	return Compose(left, elem, right), nil
}

// WritePreOrder renders the tree as pre-order tokens separated by single
// spaces, using sentinel for empty subtrees. The inverse of ReadPreOrder.
func (t Tree[T]) WritePreOrder(w io.Writer, sentinel string) error {
	var tokens []string
	writePreOrder(t.root, sentinel, &tokens)
	_, err := io.WriteString(w, strings.Join(tokens, " "))
	return err
}

func writePreOrder[T comparable](root *node[T], sentinel string, tokens *[]string) {
	if root == nil {
		*tokens = append(*tokens, sentinel)
		return
	}
	*tokens = append(*tokens, fmt.Sprintf("%v", root.elem))
	writePreOrder(root.left, sentinel, tokens)
	writePreOrder(root.right, sentinel, tokens)
}

// --- In-order parenthesized format ----------------------------------------
//
// Grammar: Tree ::= '.' | '(' Tree VALUE Tree ')'
//
// The tokens `( ( . 2 . ) 1 ( . 3 . ) )` read as
//
//       1
//     2   3

// ReadInOrder parses a tree from a stream of whitespace-delimited tokens in
// the parenthesized in-order format. A '.' token stands for an empty tree;
// otherwise an opening '(' is expected, followed by the left subtree, the
// root value, the right subtree and a closing ')'. A mismatched delimiter
// is a detected syntax error, never a misparse.
func ReadInOrder[T comparable](r io.Reader, parse func(string) (T, error)) (Tree[T], error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return readInOrder(sc, parse)
}

func readInOrder[T comparable](sc *bufio.Scanner, parse func(string) (T, error)) (Tree[T], error) {
	tok, err := nextToken(sc)
	if err != nil {
		return Tree[T]{}, err
	}
	if tok == "." {
		return Tree[T]{}, nil
	}
	if tok != "(" {
		return Tree[T]{}, errors.Wrapf(adt.ErrSyntax, "expected '(' or '.', got %q", tok)
	}
	left, err := readInOrder(sc, parse)
	if err != nil {
		return Tree[T]{}, err
	}
	tok, err = nextToken(sc)
	if err != nil {
		return Tree[T]{}, err
	}
	elem, err := parse(tok)
	if err != nil {
		return Tree[T]{}, errors.Mark(errors.Wrapf(err, "cannot parse value %q", tok), adt.ErrSyntax)
	}
	tracer().Debugf("in-order input: node ⟨%v⟩", elem)
	right, err := readInOrder(sc, parse)
	if err != nil {
		return Tree[T]{}, err
	}
	tok, err = nextToken(sc)
	if err != nil {
		return Tree[T]{}, err
	}
	if tok != ")" {
		return Tree[T]{}, errors.Wrapf(adt.ErrSyntax, "expected ')', got %q", tok)
	}
	return Compose(left, elem, right), nil
}

// WriteInOrder renders the tree in the parenthesized in-order format, with
// tokens separated by single spaces. The inverse of ReadInOrder.
func (t Tree[T]) WriteInOrder(w io.Writer) error {
	var tokens []string
	writeInOrder(t.root, &tokens)
	_, err := io.WriteString(w, strings.Join(tokens, " "))
	return err
}

func writeInOrder[T comparable](root *node[T], tokens *[]string) {
	if root == nil {
		*tokens = append(*tokens, ".")
		return
	}
	*tokens = append(*tokens, "(")
	writeInOrder(root.left, tokens)
	*tokens = append(*tokens, fmt.Sprintf("%v", root.elem))
	writeInOrder(root.right, tokens)
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

// --- Indented rendering ----------------------------------------------------

// WriteIndented prints the tree rotated 90°: the right subtree first, then
// the root at the current indentation, then the left subtree, indenting by
// a fixed step per level. Reading it with the head tilted left gives the
// usual picture.
func (t Tree[T]) WriteIndented(w io.Writer) error {
	return writeIndented(w, 0, t.root)
}

func writeIndented[T comparable](w io.Writer, indent int, root *node[T]) error {
	if root == nil {
		return nil
	}
	if err := writeIndented(w, indent+indentStep, root.right); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%*s%v\n", indent, "", root.elem); err != nil {
		return err
	}
	return writeIndented(w, indent+indentStep, root.left)
}

func (t Tree[T]) String() string {
	var sb strings.Builder
	sb.WriteString("==== Tree =====\n")
	_ = t.WriteIndented(&sb)
	sb.WriteString("===============\n")
	return sb.String()
}
