package mathbox

import "strings"

// Kind identifies the variant of a Node.
type Kind uint8

// Leaf kinds come first; IsLeaf relies on the order.
const (
	KindIdentifier Kind = iota
	KindNumber
	KindOperator
	KindText

	KindRow
	KindSub
	KindSup
	KindFraction
	KindRoot
	KindPhantom
)

// String returns the MathML element name of the kind.
func (k Kind) String() string {
	switch k {
	case KindIdentifier:
		return "mi"
	case KindNumber:
		return "mn"
	case KindOperator:
		return "mo"
	case KindText:
		return "mtext"
	case KindRow:
		return "mrow"
	case KindSub:
		return "msub"
	case KindSup:
		return "msup"
	case KindFraction:
		return "mfrac"
	case KindRoot:
		return "mroot"
	case KindPhantom:
		return "mphantom"
	default:
		return "unknown"
	}
}

// IsLeaf reports whether nodes of this kind carry text instead of children.
func (k Kind) IsLeaf() bool {
	return k <= KindText
}

// Node is an element of a notation tree.
//
// The set of node types is closed: *Leaf, *Row, *Sub, *Sup, *Fraction,
// *Root and *Phantom. Each composite exclusively owns its children.
type Node interface {
	// Kind returns the variant of the node.
	Kind() Kind

	// String returns the subtree in compact MathML-like notation,
	// e.g. msup(msub(mi(β), mi(α)), mn(2)).
	String() string

	// children returns the direct children in layout order.
	children() []Node
}

// Leaf is an identifier, number, operator or text run.
type Leaf struct {
	kind Kind
	Text string
}

// Ident returns an identifier leaf such as "x" or "β".
func Ident(s string) *Leaf { return &Leaf{kind: KindIdentifier, Text: s} }

// Num returns a number leaf.
func Num(s string) *Leaf { return &Leaf{kind: KindNumber, Text: s} }

// Op returns an operator leaf. Operators are padded on both sides.
func Op(s string) *Leaf { return &Leaf{kind: KindOperator, Text: s} }

// Txt returns a plain text leaf.
func Txt(s string) *Leaf { return &Leaf{kind: KindText, Text: s} }

// Kind implements Node.
func (l *Leaf) Kind() Kind { return l.kind }

func (l *Leaf) String() string { return l.kind.String() + "(" + l.Text + ")" }

func (l *Leaf) children() []Node { return nil }

// Row lays its children out left to right on a shared baseline.
type Row struct {
	Children []Node
}

// NewRow returns a row over children.
func NewRow(children ...Node) *Row { return &Row{Children: children} }

// Kind implements Node.
func (r *Row) Kind() Kind { return KindRow }

func (r *Row) String() string { return format(KindRow, r.Children...) }

func (r *Row) children() []Node { return r.Children }

// Sub attaches a subscript to a base.
type Sub struct {
	Base      Node
	Subscript Node
}

// NewSub returns base with subscript attached.
func NewSub(base, subscript Node) *Sub { return &Sub{Base: base, Subscript: subscript} }

// Kind implements Node.
func (s *Sub) Kind() Kind { return KindSub }

func (s *Sub) String() string { return format(KindSub, s.Base, s.Subscript) }

func (s *Sub) children() []Node { return []Node{s.Base, s.Subscript} }

// Sup attaches a superscript to a base.
type Sup struct {
	Base        Node
	Superscript Node
}

// NewSup returns base with superscript attached.
func NewSup(base, superscript Node) *Sup { return &Sup{Base: base, Superscript: superscript} }

// Kind implements Node.
func (s *Sup) Kind() Kind { return KindSup }

func (s *Sup) String() string { return format(KindSup, s.Base, s.Superscript) }

func (s *Sup) children() []Node { return []Node{s.Base, s.Superscript} }

// Fraction stacks a numerator over a denominator with a bar between them.
type Fraction struct {
	Numerator   Node
	Denominator Node
}

// NewFraction returns numerator over denominator.
func NewFraction(numerator, denominator Node) *Fraction {
	return &Fraction{Numerator: numerator, Denominator: denominator}
}

// Kind implements Node.
func (f *Fraction) Kind() Kind { return KindFraction }

func (f *Fraction) String() string { return format(KindFraction, f.Numerator, f.Denominator) }

func (f *Fraction) children() []Node { return []Node{f.Numerator, f.Denominator} }

// Root is a radical over a radicand with an optional index.
// A Root without index is a square root.
type Root struct {
	Radicand Node
	Index    Node // may be nil
}

// NewRoot returns the index-th root of radicand. index may be nil.
func NewRoot(radicand, index Node) *Root { return &Root{Radicand: radicand, Index: index} }

// NewSqrt returns the square root of radicand.
func NewSqrt(radicand Node) *Root { return &Root{Radicand: radicand} }

// Kind implements Node.
func (r *Root) Kind() Kind { return KindRoot }

func (r *Root) String() string {
	if r.Index == nil {
		return "msqrt(" + nodeString(r.Radicand) + ")"
	}
	return format(KindRoot, r.Radicand, r.Index)
}

func (r *Root) children() []Node {
	if r.Index == nil {
		return []Node{r.Radicand}
	}
	return []Node{r.Radicand, r.Index}
}

// Phantom reserves the space of a row over its children but paints nothing.
type Phantom struct {
	Children []Node
}

// NewPhantom returns an invisible row over children.
func NewPhantom(children ...Node) *Phantom { return &Phantom{Children: children} }

// Kind implements Node.
func (p *Phantom) Kind() Kind { return KindPhantom }

func (p *Phantom) String() string { return format(KindPhantom, p.Children...) }

func (p *Phantom) children() []Node { return p.Children }

// Walk visits n and its descendants depth first, left to right.
// If fn returns false the children of that node are skipped.
// Nil nodes are not visited.
func Walk(n Node, fn func(Node) bool) {
	if isNil(n) || !fn(n) {
		return
	}
	for _, c := range n.children() {
		Walk(c, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	count := 0
	Walk(n, func(Node) bool {
		count++
		return true
	})
	return count
}

func format(k Kind, children ...Node) string {
	var b strings.Builder
	b.WriteString(k.String())
	b.WriteByte('(')
	for i, c := range children {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(nodeString(c))
	}
	b.WriteByte(')')
	return b.String()
}

func nodeString(n Node) string {
	if isNil(n) {
		return "nil"
	}
	return n.String()
}

// isNil reports whether n is nil or a nil pointer of one of the node types.
func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Leaf:
		return n == nil
	case *Row:
		return n == nil
	case *Phantom:
		return n == nil
	case *Sub:
		return n == nil
	case *Sup:
		return n == nil
	case *Fraction:
		return n == nil
	case *Root:
		return n == nil
	}
	return false
}
