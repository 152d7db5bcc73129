package gridhtml

import (
	"errors"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnhandledNode  = errors.New("unhandled node")
	ErrInvalidOptions = errors.New("invalid options")
)

// Kind identifies the type of an input node.
type Kind string

const (
	KindGridTable  Kind = "gridTable"
	KindGridHeader Kind = "gridHeader"
	KindGridBody   Kind = "gridBody"
	KindGridFooter Kind = "gridFooter"
	KindGridRow    Kind = "gridRow"
	KindGridCell   Kind = "gridCell"

	KindParagraph  Kind = "paragraph"
	KindText       Kind = "text"
	KindEmphasis   Kind = "emphasis"
	KindStrong     Kind = "strong"
	KindInlineCode Kind = "inlineCode"
	KindCode       Kind = "code"
	KindBreak      Kind = "break"
)

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// Output tag names.
const (
	TagTable = "table"
	TagHead  = "thead"
	TagBody  = "tbody"
	TagFoot  = "tfoot"
	TagRow   = "tr"
	TagTH    = "th"
	TagTD    = "td"
	TagCode  = "code"
)

// Cell property keys. A key is present on an output cell only when the
// source cell defines the matching attribute.
const (
	PropColSpan = "colSpan"
	PropRowSpan = "rowSpan"
	PropAlign   = "align"
	PropVAlign  = "valign"
)

// --- Input ---

// Node is an input syntax tree node.
type Node interface {
	Kind() Kind
	Pos() *Position
}

// Parent is a Node with ordered children.
type Parent interface {
	Node
	Nodes() []Node
}

// --- Output ---

// Content is an output tree node.
type Content interface {
	Pos() *Position
	SetPos(*Position)
}

// --- Host capabilities ---

// State is supplied by the host performing the overall tree conversion.
//
// All converts the children of parent using every registered handler and
// returns them in order. Patch copies provenance from the source node onto
// the produced node.
type State interface {
	All(parent Parent) ([]Content, error)
	Patch(from Node, to Content)
}

// Point is a location in the source text.
type Point struct {
	Line   int
	Column int
	Offset int
}

// Position is the span of source text a node was parsed from.
type Position struct {
	Start Point
	End   Point
}

// Clone returns a copy of p, or nil if p is nil.
func (p *Position) Clone() *Position {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
