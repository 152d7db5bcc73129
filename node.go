package gridhtml

// Align is the horizontal alignment of a grid cell.
type Align string

const (
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify"
)

// VAlign is the vertical alignment of a grid cell.
type VAlign string

const (
	VAlignTop    VAlign = "top"
	VAlignMiddle VAlign = "middle"
	VAlignBottom VAlign = "bottom"
)

// GridTable is the root of a grid table. Children are sections or loose
// rows in document order.
type GridTable struct {
	Children []Node
	Position *Position
}

// Kind returns KindGridTable.
func (t *GridTable) Kind() Kind { return KindGridTable }

// Pos returns the source position, or nil if unknown.
func (t *GridTable) Pos() *Position { return t.Position }

// Nodes returns the children in document order.
func (t *GridTable) Nodes() []Node { return t.Children }

// GridHeader groups header rows.
type GridHeader struct {
	Children []Node
	Position *Position
}

// Kind returns KindGridHeader.
func (h *GridHeader) Kind() Kind { return KindGridHeader }

// Pos returns the source position, or nil if unknown.
func (h *GridHeader) Pos() *Position { return h.Position }

// Nodes returns the children in document order.
func (h *GridHeader) Nodes() []Node { return h.Children }

// GridBody groups body rows.
type GridBody struct {
	Children []Node
	Position *Position
}

// Kind returns KindGridBody.
func (b *GridBody) Kind() Kind { return KindGridBody }

// Pos returns the source position, or nil if unknown.
func (b *GridBody) Pos() *Position { return b.Position }

// Nodes returns the children in document order.
func (b *GridBody) Nodes() []Node { return b.Children }

// GridFooter groups footer rows.
type GridFooter struct {
	Children []Node
	Position *Position
}

// Kind returns KindGridFooter.
func (f *GridFooter) Kind() Kind { return KindGridFooter }

// Pos returns the source position, or nil if unknown.
func (f *GridFooter) Pos() *Position { return f.Position }

// Nodes returns the children in document order.
func (f *GridFooter) Nodes() []Node { return f.Children }

// GridRow holds cells in column order.
type GridRow struct {
	Children []Node
	Position *Position
}

// Kind returns KindGridRow.
func (r *GridRow) Kind() Kind { return KindGridRow }

// Pos returns the source position, or nil if unknown.
func (r *GridRow) Pos() *Position { return r.Position }

// Nodes returns the children in document order.
func (r *GridRow) Nodes() []Node { return r.Children }

// GridCell holds block or inline content. A nil attribute is absent; a
// non-nil one is present even when it points at a zero value.
type GridCell struct {
	Children []Node
	ColSpan  *int
	RowSpan  *int
	Align    *Align
	VAlign   *VAlign
	Position *Position
}

// Kind returns KindGridCell.
func (c *GridCell) Kind() Kind { return KindGridCell }

// Pos returns the source position, or nil if unknown.
func (c *GridCell) Pos() *Position { return c.Position }

// Nodes returns the children in document order.
func (c *GridCell) Nodes() []Node { return c.Children }

// --- Content nodes understood by DefaultHandlers ---

// Paragraph is a block of inline content.
type Paragraph struct {
	Children []Node
	Position *Position
}

// Kind returns KindParagraph.
func (p *Paragraph) Kind() Kind { return KindParagraph }

// Pos returns the source position, or nil if unknown.
func (p *Paragraph) Pos() *Position { return p.Position }

// Nodes returns the children in document order.
func (p *Paragraph) Nodes() []Node { return p.Children }

// TextNode is literal text.
type TextNode struct {
	Value    string
	Position *Position
}

// Kind returns KindText.
func (t *TextNode) Kind() Kind { return KindText }

// Pos returns the source position, or nil if unknown.
func (t *TextNode) Pos() *Position { return t.Position }

// Emphasis is stressed inline content.
type Emphasis struct {
	Children []Node
	Position *Position
}

// Kind returns KindEmphasis.
func (e *Emphasis) Kind() Kind { return KindEmphasis }

// Pos returns the source position, or nil if unknown.
func (e *Emphasis) Pos() *Position { return e.Position }

// Nodes returns the children in document order.
func (e *Emphasis) Nodes() []Node { return e.Children }

// Strong is important inline content.
type Strong struct {
	Children []Node
	Position *Position
}

// Kind returns KindStrong.
func (s *Strong) Kind() Kind { return KindStrong }

// Pos returns the source position, or nil if unknown.
func (s *Strong) Pos() *Position { return s.Position }

// Nodes returns the children in document order.
func (s *Strong) Nodes() []Node { return s.Children }

// InlineCode is a code span.
type InlineCode struct {
	Value    string
	Position *Position
}

// Kind returns KindInlineCode.
func (c *InlineCode) Kind() Kind { return KindInlineCode }

// Pos returns the source position, or nil if unknown.
func (c *InlineCode) Pos() *Position { return c.Position }

// Code is a fenced or indented code block.
type Code struct {
	Lang     string
	Value    string
	Position *Position
}

// Kind returns KindCode.
func (c *Code) Kind() Kind { return KindCode }

// Pos returns the source position, or nil if unknown.
func (c *Code) Pos() *Position { return c.Position }

// Break is a hard line break.
type Break struct {
	Position *Position
}

// Kind returns KindBreak.
func (b *Break) Kind() Kind { return KindBreak }

// Pos returns the source position, or nil if unknown.
func (b *Break) Pos() *Position { return b.Position }
