package gridhtml

// Element is an output element with a tag, properties, and children.
type Element struct {
	Tag        string
	Properties map[string]any
	Children   []Content
	Position   *Position
}

// NewElement returns an element with an empty property map.
func NewElement(tag string, children ...Content) *Element {
	return &Element{Tag: tag, Properties: map[string]any{}, Children: children}
}

// Pos returns the source position, or nil if unknown.
func (e *Element) Pos() *Position { return e.Position }

// SetPos records the source position.
func (e *Element) SetPos(p *Position) { e.Position = p }

// Text is an output text node.
type Text struct {
	Value    string
	Position *Position
}

// Pos returns the source position, or nil if unknown.
func (t *Text) Pos() *Position { return t.Position }

// SetPos records the source position.
func (t *Text) SetPos(p *Position) { t.Position = p }
