package gridhtml

import (
	"fmt"
	"maps"
)

// Handler converts one input node. A nil Content means the node produces
// no output.
type Handler func(s State, n Node) (Content, error)

// BasicState is a State that dispatches on node kind.
type BasicState struct {
	handlers map[Kind]Handler
}

// NewState returns a BasicState using handlers. The map is copied.
func NewState(handlers map[Kind]Handler) *BasicState {
	return &BasicState{handlers: maps.Clone(handlers)}
}

// Convert converts a single node.
func (s *BasicState) Convert(n Node) (Content, error) {
	h, ok := s.handlers[n.Kind()]
	if !ok {
		return nil, unhandled(n)
	}
	return h(s, n)
}

// All converts the children of parent in order.
func (s *BasicState) All(parent Parent) ([]Content, error) {
	var out []Content
	for _, child := range parent.Nodes() {
		c, err := s.Convert(child)
		if err != nil {
			return nil, err
		}
		if !isNil(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Patch copies the source position of from onto to.
func (s *BasicState) Patch(from Node, to Content) {
	if p := from.Pos(); p != nil {
		to.SetPos(p.Clone())
	}
}

// isNil reports whether c is nil or a nil pointer to a package node.
func isNil(c Content) bool {
	switch n := c.(type) {
	case nil:
		return true
	case *Element:
		return n == nil
	case *Text:
		return n == nil
	}
	return false
}

func unhandled(n Node) error {
	return fmt.Errorf("%w: %q", ErrUnhandledNode, n.Kind())
}

// DefaultHandlers returns handlers for the basic content kinds. Register
// New(opts).Handler() under KindGridTable to convert nested grid tables.
func DefaultHandlers() map[Kind]Handler {
	return map[Kind]Handler{
		KindText:       handleText,
		KindParagraph:  wrapper("p"),
		KindEmphasis:   wrapper("em"),
		KindStrong:     wrapper("strong"),
		KindInlineCode: handleInlineCode,
		KindCode:       handleCode,
		KindBreak:      handleBreak,
	}
}

func handleText(s State, n Node) (Content, error) {
	t, ok := n.(*TextNode)
	if !ok {
		return nil, unhandled(n)
	}
	out := &Text{Value: t.Value}
	s.Patch(n, out)
	return out, nil
}

func wrapper(tag string) Handler {
	return func(s State, n Node) (Content, error) {
		p, ok := n.(Parent)
		if !ok {
			return nil, unhandled(n)
		}
		children, err := s.All(p)
		if err != nil {
			return nil, err
		}
		el := NewElement(tag, children...)
		s.Patch(n, el)
		return el, nil
	}
}

func handleInlineCode(s State, n Node) (Content, error) {
	c, ok := n.(*InlineCode)
	if !ok {
		return nil, unhandled(n)
	}
	el := NewElement(TagCode, &Text{Value: c.Value})
	s.Patch(n, el)
	return el, nil
}

func handleCode(s State, n Node) (Content, error) {
	c, ok := n.(*Code)
	if !ok {
		return nil, unhandled(n)
	}
	code := NewElement(TagCode, &Text{Value: c.Value})
	if c.Lang != "" {
		code.Properties["className"] = []string{"language-" + c.Lang}
	}
	pre := NewElement("pre", code)
	s.Patch(n, pre)
	return pre, nil
}

func handleBreak(s State, n Node) (Content, error) {
	el := NewElement("br")
	s.Patch(n, el)
	return el, nil
}
