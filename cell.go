package gridhtml

import "strings"

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ")

// cell converts a grid cell into a th or td element.
func cell(s State, c *GridCell, tag string) (*Element, error) {
	el := NewElement(tag)
	if c.ColSpan != nil {
		el.Properties[PropColSpan] = *c.ColSpan
	}
	if c.RowSpan != nil {
		el.Properties[PropRowSpan] = *c.RowSpan
	}
	if c.Align != nil {
		el.Properties[PropAlign] = string(*c.Align)
	}
	if c.VAlign != nil {
		el.Properties[PropVAlign] = string(*c.VAlign)
	}

	// A lone paragraph is unwrapped so the text sits directly in the cell.
	var content Parent = c
	if len(c.Children) == 1 {
		if p, ok := c.Children[0].(Parent); ok && p.Kind() == KindParagraph {
			content = p
		}
	}
	children, err := s.All(content)
	if err != nil {
		return nil, err
	}
	el.Children = children

	normalize(el)
	s.Patch(c, el)
	return el, nil
}

// normalize folds line breaks in text to single spaces, leaving code alone.
func normalize(el *Element) {
	Walk(el, func(c Content) WalkStatus {
		switch n := c.(type) {
		case *Element:
			if n != nil && n.Tag == TagCode {
				return SkipChildren
			}
		case *Text:
			if n != nil {
				n.Value = lineBreaks.Replace(n.Value)
			}
		}
		return GoToNext
	})
}
