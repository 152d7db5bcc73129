package gridhtml

import (
	"context"
	"log/slog"
)

// TableFunc converts a grid table into a table element.
type TableFunc func(s State, t *GridTable) (*Element, error)

// New returns a TableFunc configured by opts.
func New(opts Options) TableFunc {
	log := opts.logger()
	return func(s State, t *GridTable) (*Element, error) {
		return table(s, t, opts.NoHeader, log)
	}
}

// Handler adapts f so a State can convert grid tables nested in content.
func (f TableFunc) Handler() Handler {
	return func(s State, n Node) (Content, error) {
		t, ok := n.(*GridTable)
		if !ok {
			return nil, unhandled(n)
		}
		el, err := f(s, t)
		if err != nil {
			return nil, err
		}
		return el, nil
	}
}

// group collects the rows of one section kind and the node they came from.
type group struct {
	source Node
	rows   []Content
}

func (g *group) set(log *slog.Logger, source Node, rows []Content) {
	if len(g.rows) > 0 {
		log.LogAttrs(context.Background(), slog.LevelDebug, "grid section replaced",
			slog.String("kind", source.Kind().String()),
			slog.Int("dropped", len(g.rows)),
		)
	}
	g.source = source
	g.rows = rows
}

func table(s State, t *GridTable, noHeader bool, log *slog.Logger) (*Element, error) {
	var head, body, foot group

	for _, child := range t.Children {
		switch n := child.(type) {
		case *GridHeader:
			trs, err := rows(s, n, TagTH)
			if err != nil {
				return nil, err
			}
			head.set(log, n, trs)
		case *GridBody:
			trs, err := rows(s, n, TagTD)
			if err != nil {
				return nil, err
			}
			body.set(log, n, trs)
		case *GridFooter:
			trs, err := rows(s, n, TagTD)
			if err != nil {
				return nil, err
			}
			foot.set(log, n, trs)
		case *GridRow:
			tr, err := row(s, n, TagTD)
			if err != nil {
				return nil, err
			}
			body.rows = append(body.rows, tr)
		}
	}

	el := NewElement(TagTable)
	switch {
	case noHeader && len(foot.rows) == 0:
		el.Children = append(el.Children, head.rows...)
		el.Children = append(el.Children, body.rows...)
	default:
		if noHeader {
			log.LogAttrs(context.Background(), slog.LevelDebug, "noHeader ignored, footer present")
		}
		for _, g := range []struct {
			tag string
			grp group
		}{
			{TagHead, head},
			{TagBody, body},
			{TagFoot, foot},
		} {
			if len(g.grp.rows) == 0 {
				continue
			}
			wrap := NewElement(g.tag, g.grp.rows...)
			if g.grp.source != nil {
				s.Patch(g.grp.source, wrap)
			}
			el.Children = append(el.Children, wrap)
		}
	}

	s.Patch(t, el)
	return el, nil
}

// rows converts every row of a section. Children that are not rows are
// skipped.
func rows(s State, section Parent, tag string) ([]Content, error) {
	var out []Content
	for _, child := range section.Nodes() {
		r, ok := child.(*GridRow)
		if !ok {
			continue
		}
		tr, err := row(s, r, tag)
		if err != nil {
			return nil, err
		}
		out = append(out, tr)
	}
	return out, nil
}

// row converts a grid row into a tr element. Children that are not cells
// are skipped.
func row(s State, r *GridRow, tag string) (*Element, error) {
	el := NewElement(TagRow)
	for _, child := range r.Children {
		c, ok := child.(*GridCell)
		if !ok {
			continue
		}
		td, err := cell(s, c, tag)
		if err != nil {
			return nil, err
		}
		el.Children = append(el.Children, td)
	}
	s.Patch(r, el)
	return el, nil
}
