// Package gridhtml converts grid table syntax trees into HTML element trees.
//
// A grid table is a table drawn with a grid of characters, with optional
// header and footer sections, multi-line cells, and row or column spans.
// Parsing the text is the job of a separate parser. This package takes the
// resulting [GridTable] tree and produces an [Element] tree of table, thead,
// tbody, tfoot, tr, th, and td elements. Rendering that tree to markup is
// left to the caller.
//
// # Conversion
//
// [New] returns a [TableFunc] configured by [Options]:
//
//	toTable := gridhtml.New(gridhtml.Options{})
//	el, err := toTable(state, gridTable)
//
// The [State] supplies the two capabilities the transform needs from the host:
// converting cell content ([State.All]) and recording provenance
// ([State.Patch]). [NewState] with [DefaultHandlers] provides a basic host
// for text, paragraphs, emphasis, code, and breaks:
//
//	handlers := gridhtml.DefaultHandlers()
//	handlers[gridhtml.KindGridTable] = toTable.Handler()
//	state := gridhtml.NewState(handlers)
//
// # Cells
//
// Header cells become th, all others td. The attributes colSpan, rowSpan,
// align, and valign are copied only when set on the source cell. A cell
// holding a single paragraph is unwrapped. Line breaks in text are folded
// to spaces, except inside code elements.
//
// # Sections
//
// Rows keep their source order. Header, body, and footer rows are grouped
// into thead, tbody, and tfoot, and empty groups are omitted. Rows placed
// directly under the table join the body. If the source has more than one
// section of a kind, the last one wins.
//
// [Options.NoHeader] drops the thead and tbody wrappers, leaving header
// rows followed by body rows directly under table. It is ignored when the
// table has footer rows.
//
// # Options
//
// [ParseOptions] and [LoadOptions] read [Options] from YAML:
//
//	noHeader: true
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnhandledNode]: no handler is registered for a node kind
//   - [ErrInvalidOptions]: malformed options document
//
// Errors returned by [State.All] pass through the transform unchanged.
package gridhtml
