package gridhtml

// WalkStatus tells Walk how to continue after visiting a node.
type WalkStatus int

const (
	// GoToNext continues into the node's children, then its siblings.
	GoToNext WalkStatus = iota
	// SkipChildren skips the node's subtree and continues with its siblings.
	SkipChildren
	// Terminate stops the walk.
	Terminate
)

// Visitor is called once per node, before its children.
type Visitor func(c Content) WalkStatus

// Walk traverses c depth-first in pre-order. It returns Terminate if the
// visitor stopped the walk, and GoToNext otherwise.
func Walk(c Content, v Visitor) WalkStatus {
	switch v(c) {
	case Terminate:
		return Terminate
	case SkipChildren:
		return GoToNext
	}
	el, ok := c.(*Element)
	if !ok || el == nil {
		return GoToNext
	}
	for _, child := range el.Children {
		if Walk(child, v) == Terminate {
			return Terminate
		}
	}
	return GoToNext
}
