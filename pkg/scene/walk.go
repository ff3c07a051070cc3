package scene

import "iter"

// Walk returns a lazy depth-first pre-order traversal of the subtree
// rooted at n, including n itself.
func Walk(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		walk(n, yield)
	}
}

func walk(n Node, yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}
	if c, ok := n.(Container); ok {
		for _, child := range c.Children() {
			if !walk(child, yield) {
				return false
			}
		}
	}
	return true
}

// Filter returns the traversal of Walk restricted to nodes matching pred.
// Validation, stroke application, and aspect locking all share this.
func Filter(n Node, pred func(Node) bool) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for node := range Walk(n) {
			if pred(node) {
				if !yield(node) {
					return
				}
			}
		}
	}
}

// FindByID returns the first node in the subtree with the given ID.
func FindByID(n Node, id string) (Node, bool) {
	for node := range Walk(n) {
		if node.ID() == id {
			return node, true
		}
	}
	return nil, false
}
