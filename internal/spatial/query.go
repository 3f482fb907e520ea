package spatial

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// VisitFunc receives each accepted item during a traversal.
type VisitFunc func(Item)

// IntersectionTest refines per-item acceptance during CollectVisible. The
// volume is the query volume (nil when collecting everything) and
// containsOnly is true when the enclosing node is already fully inside it,
// letting the test skip its own geometry check. Side effects (such as
// pushing a draw command) are allowed.
type IntersectionTest func(it Item, vol *Volume, containsOnly bool) bool

// ItemPredicate and NodePredicate drive the Find traversals.
type ItemPredicate func(Item) bool
type NodePredicate func(*Node) bool

// DebugRenderFunc draws one node box.
type DebugRenderFunc func(center, size rl.Vector3, color rl.Color)

// CollectVisible walks the subtree depth-first, pruning nodes whose region is
// Disjoint from vol. Items of surviving nodes pass through test (when
// non-nil) before being handed to visit. With onlyContainingItems set,
// subtrees holding no items at all are skipped.
func (n *Node) CollectVisible(vol *Volume, onlyContainingItems bool, visit VisitFunc, test IntersectionTest) {
	n.collectVisible(vol, false, onlyContainingItems, visit, test)
}

func (n *Node) collectVisible(vol *Volume, contained, onlyContainingItems bool, visit VisitFunc, test IntersectionTest) {
	if onlyContainingItems && n.subtreeItems == 0 {
		return
	}
	if vol != nil && !contained {
		switch vol.ContainsRegion(n.bounds) {
		case Disjoint:
			return
		case Contains:
			contained = true
		}
	}
	for _, it := range n.items {
		if test == nil || test(it, vol, contained) {
			visit(it)
		}
	}
	for _, child := range n.children {
		if child != nil {
			child.collectVisible(vol, contained, onlyContainingItems, visit, test)
		}
	}
}

// FindFirst returns the first item satisfying itemTest, depth-first with
// children visited in octant order 0..7. nodeTest prunes whole subtrees.
// Either predicate may be nil (always true).
func (n *Node) FindFirst(itemTest ItemPredicate, nodeTest NodePredicate) (Item, *Node) {
	if nodeTest != nil && !nodeTest(n) {
		return nil, nil
	}
	for _, it := range n.items {
		if itemTest == nil || itemTest(it) {
			return it, n
		}
	}
	for _, child := range n.children {
		if child == nil {
			continue
		}
		if it, node := child.FindFirst(itemTest, nodeTest); it != nil {
			return it, node
		}
	}
	return nil, nil
}

// FindAll visits every item satisfying itemTest, pruning like FindFirst.
func (n *Node) FindAll(itemTest ItemPredicate, nodeTest NodePredicate, visit VisitFunc) {
	if nodeTest != nil && !nodeTest(n) {
		return
	}
	for _, it := range n.items {
		if itemTest == nil || itemTest(it) {
			visit(it)
		}
	}
	for _, child := range n.children {
		if child != nil {
			child.FindAll(itemTest, nodeTest, visit)
		}
	}
}

// DebugRender emits one box per visited node. Nodes holding items draw
// green, empty routing nodes gray; when a frustum is given, nodes touching
// it are highlighted yellow. skipEmpty prunes subtrees with no items.
func (n *Node) DebugRender(skipEmpty bool, frustum *Frustum, render DebugRenderFunc) {
	if skipEmpty && n.subtreeItems == 0 {
		return
	}
	color := rl.Gray
	if len(n.items) > 0 {
		color = rl.Green
	}
	if frustum != nil && frustum.ContainsRegion(n.bounds) != Disjoint {
		color = rl.Yellow
	}
	render(n.bounds.Center(), n.bounds.Size(), color)
	for _, child := range n.children {
		if child != nil {
			child.DebugRender(skipEmpty, frustum, render)
		}
	}
}
