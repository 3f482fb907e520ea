package spatial

// Node owns a region of space, the items that straddle its child octants (or
// that sit at max depth), and up to 8 lazily created children.
//
// Invariant: an item is stored at the shallowest node whose region fully
// contains its bounds; it is pushed into a child only when it fits entirely
// inside exactly one child octant.
type Node struct {
	tree   *Octree
	parent *Node // nil for root
	bounds Region
	depth  int
	octant int // which octant of the parent this node is, -1 for root

	items        []Item
	children     [8]*Node
	childCount   int
	subtreeItems int // items here plus in all descendants
}

func (n *Node) Bounds() Region { return n.bounds }
func (n *Node) Depth() int { return n.depth }

// SubDivisionIndex is this node's octant id relative to its parent (-1 for
// the root). See Region.Octant for the bit mapping.
func (n *Node) SubDivisionIndex() int { return n.octant }

func (n *Node) Parent() *Node { return n.parent }

// Items returns the this-level item list. Callers must not mutate it.
func (n *Node) Items() []Item { return n.items }

func (n *Node) Child(i int) *Node { return n.children[i] }

// SubtreeItemCount counts the items stored at this node and below.
func (n *Node) SubtreeItemCount() int { return n.subtreeItems }

// tryInsert places the item at the shallowest fitting node, descending into
// a single child octant while one exists that fully contains the bounds.
// Returns false only when the bounds do not fit this node's region at all.
func (n *Node) tryInsert(it Item, bounds Region) bool {
	if !bounds.IsValid() || !n.bounds.ContainsBox(bounds) {
		return false
	}
	if n.depth < n.tree.maxDepth {
		if idx, ok := n.bounds.OctantFor(bounds); ok {
			child := n.children[idx]
			if child == nil {
				child = n.addChild(idx)
			}
			if child.tryInsert(it, bounds) {
				return true
			}
		}
	}
	n.attach(it)
	return true
}

func (n *Node) addChild(idx int) *Node {
	child := &Node{
		tree:   n.tree,
		parent: n,
		bounds: n.bounds.Octant(idx),
		depth:  n.depth + 1,
		octant: idx,
	}
	n.children[idx] = child
	n.childCount++
	n.tree.nodeCount++
	return child
}

// attach stores the item at this node and points its owning-node slot here.
func (n *Node) attach(it Item) {
	n.items = append(n.items, it)
	it.setTreeNode(n)
	for p := n; p != nil; p = p.parent {
		p.subtreeItems++
	}
}

// detach removes the item from this node's list and clears its owning-node
// slot. The caller is responsible for collapsing the node afterwards.
func (n *Node) detach(it Item) bool {
	for i, existing := range n.items {
		if existing == it {
			n.items = append(n.items[:i], n.items[i+1:]...)
			it.setTreeNode(nil)
			for p := n; p != nil; p = p.parent {
				p.subtreeItems--
			}
			return true
		}
	}
	return false
}

// collapse unlinks this node and then its ancestors while they are empty,
// shrinking the tree back toward the root. The root itself is never
// destroyed.
func (n *Node) collapse() {
	cur := n
	for cur.parent != nil && cur.subtreeItems == 0 && cur.childCount == 0 {
		p := cur.parent
		p.children[cur.octant] = nil
		p.childCount--
		cur.parent = nil
		cur.tree.nodeCount--
		cur.tree = nil
		cur = p
	}
}

// handleMovedItem re-validates the item against its current node after its
// bounds changed. When the node no longer contains it, insertion restarts at
// the nearest ancestor that does; an item that outgrew the whole tree is kept
// at the root.
func (n *Node) handleMovedItem(it Item) {
	bounds := it.Bounds()
	start := n
	for start.parent != nil && !start.bounds.ContainsBox(bounds) {
		start = start.parent
	}
	n.detach(it)
	if !start.tryInsert(it, bounds) {
		start.attach(it)
	}
	n.collapse()
}

// CollectAll visits every item in the subtree regardless of structure.
func (n *Node) CollectAll(visit func(Item)) {
	for _, it := range n.items {
		visit(it)
	}
	for _, child := range n.children {
		if child != nil {
			child.CollectAll(visit)
		}
	}
}
