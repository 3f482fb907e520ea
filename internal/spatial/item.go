package spatial

// Item is anything the octree tracks. Implementations embed TreeItem, which
// provides the owning-node slot the tree keeps in sync, and expose their
// current bounding volume through Bounds.
//
// Items are owned by their creators; the tree only holds references and
// writes the owning-node slot.
type Item interface {
	Bounds() Region
	treeNode() *Node
	setTreeNode(*Node)
}

// TreeItem is the embeddable half of the Item contract. The node reference
// enables O(1) removal and move without searching the tree.
type TreeItem struct {
	node *Node
}

func (t *TreeItem) treeNode() *Node { return t.node }
func (t *TreeItem) setTreeNode(n *Node) { t.node = n }

// Attached reports whether the item currently lives in a tree.
func (t *TreeItem) Attached() bool { return t.node != nil }

// Node returns the node the item is stored at, or nil when unattached. Only
// valid between Swap calls.
func (t *TreeItem) Node() *Node { return t.node }
