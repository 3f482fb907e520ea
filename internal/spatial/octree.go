package spatial

import (
	"sync"
	"time"
)

// DefaultMaxDepth bounds subdivision when no explicit depth is configured.
const DefaultMaxDepth = 8

type mutationOp int

const (
	opAdd mutationOp = iota
	opRemove
	opMove
)

func (op mutationOp) String() string {
	switch op {
	case opAdd:
		return "add"
	case opRemove:
		return "remove"
	case opMove:
		return "move"
	}
	return "unknown"
}

type mutation struct {
	op   mutationOp
	item Item
}

type raycastRequest struct {
	seg        Segment
	results    *HitSet
	test       DirectTest
	onComplete func(*HitSet)
}

// Octree is a dynamic spatial index over axis-aligned bounded items.
//
// Mutations and raycasts enqueue from any goroutine; Swap is the single
// synchronization point that drains them into the live tree, expected once
// per tick from the owning goroutine. Read traversals (CollectVisible,
// FindFirst/All, DebugRender, Raycast) go straight at the structure and must
// not overlap a Swap or Remake — that discipline is the caller's, matching
// the single-writer tick loop this index is built for.
type Octree struct {
	root      *Node
	maxDepth  int
	nodeCount int

	mu               sync.Mutex
	pendingMutations []mutation
	pendingRaycasts  []raycastRequest
}

// NewOctree builds a tree spanning bounds. maxDepth <= 0 selects
// DefaultMaxDepth.
func NewOctree(bounds Region, maxDepth int) *Octree {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	t := &Octree{maxDepth: maxDepth, nodeCount: 1}
	t.root = &Node{tree: t, bounds: bounds, octant: -1}
	return t
}

func (t *Octree) Root() *Node { return t.root }
func (t *Octree) MaxDepth() int { return t.maxDepth }

// Len returns the number of items currently attached to the tree.
func (t *Octree) Len() int { return t.root.subtreeItems }

// NodeCount returns the number of live nodes, root included.
func (t *Octree) NodeCount() int { return t.nodeCount }

// Add queues the item for insertion at the next Swap. Safe to call from any
// goroutine.
func (t *Octree) Add(it Item) { t.enqueue(opAdd, it) }

// Remove queues the item for removal at the next Swap. Removing an item that
// is not attached by then is a no-op.
func (t *Octree) Remove(it Item) { t.enqueue(opRemove, it) }

// Move queues a re-validation of the item's placement after its bounds
// changed. Moving an unattached item is a no-op.
func (t *Octree) Move(it Item) { t.enqueue(opMove, it) }

func (t *Octree) enqueue(op mutationOp, it Item) {
	t.mu.Lock()
	t.pendingMutations = append(t.pendingMutations, mutation{op: op, item: it})
	t.mu.Unlock()
	instrumentMutationQueued(op)
}

// RaycastAsync queues a raycast resolved during the next Swap. The
// accumulator must not be read before onComplete fires.
func (t *Octree) RaycastAsync(seg Segment, results *HitSet, test DirectTest, onComplete func(*HitSet)) {
	t.mu.Lock()
	t.pendingRaycasts = append(t.pendingRaycasts, raycastRequest{
		seg:        seg,
		results:    results,
		test:       test,
		onComplete: onComplete,
	})
	t.mu.Unlock()
}

// Swap drains the pending mutation queue FIFO against the live tree, then
// resolves pending raycasts. Exactly one goroutine may call Swap at a time,
// and never concurrently with read traversals or Remake. Requests enqueued
// while Swap runs wait for the next Swap.
func (t *Octree) Swap() {
	start := time.Now()

	t.mu.Lock()
	muts := t.pendingMutations
	rays := t.pendingRaycasts
	t.pendingMutations = nil
	t.pendingRaycasts = nil
	t.mu.Unlock()

	for _, m := range muts {
		t.apply(m)
	}
	for _, r := range rays {
		t.root.Raycast(r.seg, r.results, r.test)
		if r.onComplete != nil {
			r.onComplete(r.results)
		}
	}

	instrumentSwap(time.Since(start), len(muts), len(rays), t.root.subtreeItems, t.nodeCount)
}

func (t *Octree) apply(m mutation) {
	switch m.op {
	case opAdd:
		if m.item.treeNode() != nil {
			return // already attached; duplicate Add requests are tolerated
		}
		if !t.root.tryInsert(m.item, m.item.Bounds()) {
			// Outside the world bounds or degenerate bounds: the root keeps
			// it rather than rejecting the mutation.
			t.root.attach(m.item)
		}
	case opRemove:
		node := m.item.treeNode()
		if node == nil {
			return
		}
		node.detach(m.item)
		node.collapse()
	case opMove:
		node := m.item.treeNode()
		if node == nil {
			return
		}
		node.handleMovedItem(m.item)
	}
}

// Remake rebuilds the tree inside newBounds: every attached item is
// collected, the old hierarchy is discarded, and the items are reinserted
// into a fresh root. Used when the world's overall extents change. Not safe
// to call concurrently with Swap or read traversals.
func (t *Octree) Remake(newBounds Region) {
	var items []Item
	t.root.CollectAll(func(it Item) {
		items = append(items, it)
	})

	t.root = &Node{tree: t, bounds: newBounds, octant: -1}
	t.nodeCount = 1

	for _, it := range items {
		it.setTreeNode(nil)
		if !t.root.tryInsert(it, it.Bounds()) {
			t.root.attach(it)
		}
	}
}

// CollectVisible runs a culling traversal from the root. See Node.CollectVisible.
func (t *Octree) CollectVisible(vol *Volume, onlyContainingItems bool, visit VisitFunc, test IntersectionTest) {
	t.root.CollectVisible(vol, onlyContainingItems, visit, test)
}

// FindFirst runs a predicate search from the root. See Node.FindFirst.
func (t *Octree) FindFirst(itemTest ItemPredicate, nodeTest NodePredicate) (Item, *Node) {
	return t.root.FindFirst(itemTest, nodeTest)
}

// FindAll runs a predicate collection from the root. See Node.FindAll.
func (t *Octree) FindAll(itemTest ItemPredicate, nodeTest NodePredicate, visit VisitFunc) {
	t.root.FindAll(itemTest, nodeTest, visit)
}

// CollectAll visits every attached item.
func (t *Octree) CollectAll(visit func(Item)) {
	t.root.CollectAll(visit)
}

// DebugRender draws the node hierarchy. See Node.DebugRender.
func (t *Octree) DebugRender(skipEmpty bool, frustum *Frustum, render DebugRenderFunc) {
	t.root.DebugRender(skipEmpty, frustum, render)
}
