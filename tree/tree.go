package tree

// BranchAtID pairs a branch id with the branch it names, the value yielded
// by the traversals that expose both (spec.md §4.F).
type BranchAtID struct {
	ID     BranchID
	Branch *Branch
}

// TruthTree is a rooted tree of Branches (spec.md §3 "Truth-tree entities").
// It owns every Branch reachable from its root; branches are inserted under
// existing branches and are never removed or reparented.
type TruthTree struct {
	root     BranchID
	branches map[BranchID]*Branch
	parent   map[BranchID]BranchID
	children map[BranchID][]BranchID
}

// New constructs a tree whose single root is rootBranch.
func New(rootBranch *Branch) *TruthTree {
	root := newBranchID()
	return &TruthTree{
		root:     root,
		branches: map[BranchID]*Branch{root: rootBranch},
		parent:   map[BranchID]BranchID{},
		children: map[BranchID][]BranchID{root: nil},
	}
}

// MainTrunkID returns the id of the tree's root branch.
func (t *TruthTree) MainTrunkID() BranchID {
	return t.root
}

func (t *TruthTree) mustExist(id BranchID) {
	if _, ok := t.branches[id]; !ok {
		panic("tree: invalid branch id")
	}
}

// BranchFromID returns the Branch named by id.
//
// Panics if id does not name a branch in this tree.
func (t *TruthTree) BranchFromID(id BranchID) *Branch {
	t.mustExist(id)
	return t.branches[id]
}

// AppendBranchAt inserts child as a new, ordered last child of parentID and
// returns its id.
//
// Panics if parentID is unknown or closed (spec.md §3 invariant 5).
func (t *TruthTree) AppendBranchAt(child *Branch, parentID BranchID) BranchID {
	t.mustExist(parentID)
	if t.branches[parentID].IsClosed() {
		panic("tree: attempt to add child to a closed branch")
	}
	id := newBranchID()
	t.branches[id] = child
	t.parent[id] = parentID
	t.children[id] = nil
	t.children[parentID] = append(t.children[parentID], id)
	return id
}

// ParentID returns the id of id's parent branch and true, or the zero
// BranchID and false if id is the root.
func (t *TruthTree) ParentID(id BranchID) (BranchID, bool) {
	t.mustExist(id)
	parent, ok := t.parent[id]
	return parent, ok
}

// BranchIsLeaf reports whether id has no children.
func (t *TruthTree) BranchIsLeaf(id BranchID) bool {
	t.mustExist(id)
	return len(t.children[id]) == 0
}

// TraverseUpwardsBranchIDs returns id, then its parent, ..., up to the root.
func (t *TruthTree) TraverseUpwardsBranchIDs(id BranchID) []BranchID {
	t.mustExist(id)
	ids := []BranchID{id}
	cur := id
	for {
		parent, ok := t.parent[cur]
		if !ok {
			return ids
		}
		ids = append(ids, parent)
		cur = parent
	}
}

// TraverseUpwardsBranches is TraverseUpwardsBranchIDs with each id resolved
// to its Branch.
func (t *TruthTree) TraverseUpwardsBranches(id BranchID) []BranchAtID {
	return t.resolve(t.TraverseUpwardsBranchIDs(id))
}

// TraverseDownwardsBranchIDs returns a pre-order (self, then children
// left-to-right, recursively) sequence of ids rooted at id.
func (t *TruthTree) TraverseDownwardsBranchIDs(id BranchID) []BranchID {
	t.mustExist(id)
	var out []BranchID
	var walk func(BranchID)
	walk = func(cur BranchID) {
		out = append(out, cur)
		for _, c := range t.children[cur] {
			walk(c)
		}
	}
	walk(id)
	return out
}

// TraverseDownwardsBranches is TraverseDownwardsBranchIDs with each id
// resolved to its Branch.
func (t *TruthTree) TraverseDownwardsBranches(id BranchID) []BranchAtID {
	return t.resolve(t.TraverseDownwardsBranchIDs(id))
}

// TraverseBranchDirectDescendantsIDs returns the direct-child ids of id in
// insertion order.
func (t *TruthTree) TraverseBranchDirectDescendantsIDs(id BranchID) []BranchID {
	t.mustExist(id)
	out := make([]BranchID, len(t.children[id]))
	copy(out, t.children[id])
	return out
}

// TraverseBranchDirectDescendants is TraverseBranchDirectDescendantsIDs with
// each id resolved to its Branch.
func (t *TruthTree) TraverseBranchDirectDescendants(id BranchID) []BranchAtID {
	return t.resolve(t.TraverseBranchDirectDescendantsIDs(id))
}

func (t *TruthTree) resolve(ids []BranchID) []BranchAtID {
	out := make([]BranchAtID, len(ids))
	for i, id := range ids {
		out[i] = BranchAtID{ID: id, Branch: t.branches[id]}
	}
	return out
}

// IsOpen reports whether at least one leaf branch in the tree is not
// closed.
func (t *TruthTree) IsOpen() bool {
	for _, id := range t.TraverseDownwardsBranchIDs(t.root) {
		if t.BranchIsLeaf(id) && !t.branches[id].IsClosed() {
			return true
		}
	}
	return false
}
