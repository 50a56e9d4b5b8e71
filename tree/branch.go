package tree

import "github.com/tableaulogic/tableau/ast"

// Provenance names where a derived BranchNode came from: the branch and
// statement id it was derived from. Seed statements (the initial premises
// and negated conclusion) carry no provenance.
type Provenance struct {
	BranchID    BranchID
	StatementID StatementID
}

// BranchNode is one statement living on a branch, together with the
// provenance pointer that produced it (spec.md §3 "Truth-tree entities").
type BranchNode struct {
	Statement   ast.Statement
	DerivedFrom *Provenance
}

type branchEntry struct {
	id   StatementID
	node BranchNode
}

// Branch is an ordered, appendable sequence of BranchNodes plus a monotonic
// closed flag. A Branch does not validate its own content against the
// tableau rules; that is the expansion algorithm's job (spec.md §4.E).
type Branch struct {
	entries []branchEntry
	index   map[StatementID]int
	closed  bool
}

// NewBranch constructs a branch seeded with nodes, preserving their order.
// nodes must be non-empty: every branch starts from at least one seed
// statement.
func NewBranch(nodes []BranchNode) *Branch {
	if len(nodes) == 0 {
		panic("tree: NewBranch requires at least one seed statement")
	}
	b := &Branch{index: make(map[StatementID]int, len(nodes))}
	for _, n := range nodes {
		b.appendNode(n)
	}
	return b
}

// AppendStatement appends node to the branch and returns a statement id
// unique within the branch, stable for the branch's lifetime.
//
// Panics if the branch is closed (spec.md §3 invariant 5).
func (b *Branch) AppendStatement(node BranchNode) StatementID {
	if b.closed {
		panic("tree: append to a closed branch")
	}
	return b.appendNode(node)
}

func (b *Branch) appendNode(node BranchNode) StatementID {
	id := newStatementID()
	b.index[id] = len(b.entries)
	b.entries = append(b.entries, branchEntry{id: id, node: node})
	return id
}

// Close sets the closed flag. Idempotent: closing an already-closed branch
// is a documented no-op (spec.md §9 glossary "Closed branch").
func (b *Branch) Close() {
	b.closed = true
}

// IsClosed reports the branch's closed flag.
func (b *Branch) IsClosed() bool {
	return b.closed
}

// StatementIDs returns the statement ids on this branch in insertion order.
func (b *Branch) StatementIDs() []StatementID {
	ids := make([]StatementID, len(b.entries))
	for i, e := range b.entries {
		ids[i] = e.id
	}
	return ids
}

// StatementFromID looks up a BranchNode by id.
//
// Panics if id does not name a statement on this branch.
func (b *Branch) StatementFromID(id StatementID) BranchNode {
	i, ok := b.index[id]
	if !ok {
		panic("tree: unknown statement id")
	}
	return b.entries[i].node
}

// Len returns the number of statements on the branch.
func (b *Branch) Len() int {
	return len(b.entries)
}
