// Package tree implements the rooted, mutable tree of branches from
// spec.md §4.F: branches are inserted under existing branches and never
// removed or reparented, and the tree hands out tree-scoped stable
// identifiers rather than exposing pointers into its internal storage.
//
// Where the teacher's grammar packages hand out dense integer ids from a
// symbol table (grammar/symbol.SymbolTable), a truth tree is grown
// incrementally by an external tableau algorithm and branches may be
// inserted in any order, so ids here are opaque, collision-free values
// minted on demand (google/uuid) rather than slice indices.
package tree

import "github.com/google/uuid"

// BranchID uniquely identifies a branch for the lifetime of its owning
// TruthTree (spec.md §3 "Identifier stability").
type BranchID struct {
	id uuid.UUID
}

func newBranchID() BranchID {
	return BranchID{id: uuid.New()}
}

func (b BranchID) String() string {
	return b.id.String()
}

// StatementID uniquely identifies a BranchNode within the Branch that owns
// it.
type StatementID struct {
	id uuid.UUID
}

func newStatementID() StatementID {
	return StatementID{id: uuid.New()}
}

func (s StatementID) String() string {
	return s.id.String()
}
