// Package serialize implements the optional pre-order JSON interchange
// format for a truth tree described in spec.md §6 "Optional serialization".
// It is a thin, test-friendly dump: one JSON object per branch, visited in
// the same pre-order the tree package's own downwards traversal uses, each
// carrying its statements rendered through ast.Statement.CanonicalString
// rather than a bespoke statement encoding.
//
// Like the teacher's spec/grammar.go and cmd/vartan/compile.go, which
// serialize a compiled grammar with stdlib encoding/json, this package
// reaches for encoding/json rather than a third-party codec: nothing in the
// retrieved example pack pulls in an external JSON library, so stdlib here
// matches the pack's own idiom instead of working around it.
package serialize

import (
	"encoding/json"

	"github.com/tableaulogic/tableau/tree"
)

// StatementDump is the JSON shape of one BranchNode.
type StatementDump struct {
	ID          string          `json:"id"`
	Statement   string          `json:"statement"`
	DerivedFrom *ProvenanceDump `json:"derived_from,omitempty"`
}

// ProvenanceDump is the JSON shape of a tree.Provenance pointer.
type ProvenanceDump struct {
	BranchID    string `json:"branch_id"`
	StatementID string `json:"statement_id"`
}

// BranchDump is the JSON shape of one tree.Branch, plus the parent
// relationship the tree package tracks internally but does not itself
// serialize.
type BranchDump struct {
	ID         string          `json:"id"`
	ParentID   string          `json:"parent_id,omitempty"`
	Closed     bool            `json:"closed"`
	Statements []StatementDump `json:"statements"`
}

// TreeDump is the JSON shape of an entire truth tree: its root id and every
// branch, in pre-order.
type TreeDump struct {
	RootID   string       `json:"root_id"`
	Branches []BranchDump `json:"branches"`
}

// Dump walks tt in pre-order from its root and builds a TreeDump.
func Dump(tt *tree.TruthTree) TreeDump {
	root := tt.MainTrunkID()
	dump := TreeDump{RootID: root.String()}

	for _, at := range tt.TraverseDownwardsBranches(root) {
		bd := BranchDump{
			ID:     at.ID.String(),
			Closed: at.Branch.IsClosed(),
		}
		if parentID, ok := tt.ParentID(at.ID); ok {
			bd.ParentID = parentID.String()
		}
		for _, sid := range at.Branch.StatementIDs() {
			node := at.Branch.StatementFromID(sid)
			sd := StatementDump{
				ID:        sid.String(),
				Statement: node.Statement.CanonicalString(),
			}
			if node.DerivedFrom != nil {
				sd.DerivedFrom = &ProvenanceDump{
					BranchID:    node.DerivedFrom.BranchID.String(),
					StatementID: node.DerivedFrom.StatementID.String(),
				}
			}
			bd.Statements = append(bd.Statements, sd)
		}
		dump.Branches = append(dump.Branches, bd)
	}
	return dump
}

// Marshal renders tt as indented JSON, matching the format cmd/vartan's
// compile/describe commands use for their own tree/grammar dumps.
func Marshal(tt *tree.TruthTree) ([]byte, error) {
	return json.MarshalIndent(Dump(tt), "", "  ")
}
