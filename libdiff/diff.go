// Package libdiff produces textual diffs between two IR trees.
//
// Trees are rendered to canonical JSON and diffed line-wise; since
// canonical text is single-line, the unit of difference is the whole
// document for equal/unequal roots and substrings within it otherwise.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
)

// Diff computes the edits turning the canonical text of from into the
// canonical text of to.
func Diff(from, to *ir.Node) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(encode.MustString(from), encode.MustString(to), false)
	return diffCfg.DiffCleanupSemantic(diffs)
}

// Format renders diffs in an inline +/- notation. color selects
// terminal coloring of inserted and deleted spans.
func Format(diffs []diffpatch.Diff, colors *Colors) string {
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		case diffpatch.DiffDelete:
			sb.WriteString(colors.Delete("[-" + d.Text + "-]"))
		case diffpatch.DiffInsert:
			sb.WriteString(colors.Insert("{+" + d.Text + "+}"))
		}
	}
	return sb.String()
}

// Equal reports whether the diffs contain no edits.
func Equal(diffs []diffpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			return false
		}
	}
	return true
}
