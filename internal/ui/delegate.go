package ui

import (
	"github.com/oakwood-commons/ldx/pkg/sectionlist"
)

// NewEditingDelegate returns the delegate the demo installs on its adapter:
// every row is editable, edit and reorder gestures forward to the adapter's
// mutation surface, and the section index is built from the first rune of
// each header title. The caller owns the returned delegate; the adapter
// only borrows it.
func NewEditingDelegate(a *sectionlist.Adapter[string, *Cell], headers []string) *sectionlist.Delegate[string, *Cell] {
	return &sectionlist.Delegate[string, *Cell]{
		CanEditRow: func(sectionlist.IndexPath) bool { return true },
		CommitEdit: func(op sectionlist.EditOp, p sectionlist.IndexPath) {
			if op == sectionlist.EditDelete {
				a.Delete(p)
			}
		},
		MoveRow: a.Move,
		SectionIndexTitles: func() []string {
			titles := make([]string, len(headers))
			for i, h := range headers {
				if h == "" {
					titles[i] = "·"
					continue
				}
				titles[i] = string([]rune(h)[:1])
			}
			return titles
		},
		// Index entries are positional, one per section, so the entry's own
		// position is the answer.
		SectionForIndexTitle: func(_ string, index int) int { return index },
	}
}
