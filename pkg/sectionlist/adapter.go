package sectionlist

import (
	"github.com/go-logr/logr"
)

// Adapter implements a list widget's full data-provider contract over an
// Index. Every contract method resolves in two steps: ask the installed
// Delegate hook if there is one, otherwise compute the default from the
// Index. Dispatch is stateless per call; the adapter keeps no transient
// state between contract calls.
//
// The adapter never mutates its Index in response to a widget callback.
// Edit commits and reorders are delegate-driven: the hosting widget reports
// the gesture through CommitEdit/MoveRow and the delegate (or the owning
// controller, via the Delete/Insert/Move helpers) decides what changes.
// Refreshing the widget after a mutation is likewise the owner's job.
//
// Type parameter V is the element type; the adapter never inspects item
// content, only positions. C is the widget's cell type, produced by a
// CellDequeuer and populated by the presentation callback.
type Adapter[V any, C any] struct {
	index     *Index[V]
	reuseKey  string
	configure func(cell C, item V)

	// delegate is non-owning; the owner may install, replace, or clear it
	// at any time between contract calls.
	delegate *Delegate[V, C]

	headerTitles []string
	footerTitles []string

	log logr.Logger
}

// New creates an Adapter over a flat item list treated as one section.
// configure, if non-nil, is invoked with every dequeued cell and the item
// it is about to display.
func New[V any, C any](items []V, reuseKey string, configure func(cell C, item V)) *Adapter[V, C] {
	return NewSectioned([][]V{items}, reuseKey, configure)
}

// NewSectioned creates an Adapter over pre-sectioned items.
func NewSectioned[V any, C any](sections [][]V, reuseKey string, configure func(cell C, item V)) *Adapter[V, C] {
	return &Adapter[V, C]{
		index:     NewIndex(sections),
		reuseKey:  reuseKey,
		configure: configure,
		log:       logr.Discard(),
	}
}

// Index exposes the underlying Index for owners that address it directly.
func (a *Adapter[V, C]) Index() *Index[V] {
	return a.index
}

// ReuseKey returns the cell reuse key the adapter dequeues with.
func (a *Adapter[V, C]) ReuseKey() string {
	return a.reuseKey
}

// SetDelegate installs (or, with nil, clears) the delegate. The adapter
// holds the pointer without owning it.
func (a *Adapter[V, C]) SetDelegate(d *Delegate[V, C]) {
	a.delegate = d
}

// Delegate returns the currently installed delegate, or nil.
func (a *Adapter[V, C]) Delegate() *Delegate[V, C] {
	return a.delegate
}

// SetHeaderTitles installs the per-section header titles consulted when the
// delegate does not supply one. One slot per section, positionally.
func (a *Adapter[V, C]) SetHeaderTitles(titles []string) {
	a.headerTitles = titles
}

// SetFooterTitles installs the per-section footer titles. See
// SetHeaderTitles.
func (a *Adapter[V, C]) SetFooterTitles(titles []string) {
	a.footerTitles = titles
}

// SetLogger replaces the adapter's logger. The default discards everything;
// mutation helpers log at verbosity 1.
func (a *Adapter[V, C]) SetLogger(log logr.Logger) {
	a.log = log
}

// NumberOfSections reports the section count: the delegate's answer if
// overridden, else the Index's actual shape.
func (a *Adapter[V, C]) NumberOfSections() int {
	if d := a.delegate; d != nil && d.NumberOfSections != nil {
		return d.NumberOfSections()
	}
	return a.index.SectionCount()
}

// NumberOfRows reports the row count for a section.
func (a *Adapter[V, C]) NumberOfRows(section int) int {
	if d := a.delegate; d != nil && d.NumberOfRows != nil {
		return d.NumberOfRows(section)
	}
	return a.index.RowCount(section)
}

// CellFor produces the cell for path. Resolution order: a delegate hook
// that accepts the path wins; otherwise the adapter dequeues a cell by its
// reuse key, resolves the item, and runs the presentation callback if one
// was supplied at construction.
func (a *Adapter[V, C]) CellFor(dq CellDequeuer[C], path IndexPath) C {
	if d := a.delegate; d != nil && d.CellFor != nil {
		if cell, ok := d.CellFor(dq, path); ok {
			return cell
		}
	}
	cell := dq.DequeueCell(a.reuseKey, path)
	item := a.index.ItemAt(path)
	if a.configure != nil {
		a.configure(cell, item)
	}
	return cell
}

// CanEditRow reports whether the row supports editing. Default false.
func (a *Adapter[V, C]) CanEditRow(path IndexPath) bool {
	if d := a.delegate; d != nil && d.CanEditRow != nil {
		return d.CanEditRow(path)
	}
	return false
}

// CanMoveRow reports whether the row supports reordering. Default true.
func (a *Adapter[V, C]) CanMoveRow(path IndexPath) bool {
	if d := a.delegate; d != nil && d.CanMoveRow != nil {
		return d.CanMoveRow(path)
	}
	return true
}

// CommitEdit forwards an editing gesture to the delegate. Without a hook it
// is a no-op; the adapter attaches no default side effect.
func (a *Adapter[V, C]) CommitEdit(op EditOp, path IndexPath) {
	if d := a.delegate; d != nil && d.CommitEdit != nil {
		d.CommitEdit(op, path)
	}
}

// MoveRow forwards a reorder gesture to the delegate. No-op without a hook.
func (a *Adapter[V, C]) MoveRow(from, to IndexPath) {
	if d := a.delegate; d != nil && d.MoveRow != nil {
		d.MoveRow(from, to)
	}
}

// SectionIndexTitles returns the entries of the widget's section index bar,
// or nil when neither the delegate nor a default provides any.
func (a *Adapter[V, C]) SectionIndexTitles() []string {
	if d := a.delegate; d != nil && d.SectionIndexTitles != nil {
		return d.SectionIndexTitles()
	}
	return nil
}

// SectionForIndexTitle maps a section index bar entry to a section number,
// or -1 when no delegate hook answers.
func (a *Adapter[V, C]) SectionForIndexTitle(title string, index int) int {
	if d := a.delegate; d != nil && d.SectionForIndexTitle != nil {
		return d.SectionForIndexTitle(title, index)
	}
	return -1
}

// HeaderTitle returns the header title for a section. The delegate is
// consulted first; when it declines or is absent, the positional title
// list answers. ok is false when neither supplies one, including when
// section exceeds the title list.
func (a *Adapter[V, C]) HeaderTitle(section int) (string, bool) {
	if d := a.delegate; d != nil && d.HeaderTitle != nil {
		if title, ok := d.HeaderTitle(section); ok {
			return title, true
		}
	}
	return titleAt(a.headerTitles, section)
}

// FooterTitle returns the footer title for a section. See HeaderTitle.
func (a *Adapter[V, C]) FooterTitle(section int) (string, bool) {
	if d := a.delegate; d != nil && d.FooterTitle != nil {
		if title, ok := d.FooterTitle(section); ok {
			return title, true
		}
	}
	return titleAt(a.footerTitles, section)
}

// ItemAt resolves an item through the underlying Index.
func (a *Adapter[V, C]) ItemAt(path IndexPath) V {
	return a.index.ItemAt(path)
}

// Delete removes the item at path. Exposed for the delegate or owning
// controller; never invoked from a contract method.
func (a *Adapter[V, C]) Delete(path IndexPath) {
	a.log.V(1).Info("delete item", "path", path.String())
	a.index.Delete(path)
}

// Insert places item at path. See Delete for the calling contract.
func (a *Adapter[V, C]) Insert(item V, path IndexPath) {
	a.log.V(1).Info("insert item", "path", path.String())
	a.index.Insert(item, path)
}

// Move relocates the item at from to to, with the Index's delete-then-
// insert semantics (same-section forward moves land one row early).
func (a *Adapter[V, C]) Move(from, to IndexPath) {
	a.log.V(1).Info("move item", "from", from.String(), "to", to.String())
	a.index.Move(from, to)
}

// titleAt treats titles as a positional lookup that simply has no answer
// out of bounds, mirroring how a widget asks about sections the title list
// never covered.
func titleAt(titles []string, section int) (string, bool) {
	if section < 0 || section >= len(titles) {
		return "", false
	}
	return titles[section], true
}
