// Package sectionlist binds an ordered, sectioned collection of arbitrary
// items to the data-provider contract of a list or table widget. The Index
// owns the two-level collection and its position-addressed mutations; the
// Adapter wraps an Index and answers every contract method a hosting widget
// asks, letting an optional Delegate override any answer selectively.
package sectionlist

import (
	"fmt"
	"slices"
)

// Index owns a two-level ordered collection: sections, each an ordered
// sequence of items of a single element type V. Section order and insertion
// order within a section are significant and preserved.
//
// Index provides no internal synchronization. Like the widgets it feeds, it
// expects all reads and mutations from one designated goroutine.
//
// Every method addressed by an IndexPath panics when the section or row is
// out of bounds of the current shape. An out-of-range path means the caller
// and the collection have desynchronized, which is a programming error, not
// a runtime condition to recover from.
type Index[V any] struct {
	sections [][]V
}

// NewIndex creates an Index over pre-sectioned items. The outer and inner
// slices are adopted, not copied; the caller hands over ownership.
func NewIndex[V any](sections [][]V) *Index[V] {
	if sections == nil {
		sections = [][]V{}
	}
	return &Index[V]{sections: sections}
}

// NewFlatIndex wraps a flat item list as a single section.
func NewFlatIndex[V any](items []V) *Index[V] {
	return &Index[V]{sections: [][]V{items}}
}

// SectionCount returns the number of sections.
func (ix *Index[V]) SectionCount() int {
	return len(ix.sections)
}

// RowCount returns the number of items in the given section.
func (ix *Index[V]) RowCount(section int) int {
	ix.mustSection(section)
	return len(ix.sections[section])
}

// Sections exposes the underlying storage. Mutating the result mutates the
// Index; owners use this for wholesale replacement or inspection.
func (ix *Index[V]) Sections() [][]V {
	return ix.sections
}

// SetSections replaces the entire collection. As with NewIndex the slices
// are adopted, not copied.
func (ix *Index[V]) SetSections(sections [][]V) {
	if sections == nil {
		sections = [][]V{}
	}
	ix.sections = sections
}

// ItemAt returns the item at the given coordinate.
func (ix *Index[V]) ItemAt(p IndexPath) V {
	ix.mustRow(p)
	return ix.sections[p.Section][p.Row]
}

// Delete removes the item at the given coordinate. Later items in the same
// section shift one row earlier.
func (ix *Index[V]) Delete(p IndexPath) {
	ix.mustRow(p)
	ix.sections[p.Section] = slices.Delete(ix.sections[p.Section], p.Row, p.Row+1)
}

// Insert places item at the given coordinate. Items at and after the
// insertion row shift one row later. A row equal to the section's current
// length is valid and appends.
func (ix *Index[V]) Insert(item V, p IndexPath) {
	ix.mustInsertRow(p)
	ix.sections[p.Section] = slices.Insert(ix.sections[p.Section], p.Row, item)
}

// Move reads the item at from, deletes it there, then inserts it at to.
// Because the delete happens first, a move within one section toward a
// higher row finds its destination slot shifted one to the left, so the
// item lands at to.Row-1: after Move([0,0], [0,3]) the item sits at row 2,
// and moving a row forward by exactly one is a no-op. Cross-section and
// backward moves land exactly at to. This delete-then-insert order is
// contractual; callers that want "land exactly at to" for forward moves
// must compensate themselves.
func (ix *Index[V]) Move(from, to IndexPath) {
	item := ix.ItemAt(from)
	ix.Delete(from)
	if to.Section == from.Section && to.Row > from.Row {
		to.Row--
	}
	ix.Insert(item, to)
}

func (ix *Index[V]) mustSection(section int) {
	if section < 0 || section >= len(ix.sections) {
		panic(fmt.Sprintf("sectionlist: section %d out of range [0, %d)", section, len(ix.sections)))
	}
}

func (ix *Index[V]) mustRow(p IndexPath) {
	ix.mustSection(p.Section)
	if p.Row < 0 || p.Row >= len(ix.sections[p.Section]) {
		panic(fmt.Sprintf("sectionlist: row %d out of range [0, %d) in section %d", p.Row, len(ix.sections[p.Section]), p.Section))
	}
}

func (ix *Index[V]) mustInsertRow(p IndexPath) {
	ix.mustSection(p.Section)
	if p.Row < 0 || p.Row > len(ix.sections[p.Section]) {
		panic(fmt.Sprintf("sectionlist: insert row %d out of range [0, %d] in section %d", p.Row, len(ix.sections[p.Section]), p.Section))
	}
}
