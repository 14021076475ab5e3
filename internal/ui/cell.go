package ui

import (
	"github.com/oakwood-commons/ldx/pkg/sectionlist"
)

// ReuseKeyItem is the reuse key the demo widget registers its row cells
// under. The adapter dequeues with the same key it was constructed with.
const ReuseKeyItem = "item"

// Cell is the visual unit one row renders into. Cells carry display text
// only; styling is applied by the widget at render time. Cells are recycled
// through a CellPool rather than allocated per render pass.
type Cell struct {
	Text string
}

// CellPool recycles cells by reuse key, standing in for the cell registry a
// real widget toolkit keeps. It implements sectionlist.CellDequeuer for
// *Cell.
type CellPool struct {
	free      map[string][]*Cell
	allocated int
	reused    int
}

// NewCellPool returns an empty pool.
func NewCellPool() *CellPool {
	return &CellPool{free: map[string][]*Cell{}}
}

// DequeueCell pops a recycled cell registered under reuseKey, or allocates
// a fresh one. The returned cell is always reset to zero content.
func (p *CellPool) DequeueCell(reuseKey string, _ sectionlist.IndexPath) *Cell {
	if list := p.free[reuseKey]; len(list) > 0 {
		cell := list[len(list)-1]
		p.free[reuseKey] = list[:len(list)-1]
		p.reused++
		*cell = Cell{}
		return cell
	}
	p.allocated++
	return &Cell{}
}

// Recycle returns cells to the pool under the given key for later reuse.
func (p *CellPool) Recycle(reuseKey string, cells ...*Cell) {
	p.free[reuseKey] = append(p.free[reuseKey], cells...)
}

// Stats reports allocation traffic: fresh allocations and reuses.
func (p *CellPool) Stats() (allocated, reused int) {
	return p.allocated, p.reused
}
