package sectionlist

// EditOp identifies the editing gesture the hosting widget committed for a
// row. It is carried through CommitEdit unchanged; the adapter attaches no
// built-in behavior to any value.
type EditOp int

const (
	// EditNone is the zero value; no edit.
	EditNone EditOp = iota
	// EditDelete asks the delegate to remove the row at the given path.
	EditDelete
	// EditInsert asks the delegate to add a row at the given path.
	EditInsert
)

// String returns the string representation of an EditOp.
func (op EditOp) String() string {
	switch op {
	case EditNone:
		return "None"
	case EditDelete:
		return "Delete"
	case EditInsert:
		return "Insert"
	default:
		return "Unknown"
	}
}

// CellDequeuer is the hosting widget's cell-recycling surface. The widget
// owns cell creation and reuse; the adapter only requests a cell by the
// reuse key it was configured with and never constructs the visual object
// itself.
type CellDequeuer[C any] interface {
	// DequeueCell returns a blank or recycled cell registered under
	// reuseKey, about to be displayed at path.
	DequeueCell(reuseKey string, path IndexPath) C
}

// Delegate offers selective overrides of the Adapter's default answers,
// one optional hook per contract method. A nil field means "not
// overridden": the adapter computes its default from the Index instead.
// Any subset of fields may be set.
//
// The adapter never owns its delegate. The owner installs one with
// Adapter.SetDelegate and may clear or replace it at any time; the adapter
// checks for presence on every dispatch and silently falls back to
// defaults when the delegate (or an individual hook) is absent.
type Delegate[V any, C any] struct {
	// NumberOfSections overrides the section count. The returned value is
	// authoritative even when it disagrees with the Index's actual shape.
	NumberOfSections func() int

	// NumberOfRows overrides the row count for a section.
	NumberOfRows func(section int) int

	// CellFor supplies a ready-made cell. An installed hook can still
	// decline a particular path by returning ok=false, in which case the
	// adapter dequeues and configures a cell as if the hook were absent.
	CellFor func(dq CellDequeuer[C], path IndexPath) (cell C, ok bool)

	// CanEditRow overrides edit capability (adapter default: false).
	CanEditRow func(path IndexPath) bool

	// CanMoveRow overrides move capability (adapter default: true).
	CanMoveRow func(path IndexPath) bool

	// CommitEdit performs the side effect of an editing gesture. There is
	// no default side effect; without this hook the gesture is a no-op.
	CommitEdit func(op EditOp, path IndexPath)

	// MoveRow performs the side effect of a reorder gesture. As with
	// CommitEdit there is no default side effect.
	MoveRow func(from, to IndexPath)

	// SectionIndexTitles supplies the widget's section index bar entries
	// (adapter default: nil, no bar).
	SectionIndexTitles func() []string

	// SectionForIndexTitle maps an index bar entry back to a section
	// (adapter default: -1).
	SectionForIndexTitle func(title string, index int) int

	// HeaderTitle and FooterTitle supply per-section titles. Returning
	// ok=false declines, letting the adapter consult its title lists.
	HeaderTitle func(section int) (title string, ok bool)
	FooterTitle func(section int) (title string, ok bool)
}
