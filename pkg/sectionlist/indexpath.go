package sectionlist

import "fmt"

// IndexPath identifies one item's position in a sectioned collection as a
// (section, row) coordinate pair. A path carries no reference to the
// collection it was minted for; it is resolved against current collection
// state at the moment of use, so paths captured before a mutation are stale
// and must not be reused.
type IndexPath struct {
	Section int
	Row     int
}

// Path builds an IndexPath. Shorthand for struct literals at call sites.
func Path(section, row int) IndexPath {
	return IndexPath{Section: section, Row: row}
}

// String renders the path as "[section, row]" for logs and panic messages.
func (p IndexPath) String() string {
	return fmt.Sprintf("[%d, %d]", p.Section, p.Row)
}
