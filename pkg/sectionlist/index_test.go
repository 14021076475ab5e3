package sectionlist

import (
	"reflect"
	"testing"
)

func makeIndex() *Index[string] {
	return NewIndex([][]string{
		{"apple", "banana", "cherry"},
		{"milk", "yogurt"},
	})
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic, got none", name)
		}
	}()
	fn()
}

func TestIndex_Shape(t *testing.T) {
	ix := makeIndex()
	if got := ix.SectionCount(); got != 2 {
		t.Fatalf("expected 2 sections, got %d", got)
	}
	if got := ix.RowCount(0); got != 3 {
		t.Fatalf("expected 3 rows in section 0, got %d", got)
	}
	if got := ix.RowCount(1); got != 2 {
		t.Fatalf("expected 2 rows in section 1, got %d", got)
	}
}

func TestIndex_FlatIsOneSection(t *testing.T) {
	ix := NewFlatIndex([]int{10, 20, 30})
	if got := ix.SectionCount(); got != 1 {
		t.Fatalf("expected 1 section, got %d", got)
	}
	if got := ix.ItemAt(Path(0, 2)); got != 30 {
		t.Fatalf("expected 30 at [0,2], got %d", got)
	}
}

func TestIndex_InsertShiftsLaterRows(t *testing.T) {
	ix := makeIndex()
	ix.Insert("apricot", Path(0, 1))

	want := []string{"apple", "apricot", "banana", "cherry"}
	if got := ix.Sections()[0]; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected section 0 after insert: %v", got)
	}
	if got := ix.ItemAt(Path(0, 1)); got != "apricot" {
		t.Fatalf("expected inserted item at [0,1], got %q", got)
	}
}

func TestIndex_InsertAtSectionLengthAppends(t *testing.T) {
	ix := makeIndex()
	ix.Insert("kefir", Path(1, 2))
	want := []string{"milk", "yogurt", "kefir"}
	if got := ix.Sections()[1]; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected section 1 after append insert: %v", got)
	}
}

func TestIndex_DeleteShiftsLaterRowsEarlier(t *testing.T) {
	ix := makeIndex()
	ix.Delete(Path(0, 0))

	want := []string{"banana", "cherry"}
	if got := ix.Sections()[0]; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected section 0 after delete: %v", got)
	}
	if got := ix.RowCount(0); got != 2 {
		t.Fatalf("expected row count to drop to 2, got %d", got)
	}
}

// Move deletes before it inserts, so a forward move within one section
// lands one row earlier than the stated destination.
func TestIndex_MoveForwardSameSectionLandsOneEarly(t *testing.T) {
	ix := NewIndex([][]string{{"a", "b", "c", "d"}})
	ix.Move(Path(0, 0), Path(0, 3))

	want := []string{"b", "c", "a", "d"}
	if got := ix.Sections()[0]; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected section after forward move: %v", got)
	}
	if got := ix.ItemAt(Path(0, 2)); got != "a" {
		t.Fatalf("expected moved item at [0,2], got %q", got)
	}
}

// Consequence of the shift: moving forward by exactly one row changes
// nothing.
func TestIndex_MoveForwardByOneIsNoop(t *testing.T) {
	ix := NewIndex([][]string{{"a", "b", "c", "d"}})
	ix.Move(Path(0, 1), Path(0, 2))

	want := []string{"a", "b", "c", "d"}
	if got := ix.Sections()[0]; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected adjacent forward move to be a no-op, got %v", got)
	}
}

func TestIndex_MoveBackwardSameSectionLandsExactly(t *testing.T) {
	ix := NewIndex([][]string{{"a", "b", "c", "d"}})
	ix.Move(Path(0, 3), Path(0, 1))

	want := []string{"a", "d", "b", "c"}
	if got := ix.Sections()[0]; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected section after backward move: %v", got)
	}
}

func TestIndex_MoveAcrossSectionsLandsExactly(t *testing.T) {
	ix := makeIndex()
	ix.Move(Path(1, 0), Path(0, 1))

	if got := ix.ItemAt(Path(0, 1)); got != "milk" {
		t.Fatalf("expected moved item exactly at [0,1], got %q", got)
	}
	want0 := []string{"apple", "milk", "banana", "cherry"}
	want1 := []string{"yogurt"}
	if got := ix.Sections()[0]; !reflect.DeepEqual(got, want0) {
		t.Fatalf("unexpected section 0 after cross-section move: %v", got)
	}
	if got := ix.Sections()[1]; !reflect.DeepEqual(got, want1) {
		t.Fatalf("unexpected section 1 after cross-section move: %v", got)
	}
}

func TestIndex_BoundsPanics(t *testing.T) {
	ix := makeIndex()
	mustPanic(t, "ItemAt section", func() { ix.ItemAt(Path(2, 0)) })
	mustPanic(t, "ItemAt row", func() { ix.ItemAt(Path(0, 3)) })
	mustPanic(t, "ItemAt negative row", func() { ix.ItemAt(Path(0, -1)) })
	mustPanic(t, "Delete row", func() { ix.Delete(Path(1, 2)) })
	mustPanic(t, "Insert past length", func() { ix.Insert("x", Path(1, 3)) })
	mustPanic(t, "RowCount section", func() { ix.RowCount(-1) })
}

// End-to-end walk through a full mutation sequence on one collection.
func TestIndex_MutationSequence(t *testing.T) {
	ix := NewIndex([][]string{{"a", "b"}, {"c"}})

	if got := ix.ItemAt(Path(0, 1)); got != "b" {
		t.Fatalf("expected %q at [0,1], got %q", "b", got)
	}

	ix.Delete(Path(0, 0))
	if got := ix.Sections()[0]; !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("unexpected section 0 after delete: %v", got)
	}

	ix.Insert("z", Path(1, 1))
	if got := ix.Sections()[1]; !reflect.DeepEqual(got, []string{"c", "z"}) {
		t.Fatalf("unexpected section 1 after insert: %v", got)
	}

	ix.Move(Path(1, 0), Path(0, 0))
	if got := ix.Sections()[0]; !reflect.DeepEqual(got, []string{"c", "b"}) {
		t.Fatalf("unexpected section 0 after move: %v", got)
	}
	if got := ix.Sections()[1]; !reflect.DeepEqual(got, []string{"z"}) {
		t.Fatalf("unexpected section 1 after move: %v", got)
	}
}

func TestIndex_SetSections(t *testing.T) {
	ix := makeIndex()
	ix.SetSections([][]string{{"x"}})
	if got := ix.SectionCount(); got != 1 {
		t.Fatalf("expected 1 section after SetSections, got %d", got)
	}
	ix.SetSections(nil)
	if got := ix.SectionCount(); got != 0 {
		t.Fatalf("expected 0 sections after SetSections(nil), got %d", got)
	}
}
