package timeseries

import (
	"errors"
	"slices"
	"testing"
)

func days(n int) []Date {
	ds := make([]Date, n)
	for i := range ds {
		ds[i] = NewDate(2024, 1, 2+i)
	}
	return ds
}

func TestAddColumn(t *testing.T) {
	table := NewTable(days(3))

	if err := table.AddColumn("GOOG", []float64{1, 2, 3}); err != nil {
		t.Fatalf("AddColumn() unexpected error = %v", err)
	}
	if err := table.AddColumn("GOOG", []float64{4, 5, 6}); !errors.Is(err, ErrDuplicateLabel) {
		t.Errorf("AddColumn() duplicate label error = %v, want ErrDuplicateLabel", err)
	}
	if err := table.AddColumn("AMZN", []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("AddColumn() short column error = %v, want ErrLengthMismatch", err)
	}

	col, ok := table.Column("GOOG")
	if !ok || !slices.Equal(col, []float64{1, 2, 3}) {
		t.Errorf("Column(GOOG) = %v, %v", col, ok)
	}
	if _, ok := table.Column("MSFT"); ok {
		t.Error("Column(MSFT) found a column that was never added")
	}
}

func TestColumnIsACopy(t *testing.T) {
	table := NewTable(days(2))
	src := []float64{1, 2}
	table.AddColumn("GOOG", src)

	src[0] = 99
	col, _ := table.Column("GOOG")
	if col[0] != 1 {
		t.Error("AddColumn() retained the caller's slice")
	}
	col[1] = 99
	again, _ := table.Column("GOOG")
	if again[1] != 2 {
		t.Error("Column() exposed the internal slice")
	}
}

func TestSelect(t *testing.T) {
	table := NewTable(days(2))
	table.AddColumn("A", []float64{1, 2})
	table.AddColumn("B", []float64{3, 4})
	table.AddColumn("C", []float64{5, 6})

	s, err := table.Select("C", "A")
	if err != nil {
		t.Fatalf("Select() unexpected error = %v", err)
	}
	if !slices.Equal(s.Labels(), []string{"C", "A"}) {
		t.Errorf("Select() labels = %v, want [C A]", s.Labels())
	}

	if _, err := table.Select("A", "Z"); !errors.Is(err, ErrMissingLabel) {
		t.Errorf("Select() missing label error = %v, want ErrMissingLabel", err)
	}
}

func TestSliceContaining(t *testing.T) {
	table := NewTable(days(2))
	table.AddColumn("GOOG.US - Adj. Close", []float64{1, 2})
	table.AddColumn("AMZN.US - Adj. Close", []float64{3, 4})

	s := table.SliceContaining("GOOG")
	if s.NumColumns() != 1 || s.Labels()[0] != "GOOG.US - Adj. Close" {
		t.Errorf("SliceContaining(GOOG) labels = %v", s.Labels())
	}
	if empty := table.SliceContaining("MSFT"); empty.NumColumns() != 0 {
		t.Errorf("SliceContaining(MSFT) = %v, want empty", empty.Labels())
	}
}

func TestRename(t *testing.T) {
	table := NewTable(days(1))
	table.AddColumn("GOOG.US", []float64{1})
	table.Rename("GOOG.US", "GOOG")
	if _, ok := table.Column("GOOG"); !ok {
		t.Error("Rename() did not rename the column")
	}
	table.Rename("MSFT", "X") // no-op
	if table.NumColumns() != 1 {
		t.Error("Rename() of a missing label changed the table")
	}
}

func TestRows(t *testing.T) {
	table := NewTable(days(3))
	table.AddColumn("A", []float64{1, 2, 3})
	table.AddColumn("B", []float64{4, 5, 6})

	var got []float64
	var dates []Date
	for on, row := range table.Rows() {
		dates = append(dates, on)
		got = append(got, row...)
	}
	if !slices.Equal(dates, days(3)) {
		t.Errorf("Rows() dates = %v", dates)
	}
	if !slices.Equal(got, []float64{1, 4, 2, 5, 3, 6}) {
		t.Errorf("Rows() values = %v", got)
	}
}

func TestCloneAndEqual(t *testing.T) {
	table := NewTable(days(2))
	table.AddColumn("A", []float64{1, 2})

	c := table.Clone()
	if !table.Equal(c) {
		t.Error("Clone() is not Equal() to the original")
	}
	c.Rename("A", "B")
	if table.Equal(c) {
		t.Error("Equal() ignores labels")
	}
}
