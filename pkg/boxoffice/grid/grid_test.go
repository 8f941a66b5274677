package grid

import "testing"

func TestMemoryOutOfRange(t *testing.T) {
	g := FromRows([][]any{
		{"a", 1},
		{},
	})

	if g.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, expected 2", g.NumRows())
	}
	if got := g.Cell(0, 1); got != Number(1) {
		t.Errorf("Cell(0, 1) = %+v", got)
	}
	if got := g.Cell(0, 5); got != Empty {
		t.Errorf("Cell(0, 5) = %+v, expected Empty", got)
	}
	if got := g.Cell(9, 0); got != Empty {
		t.Errorf("Cell(9, 0) = %+v, expected Empty", got)
	}
	if got := g.Row(-1); got != nil {
		t.Errorf("Row(-1) = %v, expected nil", got)
	}
	if got := g.Row(1); len(got) != 0 {
		t.Errorf("Row(1) = %v, expected empty", got)
	}
}

func TestMemoryRowIsCopy(t *testing.T) {
	g := FromRows([][]any{{"a"}})
	row := g.Row(0)
	row[0] = Text("changed")
	if got := g.Cell(0, 0); got != Text("a") {
		t.Errorf("grid mutated through Row: %+v", got)
	}
}

func TestReadRegionPadsShortRows(t *testing.T) {
	g := FromRows([][]any{
		{"header", "x", "y"},
		{"a", 1},
		{"b", 2, 3, 4},
	})

	region := ReadRegion(g, 1, 2, Columns(3))
	if len(region) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(region))
	}
	for i, row := range region {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells, expected 3", i, len(row))
		}
	}
	if region[0][2] != Empty {
		t.Errorf("missing cell should be Empty, got %+v", region[0][2])
	}
	if region[1][2] != Number(3) {
		t.Errorf("expected 3, got %+v", region[1][2])
	}
}

func TestReadRegionSelectsColumns(t *testing.T) {
	g := FromRows([][]any{
		{nil, "Film", "UK", nil, "Dist"},
	})

	region := ReadRegion(g, 0, 1, []int{1, 2, 4})
	want := []Value{Text("Film"), Text("UK"), Text("Dist")}
	for i, v := range want {
		if region[0][i] != v {
			t.Errorf("column %d = %+v, expected %+v", i, region[0][i], v)
		}
	}
}

func TestReadHeader(t *testing.T) {
	g := FromRows([][]any{{"Rank", "Film", 3}})
	names := ReadHeader(g, 0, Columns(4))
	want := []string{"Rank", "Film", "3", ""}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("header[%d] = %q, expected %q", i, names[i], want[i])
		}
	}
}
