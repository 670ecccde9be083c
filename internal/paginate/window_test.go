package paginate

import (
	"reflect"
	"strconv"
	"strings"
	"testing"
)

// render flattens controls to e.g. "1 … 4 5 [6] 7 8 … 12".
func render(controls []Control) string {
	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		switch {
		case c.Kind == ControlEllipsis:
			parts = append(parts, "…")
		case c.Active:
			parts = append(parts, "["+strconv.Itoa(c.Page)+"]")
		default:
			parts = append(parts, strconv.Itoa(c.Page))
		}
	}
	return strings.Join(parts, " ")
}

func TestNewWindow(t *testing.T) {
	cases := []struct {
		current, total int
		start, end     int
		want           string
	}{
		{1, 1, 1, 1, "[1]"},
		{1, 3, 1, 3, "[1] 2 3"},
		{1, 12, 1, 5, "[1] 2 3 4 5 … 12"},
		{3, 12, 1, 5, "1 2 [3] 4 5 … 12"},
		{4, 12, 2, 6, "1 2 3 [4] 5 6 … 12"},
		{5, 12, 3, 7, "1 … 3 4 [5] 6 7 … 12"},
		{6, 12, 4, 8, "1 … 4 5 [6] 7 8 … 12"},
		{10, 12, 8, 12, "1 … 8 9 [10] 11 12"},
		{12, 12, 8, 12, "1 … 8 9 10 11 [12]"},
		{9, 12, 7, 11, "1 … 7 8 [9] 10 11 12"},
		{2, 6, 1, 5, "1 [2] 3 4 5 6"},
		{1, 0, 1, 0, ""},
		{2000000000000000000, 3, 1, 3, "1 2 3"},
		{int(^uint(0) >> 1), 12, 8, 12, "1 … 8 9 10 11 12"},
	}

	for _, tc := range cases {
		w := NewWindow(tc.current, tc.total)
		if w.Start != tc.start || w.End != tc.end {
			t.Fatalf("NewWindow(%d, %d) range = %d..%d, want %d..%d", tc.current, tc.total, w.Start, w.End, tc.start, tc.end)
		}
		if got := render(w.Controls()); got != tc.want {
			t.Fatalf("NewWindow(%d, %d) controls = %q, want %q", tc.current, tc.total, got, tc.want)
		}
	}
}

func TestWindowPages(t *testing.T) {
	got := NewWindow(6, 12).Pages()
	if !reflect.DeepEqual(got, []int{4, 5, 6, 7, 8}) {
		t.Fatalf("Pages() = %v", got)
	}
	if NewWindow(1, 0).Pages() != nil {
		t.Fatalf("Pages() on empty window should be nil")
	}
}
