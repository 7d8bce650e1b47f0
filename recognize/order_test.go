package recognize

import "testing"

func TestMapToLogicalIndexVectors(t *testing.T) {
	// 2x2 grid read right to left
	if i := MapToLogicalIndex(0, 0, 2, 2, RightToLeftTopToBottom); i != 1 {
		t.Fatalf("(0,0) rtl-ttb: expected 1, got %d", i)
	}
	if i := MapToLogicalIndex(0, 1, 2, 2, RightToLeftTopToBottom); i != 0 {
		t.Fatalf("(0,1) rtl-ttb: expected 0, got %d", i)
	}

	// hand-checked 2 rows x 3 columns grids, one per convention
	for _, test := range []struct {
		order    ReadingOrder
		expected [2][3]int
	}{
		{LeftToRightTopToBottom, [2][3]int{{0, 1, 2}, {3, 4, 5}}},
		{RightToLeftTopToBottom, [2][3]int{{2, 1, 0}, {5, 4, 3}}},
		{LeftToRightBottomToTop, [2][3]int{{3, 4, 5}, {0, 1, 2}}},
		{RightToLeftBottomToTop, [2][3]int{{5, 4, 3}, {2, 1, 0}}},
		{TopToBottomLeftToRight, [2][3]int{{0, 2, 4}, {1, 3, 5}}},
		{TopToBottomRightToLeft, [2][3]int{{4, 2, 0}, {5, 3, 1}}},
		{BottomToTopLeftToRight, [2][3]int{{1, 3, 5}, {0, 2, 4}}},
		{BottomToTopRightToLeft, [2][3]int{{5, 3, 1}, {4, 2, 0}}},
	} {
		for row := 0; row < 2; row++ {
			for col := 0; col < 3; col++ {
				got := MapToLogicalIndex(row, col, 2, 3, test.order)
				if got != test.expected[row][col] {
					t.Errorf("%s (%d,%d): expected %d, got %d",
						test.order, row, col, test.expected[row][col], got)
				}
			}
		}
	}
}

func TestMapToLogicalIndexBijective(t *testing.T) {
	const rows, columns = 5, 7
	for order := LeftToRightTopToBottom; order <= BottomToTopRightToLeft; order++ {
		seen := make(map[int]bool)
		for row := 0; row < rows; row++ {
			for col := 0; col < columns; col++ {
				i := MapToLogicalIndex(row, col, rows, columns, order)
				if i < 0 || i >= rows*columns || seen[i] {
					t.Fatalf("%s: index %d out of range or duplicated", order, i)
				}
				seen[i] = true
			}
		}
	}
}

func TestParseReadingOrder(t *testing.T) {
	for order := LeftToRightTopToBottom; order <= BottomToTopRightToLeft; order++ {
		back, err := ParseReadingOrder(order.String())
		if err != nil {
			t.Fatal(err)
		}
		if back != order {
			t.Fatalf("expected %v, got %v", order, back)
		}
	}
	if _, err := ParseReadingOrder("boustrophedon"); err == nil {
		t.Fatal("expected an error")
	}
}
