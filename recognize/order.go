package recognize

import "fmt"

// ReadingOrder is the scan convention a system uses to assign character
// codes to grid positions. Row-major orders fill rows first, column-major
// orders fill columns first; each axis runs forward or in reverse, giving
// 8 conventions.
//
// The recognition engine itself always emits raster order (left to right,
// top to bottom); the reading order is applied by consumers, through
// MapToLogicalIndex or Reorder.
type ReadingOrder uint8

const (
	// LeftToRightTopToBottom is the raster default.
	LeftToRightTopToBottom ReadingOrder = iota
	RightToLeftTopToBottom
	LeftToRightBottomToTop
	RightToLeftBottomToTop
	TopToBottomLeftToRight // column-major from here on
	TopToBottomRightToLeft
	BottomToTopLeftToRight
	BottomToTopRightToLeft
)

var orderNames = [...]string{
	LeftToRightTopToBottom: "ltr-ttb",
	RightToLeftTopToBottom: "rtl-ttb",
	LeftToRightBottomToTop: "ltr-btt",
	RightToLeftBottomToTop: "rtl-btt",
	TopToBottomLeftToRight: "ttb-ltr",
	TopToBottomRightToLeft: "ttb-rtl",
	BottomToTopLeftToRight: "btt-ltr",
	BottomToTopRightToLeft: "btt-rtl",
}

func (o ReadingOrder) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return fmt.Sprintf("ReadingOrder(%d)", o)
}

// ParseReadingOrder resolves the textual form used in CLIs and stored
// configurations ("ltr-ttb", "ttb-rtl", ...).
func ParseReadingOrder(s string) (ReadingOrder, error) {
	for i, name := range orderNames {
		if name == s {
			return ReadingOrder(i), nil
		}
	}
	return 0, fmt.Errorf("unknown reading order %q", s)
}

func (o ReadingOrder) columnMajor() bool {
	return o >= TopToBottomLeftToRight
}

func (o ReadingOrder) leftToRight() bool {
	switch o {
	case LeftToRightTopToBottom, LeftToRightBottomToTop,
		TopToBottomLeftToRight, BottomToTopLeftToRight:
		return true
	}
	return false
}

func (o ReadingOrder) topToBottom() bool {
	switch o {
	case LeftToRightTopToBottom, RightToLeftTopToBottom,
		TopToBottomLeftToRight, TopToBottomRightToLeft:
		return true
	}
	return false
}

// MapToLogicalIndex converts a raster position to the logical character
// index of the given reading order. The function is total and pure; it
// performs no bounds clamping, so callers must supply row < rows and
// col < columns.
func MapToLogicalIndex(row, col, rows, columns int, order ReadingOrder) int {
	effRow, effCol := row, col
	if !order.topToBottom() {
		effRow = rows - 1 - row
	}
	if !order.leftToRight() {
		effCol = columns - 1 - col
	}
	if order.columnMajor() {
		return effCol*rows + effRow
	}
	return effRow*columns + effCol
}
