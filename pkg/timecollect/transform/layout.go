// Package transform reshapes raw weekly timesheet matrices into TimesheetEntry records.
package transform

// Work type labels assigned by column position.
const (
	WorkTypeDate     = "date"
	WorkTypeIndirect = "indirect"
	WorkTypeDirect   = "direct"
)

// Category is a run of consecutive columns sharing a work type label.
type Category struct {
	Label string
	Width int
}

// Layout describes the fixed column structure of a timesheet matrix.
type Layout struct {
	// DropColumns are absolute spacer/metadata column indices removed before
	// any other processing.
	DropColumns []int
	// MirrorWidth is the number of leading header row 0 cells copied onto header row 1.
	MirrorWidth int
	// FanOutOffsets are the pruned column offsets j for which header0[j-1]
	// is copied to header0[j .. j+FanOutWidth-1].
	FanOutOffsets []int
	FanOutWidth   int
	// Categories label pruned columns positionally, in order.
	Categories []Category
	// DataStartColumn is the first pruned column holding hours.
	DataStartColumn int
}

// DefaultLayout returns the layout of the A7:BT39 timesheet block.
func DefaultLayout() Layout {
	return Layout{
		DropColumns: []int{
			3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
			21, 26, 31, 36, 41, 46, 51, 56, 61, 66, 71,
		},
		MirrorWidth:   9,
		FanOutOffsets: []int{12, 16, 20, 24, 28, 32, 36, 40, 44, 48},
		FanOutWidth:   3,
		Categories: []Category{
			{Label: WorkTypeDate, Width: 3},
			{Label: WorkTypeIndirect, Width: 8},
			{Label: WorkTypeDirect, Width: 40},
		},
		DataStartColumn: 3,
	}
}

// Labels expands Categories into one label per pruned column.
func (l Layout) Labels() []string {
	var labels []string
	for _, c := range l.Categories {
		for i := 0; i < c.Width; i++ {
			labels = append(labels, c.Label)
		}
	}
	return labels
}
