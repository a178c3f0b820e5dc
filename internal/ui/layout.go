package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which the category and material
	// columns are hidden.
	LayoutCompactWidth = 80
)

// Column widths in cells. The name column takes whatever is left.
const (
	articleColumnWidth  = 12
	categoryColumnWidth = 14
	materialColumnWidth = 12
	priceColumnWidth    = 12 // minimum; widened to the longest price
	minNameColumnWidth  = 10

	columnGap = 2
)

// Chrome around the table: header, command bar and the box borders.
const (
	chromeLines    = 2 // header + command bar
	boxBorderLines = 2
	columnHeader   = 1

	helpModalWidth = 44
	searchMaxChars = 100
)
