package tui

// 5x5 cell bitmaps for the block digits, row-major. A 1 paints the active
// style symbol, a 0 leaves the cell empty.
var digitCells = [10][25]uint8{
	{ // 0
		1, 1, 1, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 1, 1, 1,
	},
	{ // 1
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
	},
	{ // 2
		1, 1, 1, 1, 1,
		0, 0, 0, 1, 1,
		1, 1, 1, 1, 1,
		1, 1, 0, 0, 0,
		1, 1, 1, 1, 1,
	},
	{ // 3
		1, 1, 1, 1, 1,
		0, 0, 0, 1, 1,
		1, 1, 1, 1, 1,
		0, 0, 0, 1, 1,
		1, 1, 1, 1, 1,
	},
	{ // 4
		1, 1, 0, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 1, 1, 1,
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
	},
	{ // 5
		1, 1, 1, 1, 1,
		1, 1, 0, 0, 0,
		1, 1, 1, 1, 1,
		0, 0, 0, 1, 1,
		1, 1, 1, 1, 1,
	},
	{ // 6
		1, 1, 1, 1, 1,
		1, 1, 0, 0, 0,
		1, 1, 1, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 1, 1, 1,
	},
	{ // 7
		1, 1, 1, 1, 1,
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
	},
	{ // 8
		1, 1, 1, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 1, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 1, 1, 1,
	},
	{ // 9
		1, 1, 1, 1, 1,
		1, 1, 0, 1, 1,
		1, 1, 1, 1, 1,
		0, 0, 0, 1, 1,
		1, 1, 1, 1, 1,
	},
}

// errorCells is an E shape drawn for digit values outside 0-9.
var errorCells = [25]uint8{
	1, 1, 1, 1, 1,
	1, 1, 0, 0, 0,
	1, 1, 1, 1, 0,
	1, 1, 0, 0, 0,
	1, 1, 1, 1, 1,
}
