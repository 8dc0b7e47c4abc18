package hallway

// cell builds a CellSpec from a grid position and the four neighbor cell
// indices (north, east, south, west); -1 marks a wall. Walls are derived
// so the wall/neighbor agreement holds by construction.
func cell(row, col, n, e, s, w int) CellSpec {
	neighbors := [NumOrientations]int{n, e, s, w}
	var walls [NumOrientations]bool
	for d, nb := range neighbors {
		walls[d] = nb < 0
	}
	return CellSpec{Walls: walls, Neighbors: neighbors, Row: row, Col: col}
}

// HallwayMap is the small hallway domain: an eleven-cell corridor with
// three dead-end stubs hanging below it and the goal below the ninth
// corridor cell. 57 states, 20 observation codes: facing down into a
// stub is visually unique (codes 16-18), the goal emits code 19.
func HallwayMap() MapData {
	return MapData{
		Name: "hallway",
		Cells: []CellSpec{
			cell(0, 0, -1, 1, -1, -1),
			cell(0, 1, -1, 2, -1, 0),
			cell(0, 2, -1, 4, 3, 1),
			cell(1, 2, 2, -1, -1, -1),
			cell(0, 3, -1, 5, -1, 2),
			cell(0, 4, -1, 7, 6, 4),
			cell(1, 4, 5, -1, -1, -1),
			cell(0, 5, -1, 8, -1, 5),
			cell(0, 6, -1, 10, 9, 7),
			cell(1, 6, 8, -1, -1, -1),
			cell(0, 7, -1, 11, -1, 8),
			cell(0, 8, -1, 13, 12, 10),
			cell(1, 8, 11, -1, -1, -1),
			cell(0, 9, -1, 14, -1, 11),
			cell(0, 10, -1, -1, -1, 13),
		},
		Goal: 12,
		Distinguished: []DistinguishedSpec{
			{Cell: 3, Orientation: Down, Code: 16},
			{Cell: 6, Orientation: Down, Code: 17},
			{Cell: 9, Orientation: Down, Code: 18},
			{Cell: 12, Orientation: Up, Code: 19},
		},
	}
}

// Hallway2Map is the larger hallway domain: two rooms connected by three
// vertical corridors, with the goal tucked beside the lower-right room
// exit. 89 states, 17 observation codes: only the goal is distinguished
// (code 16).
func Hallway2Map() MapData {
	return MapData{
		Name: "hallway2",
		Cells: []CellSpec{
			cell(0, 1, -1, 1, 6, -1),
			cell(0, 2, -1, 2, -1, 0),
			cell(0, 3, -1, 3, 7, 1),
			cell(0, 4, -1, 4, -1, 2),
			cell(0, 5, -1, -1, 8, 3),
			cell(1, 0, -1, 6, -1, -1),
			cell(1, 1, 0, -1, 10, 5),
			cell(1, 3, 2, -1, 11, -1),
			cell(1, 5, 4, 9, 12, -1),
			cell(1, 6, -1, -1, -1, 8),
			cell(2, 1, 6, -1, 14, -1),
			cell(2, 3, 7, -1, 15, -1),
			cell(2, 5, 8, -1, 16, -1),
			cell(3, 0, -1, 14, -1, -1),
			cell(3, 1, 10, -1, 18, 13),
			cell(3, 3, 11, -1, 20, -1),
			cell(3, 5, 12, 17, 22, -1),
			cell(3, 6, -1, -1, -1, 16),
			cell(4, 1, 14, 19, -1, -1),
			cell(4, 2, -1, 20, -1, 18),
			cell(4, 3, 15, 21, -1, 19),
			cell(4, 4, -1, 22, -1, 20),
			cell(4, 5, 16, -1, -1, 21),
		},
		Goal: 17,
		Distinguished: []DistinguishedSpec{
			{Cell: 17, Orientation: Up, Code: 16},
		},
	}
}
