package hallway

import "testing"

func TestTopologySpaces(t *testing.T) {
	cases := []struct {
		data     MapData
		states   int
		cells    int
		obs      int
		terminal int
	}{
		{HallwayMap(), 57, 15, 20, 48},
		{Hallway2Map(), 89, 23, 17, 68},
	}
	for _, c := range cases {
		topo, err := NewTopology(c.data)
		if err != nil {
			t.Fatalf("%s: %v", c.data.Name, err)
		}
		if topo.NumStates() != c.states {
			t.Errorf("%s: expected %d states, got %d", c.data.Name, c.states, topo.NumStates())
		}
		if topo.NumCells() != c.cells {
			t.Errorf("%s: expected %d cells, got %d", c.data.Name, c.cells, topo.NumCells())
		}
		if topo.NumObservations() != c.obs {
			t.Errorf("%s: expected %d observations, got %d", c.data.Name, c.obs, topo.NumObservations())
		}
		if topo.Terminal() != c.terminal {
			t.Errorf("%s: expected terminal %d, got %d", c.data.Name, c.terminal, topo.Terminal())
		}
		if len(topo.NonTerminalStates()) != c.states-1 {
			t.Errorf("%s: expected %d non-terminal states", c.data.Name, c.states-1)
		}
	}
}

func TestTopologyEncodeDecodeRoundtrip(t *testing.T) {
	for _, data := range []MapData{HallwayMap(), Hallway2Map()} {
		topo, err := NewTopology(data)
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range topo.NonTerminalStates() {
			cell, o := topo.Decode(s)
			if got := topo.Encode(cell, o); got != s {
				t.Errorf("%s: state %d decodes to (%d, %s) but encodes back to %d",
					data.Name, s, cell, o, got)
			}
		}
		// every orientation of the goal cell encodes to the terminal state
		for o := 0; o < NumOrientations; o++ {
			if got := topo.Encode(data.Goal, Orientation(o)); got != topo.Terminal() {
				t.Errorf("%s: goal cell orientation %s encodes to %d, want terminal %d",
					data.Name, Orientation(o), got, topo.Terminal())
			}
		}
	}
}

// wall patterns and forward targets must reproduce the reference tables
func TestHallwayReferenceTables(t *testing.T) {
	topo, err := NewTopology(HallwayMap())
	if err != nil {
		t.Fatal(err)
	}

	wallCases := map[int][NumOrientations]bool{
		0:  {true, false, true, true},
		4:  {true, false, true, false},
		5:  {false, true, false, true},
		8:  {true, false, false, false},
		10: {false, false, true, false},
		12: {false, true, true, true},
		14: {true, true, false, true},
		53: {true, true, true, false},
	}
	for s, want := range wallCases {
		if got := topo.Walls(s); got != want {
			t.Errorf("walls(%d) = %v, want %v", s, got, want)
		}
	}

	forwardCases := map[int]int{
		0:  0,  // facing a wall
		1:  5,  // east along the corridor
		9:  17, // corridor states skip over the stub cell ids
		12: 8,  // out of the first stub
		45: 50, // east over the terminal id discontinuity
		52: 47, // west over the discontinuity
		48: 48, // terminal is absorbing
		// south entrances missing from the original forward table
		10: 14,
		22: 26,
		34: 38,
		42: 48,
	}
	for s, want := range forwardCases {
		if got := topo.Forward(s); got != want {
			t.Errorf("forward(%d) = %d, want %d", s, got, want)
		}
	}
}

func TestHallway2ReferenceTables(t *testing.T) {
	topo, err := NewTopology(Hallway2Map())
	if err != nil {
		t.Fatal(err)
	}

	forwardCases := map[int]int{
		2:  26, // down into the left vertical corridor
		24: 0,  // back up into the top room
		65: 68, // east into the goal
		66: 87, // down past the goal id discontinuity
		86: 86, // facing the bottom room wall
		68: 68, // terminal is absorbing
	}
	for s, want := range forwardCases {
		if got := topo.Forward(s); got != want {
			t.Errorf("forward(%d) = %d, want %d", s, got, want)
		}
	}

	// the middle corridor cell is walled east and west
	if got := topo.Walls(28); got != [NumOrientations]bool{false, true, false, true} {
		t.Errorf("walls(28) = %v, want corridor pattern", got)
	}
}

func TestTopologyDistinguishedCodes(t *testing.T) {
	topo, err := NewTopology(HallwayMap())
	if err != nil {
		t.Fatal(err)
	}
	wantCodes := map[int]Observation{14: 16, 26: 17, 38: 18, 48: 19}
	for s, want := range wantCodes {
		code, ok := topo.DistinguishedCode(s)
		if !ok || code != want {
			t.Errorf("distinguished code of state %d = (%v, %v), want %d", s, code, ok, want)
		}
	}
	if _, ok := topo.DistinguishedCode(0); ok {
		t.Errorf("state 0 should not be distinguished")
	}

	topo2, err := NewTopology(Hallway2Map())
	if err != nil {
		t.Fatal(err)
	}
	code, ok := topo2.DistinguishedCode(68)
	if !ok || code != 16 {
		t.Errorf("hallway2 goal code = (%v, %v), want 16", code, ok)
	}
}

func TestTopologyValidation(t *testing.T) {
	// wall and neighbor disagree
	bad := MapData{
		Name: "bad",
		Cells: []CellSpec{
			{Walls: [NumOrientations]bool{true, true, true, true}, Neighbors: [NumOrientations]int{1, -1, -1, -1}},
			{Walls: [NumOrientations]bool{true, true, true, true}, Neighbors: [NumOrientations]int{-1, -1, -1, -1}},
		},
		Goal: 1,
	}
	if _, err := NewTopology(bad); err == nil {
		t.Errorf("expected wall/neighbor disagreement error")
	}

	// asymmetric neighbors
	asym := MapData{
		Name: "asym",
		Cells: []CellSpec{
			cell(0, 0, -1, 1, -1, -1),
			cell(0, 1, -1, -1, -1, -1),
		},
		Goal: 1,
	}
	if _, err := NewTopology(asym); err == nil {
		t.Errorf("expected neighbor symmetry error")
	}

	// goal without a distinguished code
	noGoalCode := MapData{
		Name: "nocode",
		Cells: []CellSpec{
			cell(0, 0, -1, 1, -1, -1),
			cell(0, 1, -1, -1, -1, 0),
		},
		Goal: 1,
	}
	if _, err := NewTopology(noGoalCode); err == nil {
		t.Errorf("expected missing goal code error")
	}

	// distinguished code colliding with wall patterns
	collide := MapData{
		Name: "collide",
		Cells: []CellSpec{
			cell(0, 0, -1, 1, -1, -1),
			cell(0, 1, -1, -1, -1, 0),
		},
		Goal:          1,
		Distinguished: []DistinguishedSpec{{Cell: 1, Orientation: Up, Code: 7}},
	}
	if _, err := NewTopology(collide); err == nil {
		t.Errorf("expected code collision error")
	}
}
