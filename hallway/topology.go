package hallway

import "fmt"

// CellSpec describes a single map cell. Walls and Neighbors are indexed
// by absolute direction (Up=north, Right=east, Down=south, Left=west):
// a direction either has a wall or a neighbor cell, never both.
type CellSpec struct {
	Walls     [NumOrientations]bool
	Neighbors [NumOrientations]int
	// Row, Col position the cell on the map grid, for analyzers and renderers
	Row, Col int
}

// DistinguishedSpec assigns an out-of-band observation code to a single
// (cell, orientation) pair. For the goal cell the orientation is ignored:
// the goal occupies a single orientation-less state.
type DistinguishedSpec struct {
	Cell        int
	Orientation Orientation
	Code        int
}

// MapData is the declarative description of a map: its cells, the goal
// cell and the distinguished observation codes. The state space, wall
// patterns and movement tables are all derived from it at construction.
type MapData struct {
	Name          string
	Cells         []CellSpec
	Goal          int
	Distinguished []DistinguishedSpec
}

// Topology is the static, immutable map description with the state space
// baked in. States are numbered cell-major in the order the cells appear
// in the MapData, four states per cell (one per orientation) except the
// goal cell which occupies a single absorbing state. All consumers share
// the encode/decode tables built here; nothing recomputes the
// state <-> (cell, orientation) decomposition.
type Topology struct {
	name      string
	cells     []CellSpec
	goal      int
	terminal  int
	numStates int
	numObs    int

	cellOf      []int
	orientOf    []Orientation
	stateOf     [][]int
	walls       [][NumOrientations]bool
	forward     []int
	distCode    []int
	nonTerminal []int
}

// NewTopology validates the map data and bakes the state space
func NewTopology(data MapData) (*Topology, error) {
	numCells := len(data.Cells)
	if numCells == 0 {
		return nil, fmt.Errorf("map %q has no cells", data.Name)
	}
	if data.Goal < 0 || data.Goal >= numCells {
		return nil, fmt.Errorf("map %q: goal cell %d out of range", data.Name, data.Goal)
	}
	for c, cell := range data.Cells {
		for d := 0; d < NumOrientations; d++ {
			n := cell.Neighbors[d]
			if cell.Walls[d] != (n < 0) {
				return nil, fmt.Errorf("map %q: cell %d direction %s: wall and neighbor disagree",
					data.Name, c, Orientation(d))
			}
			if n < 0 {
				continue
			}
			if n >= numCells {
				return nil, fmt.Errorf("map %q: cell %d direction %s: neighbor %d out of range",
					data.Name, c, Orientation(d), n)
			}
			opposite := (d + 2) % NumOrientations
			if data.Cells[n].Neighbors[opposite] != c {
				return nil, fmt.Errorf("map %q: cell %d direction %s: neighbor %d does not point back",
					data.Name, c, Orientation(d), n)
			}
		}
	}

	t := &Topology{
		name:      data.Name,
		cells:     data.Cells,
		goal:      data.Goal,
		numStates: (numCells-1)*NumOrientations + 1,
	}

	t.cellOf = make([]int, t.numStates)
	t.orientOf = make([]Orientation, t.numStates)
	t.stateOf = make([][]int, numCells)
	next := 0
	for c := range data.Cells {
		t.stateOf[c] = make([]int, NumOrientations)
		if c == data.Goal {
			t.terminal = next
			t.cellOf[next] = c
			for o := 0; o < NumOrientations; o++ {
				t.stateOf[c][o] = next
			}
			next++
			continue
		}
		for o := 0; o < NumOrientations; o++ {
			t.stateOf[c][o] = next
			t.cellOf[next] = c
			t.orientOf[next] = Orientation(o)
			next++
		}
	}

	t.nonTerminal = make([]int, 0, t.numStates-1)
	for s := 0; s < t.numStates; s++ {
		if s != t.terminal {
			t.nonTerminal = append(t.nonTerminal, s)
		}
	}

	// relative wall patterns: the cell's absolute walls rotated by the
	// orientation (front, right, back, left)
	t.walls = make([][NumOrientations]bool, t.numStates)
	for _, s := range t.nonTerminal {
		c, o := t.cellOf[s], t.orientOf[s]
		for i := 0; i < NumOrientations; i++ {
			t.walls[s][i] = data.Cells[c].Walls[(int(o)+i)%NumOrientations]
		}
	}

	// forward targets: the neighbor cell in the facing direction, keeping
	// the orientation; moving into a wall is a no-op, the terminal state
	// is absorbing
	t.forward = make([]int, t.numStates)
	t.forward[t.terminal] = t.terminal
	for _, s := range t.nonTerminal {
		c, o := t.cellOf[s], t.orientOf[s]
		n := data.Cells[c].Neighbors[int(o)]
		if n < 0 {
			t.forward[s] = s
			continue
		}
		t.forward[s] = t.stateOf[n][int(o)]
	}

	t.distCode = make([]int, t.numStates)
	for s := range t.distCode {
		t.distCode[s] = -1
	}
	codes := make(map[int]bool)
	goalDistinguished := false
	for _, d := range data.Distinguished {
		if d.Cell < 0 || d.Cell >= numCells {
			return nil, fmt.Errorf("map %q: distinguished cell %d out of range", data.Name, d.Cell)
		}
		if d.Code < NumWallPatterns {
			return nil, fmt.Errorf("map %q: distinguished code %d collides with wall-pattern codes", data.Name, d.Code)
		}
		if codes[d.Code] {
			return nil, fmt.Errorf("map %q: duplicate distinguished code %d", data.Name, d.Code)
		}
		codes[d.Code] = true
		s := t.stateOf[d.Cell][int(d.Orientation)]
		t.distCode[s] = d.Code
		if d.Cell == data.Goal {
			goalDistinguished = true
		}
	}
	if !goalDistinguished {
		return nil, fmt.Errorf("map %q: goal cell has no distinguished observation code", data.Name)
	}
	t.numObs = NumWallPatterns + len(data.Distinguished)

	return t, nil
}

func (t *Topology) Name() string { return t.name }

// NumStates in the topology
func (t *Topology) NumStates() int { return t.numStates }

// NumCells in the topology
func (t *Topology) NumCells() int { return len(t.cells) }

// NumObservations is the size of the observation space: the 16
// wall-pattern codes plus one code per distinguished state
func (t *Topology) NumObservations() int { return t.numObs }

// Terminal is the state id of the goal
func (t *Topology) Terminal() int { return t.terminal }

// TerminalStates lists the absorbing goal states
func (t *Topology) TerminalStates() []int { return []int{t.terminal} }

// IsTerminal reports whether the state is absorbing
func (t *Topology) IsTerminal(s int) bool { return s == t.terminal }

// NonTerminalStates lists every non-terminal state id
func (t *Topology) NonTerminalStates() []int {
	out := make([]int, len(t.nonTerminal))
	copy(out, t.nonTerminal)
	return out
}

// Walls is the relative wall pattern of the state (front, right, back,
// left). The terminal state has no wall pattern: its observation is
// always its distinguished code.
func (t *Topology) Walls(s int) [NumOrientations]bool { return t.walls[s] }

// Forward is the deterministic target of moving forward from the state
func (t *Topology) Forward(s int) int { return t.forward[s] }

// Turn is the deterministic target of a turn action: the same cell with
// the orientation cycled by +1 (right), -1 (left) or +2 (around).
// Turning in the terminal state is a no-op.
func (t *Topology) Turn(s int, a Action) int {
	if s == t.terminal {
		return s
	}
	c, o := t.cellOf[s], int(t.orientOf[s])
	switch a {
	case ActionTurnRight:
		o = (o + 1) % NumOrientations
	case ActionTurnLeft:
		o = (o + 3) % NumOrientations
	case ActionTurnAround:
		o = (o + 2) % NumOrientations
	}
	return t.stateOf[c][o]
}

// Decode splits a state id into its (cell, orientation) pair. The
// orientation of the terminal state is Up by convention.
func (t *Topology) Decode(s int) (int, Orientation) {
	return t.cellOf[s], t.orientOf[s]
}

// Encode maps a (cell, orientation) pair back to its state id. Every
// orientation of the goal cell encodes to the single terminal state.
func (t *Topology) Encode(cell int, o Orientation) int {
	return t.stateOf[cell][int(o)]
}

// DistinguishedCode returns the out-of-band observation code of the
// state, if it has one
func (t *Topology) DistinguishedCode(s int) (Observation, bool) {
	if t.distCode[s] < 0 {
		return 0, false
	}
	return Observation(t.distCode[s]), true
}

// CellPos is the (row, col) grid position of the cell
func (t *Topology) CellPos(c int) (int, int) {
	return t.cells[c].Row, t.cells[c].Col
}
