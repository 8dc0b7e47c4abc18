package hallway

import "strconv"

// Action is one of the five moves available to the agent. All actions
// except Stay are subject to actuation noise.
type Action int

const (
	ActionStay Action = iota
	ActionForward
	ActionTurnRight
	ActionTurnLeft
	ActionTurnAround
)

// NumActions is the size of the action space
const NumActions = 5

func (a Action) String() string {
	switch a {
	case ActionStay:
		return "Stay"
	case ActionForward:
		return "Forward"
	case ActionTurnRight:
		return "TurnRight"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnAround:
		return "TurnAround"
	}
	return "Invalid(" + strconv.Itoa(int(a)) + ")"
}

func (a Action) Hash() string {
	return a.String()
}

// Valid reports whether the action is one of the five defined actions
func (a Action) Valid() bool {
	return a >= ActionStay && a <= ActionTurnAround
}

// AllActions in a fixed order
func AllActions() []Action {
	return []Action{ActionStay, ActionForward, ActionTurnRight, ActionTurnLeft, ActionTurnAround}
}

// Orientation of the agent, cyclic with period 4
type Orientation int

const (
	Up Orientation = iota
	Right
	Down
	Left
)

// NumOrientations is the period of the orientation cycle
const NumOrientations = 4

func (o Orientation) String() string {
	switch o {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	}
	return "Invalid(" + strconv.Itoa(int(o)) + ")"
}

// Observation is an integer code: codes 0-15 encode perceived walls
// (bit i set = perceived wall in relative direction i, with directions
// ordered front, right, back, left), codes from 16 upwards are the
// out-of-band codes of distinguished states.
type Observation int

func (o Observation) Hash() string {
	return strconv.Itoa(int(o))
}

// Walls decodes a wall-pattern code into its four perceived-wall bits.
// Only meaningful for codes below 16.
func (o Observation) Walls() [NumOrientations]bool {
	var w [NumOrientations]bool
	for i := 0; i < NumOrientations; i++ {
		w[i] = o&(1<<i) != 0
	}
	return w
}

// EncodeWalls packs four perceived-wall bits into a wall-pattern code
func EncodeWalls(walls [NumOrientations]bool) Observation {
	code := 0
	for i := 0; i < NumOrientations; i++ {
		if walls[i] {
			code |= 1 << i
		}
	}
	return Observation(code)
}

// NumWallPatterns is the number of 4-bit wall-pattern observation codes
const NumWallPatterns = 16
