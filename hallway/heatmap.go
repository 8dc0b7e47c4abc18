package hallway

import (
	"encoding/json"
	"path"

	"github.com/zeu5/hallway-pomdp/util"
	"gonum.org/v1/plot/plotter"
)

// VisitDataSet counts cell visits on the map grid. It implements
// plotter.GridXYZ so renderers can plot it as a heatmap directly.
type VisitDataSet struct {
	Visits map[int]map[int]int `json:"visits"`
	Rows   int                 `json:"rows"`
	Cols   int                 `json:"cols"`
}

var _ plotter.GridXYZ = &VisitDataSet{}

func (v *VisitDataSet) Dims() (int, int) {
	return v.Cols, v.Rows
}

func (v *VisitDataSet) Z(c, r int) float64 {
	return float64(v.Visits[r][c])
}

func (v *VisitDataSet) X(c int) float64 {
	return float64(c)
}

func (v *VisitDataSet) Y(r int) float64 {
	return float64(r)
}

func (v *VisitDataSet) Min() float64 {
	return 0.0
}

func (v *VisitDataSet) Max() float64 {
	max := 0
	for _, vals := range v.Visits {
		for _, count := range vals {
			if count > max {
				max = count
			}
		}
	}
	return float64(max)
}

// VisitCounter accumulates a VisitDataSet from the states an episode
// simulator passes through. Fed by the experiment loop through the
// simulator's read-only accessors; the core never calls it.
type VisitCounter struct {
	topo    *Topology
	dataSet *VisitDataSet
}

func NewVisitCounter(topo *Topology) *VisitCounter {
	rows, cols := 0, 0
	for c := 0; c < topo.NumCells(); c++ {
		r, col := topo.CellPos(c)
		if r+1 > rows {
			rows = r + 1
		}
		if col+1 > cols {
			cols = col + 1
		}
	}
	return &VisitCounter{
		topo: topo,
		dataSet: &VisitDataSet{
			Visits: make(map[int]map[int]int),
			Rows:   rows,
			Cols:   cols,
		},
	}
}

// Observe records a visit to the cell of the given state
func (v *VisitCounter) Observe(state int) {
	c, _ := v.topo.Decode(state)
	r, col := v.topo.CellPos(c)
	if _, ok := v.dataSet.Visits[r]; !ok {
		v.dataSet.Visits[r] = make(map[int]int)
	}
	v.dataSet.Visits[r][col] += 1
}

func (v *VisitCounter) DataSet() *VisitDataSet {
	return v.dataSet
}

// Save writes the dataset as JSON under the save path
func (v *VisitCounter) Save(savePath, name string) error {
	bs, err := json.Marshal(v.dataSet)
	if err != nil {
		return err
	}
	return util.WriteToFile(path.Join(savePath, name+"_visits.json"), string(bs))
}
