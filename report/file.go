// Package report provides sinks for episode results: external consumers
// of the simulator's outputs.
package report

import (
	"encoding/json"

	"github.com/zeu5/hallway-pomdp/types"
	"github.com/zeu5/hallway-pomdp/util"
)

// FileReporter appends episode results as JSON lines to a file
type FileReporter struct {
	path string
}

var _ types.Reporter = &FileReporter{}

func NewFileReporter(path string) *FileReporter {
	return &FileReporter{path: path}
}

func (f *FileReporter) Report(result types.EpisodeResult) error {
	bs, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return util.AppendToFile(f.path, string(bs))
}
