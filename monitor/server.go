// Package monitor exposes a running simulation over HTTP for renderers
// and other external collaborators. It only reads the core's immutable
// model tables and the snapshots the experiment loop publishes; the
// simulator itself stays single-threaded.
package monitor

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/zeu5/hallway-pomdp/hallway"
)

// Snapshot of the observable episode state at some step
type Snapshot struct {
	Experiment  string  `json:"experiment"`
	Episode     int     `json:"episode"`
	Step        int     `json:"step"`
	State       int     `json:"state"`
	Cell        int     `json:"cell"`
	Orientation string  `json:"orientation"`
	Observation int     `json:"observation"`
	Reward      float64 `json:"reward"`
	Done        bool    `json:"done"`
}

// Server serves the latest snapshot and the model tables of one
// environment
type Server struct {
	addr   string
	server *http.Server

	topo     *hallway.Topology
	kernel   *hallway.TransitionKernel
	obsModel *hallway.ObservationModel

	lock   sync.Mutex
	latest Snapshot
}

func NewServer(addr string, env *hallway.Env) *Server {
	s := &Server{
		addr:     addr,
		topo:     env.Topology(),
		kernel:   env.Kernel(),
		obsModel: env.ObservationModel(),
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/status", s.handleStatus)
	r.GET("/spaces", s.handleSpaces)
	r.GET("/kernel/:action/:state", s.handleKernelRow)
	r.GET("/observation/:state", s.handleObservationRow)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return s
}

// Publish replaces the latest snapshot
func (s *Server) Publish(snap Snapshot) {
	s.lock.Lock()
	s.latest = snap
	s.lock.Unlock()
}

// Start serving in the background
func (s *Server) Start() {
	go func() {
		s.server.ListenAndServe()
	}()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleStatus(c *gin.Context) {
	s.lock.Lock()
	latest := s.latest
	s.lock.Unlock()
	c.JSON(http.StatusOK, latest)
}

func (s *Server) handleSpaces(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"map":          s.topo.Name(),
		"states":       s.topo.NumStates(),
		"actions":      hallway.NumActions,
		"observations": s.topo.NumObservations(),
		"terminal":     s.topo.TerminalStates(),
	})
}

func (s *Server) handleKernelRow(c *gin.Context) {
	action, err := strconv.Atoi(c.Param("action"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be an integer"})
		return
	}
	state, err := strconv.Atoi(c.Param("state"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state must be an integer"})
		return
	}
	row, err := s.kernel.Row(hallway.Action(action), state)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"action": action, "state": state, "probs": row})
}

func (s *Server) handleObservationRow(c *gin.Context) {
	state, err := strconv.Atoi(c.Param("state"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "state must be an integer"})
		return
	}
	probs, err := s.obsModel.Probs(state)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state, "probs": probs})
}
