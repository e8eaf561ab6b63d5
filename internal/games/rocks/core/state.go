package core

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// Player holds the player's position, score and camera.
type Player struct {
	Start  Coord // First PlayerMarker found in the level asset
	Pos    Coord
	Score  int
	Camera Vec2 // Presentation only; never read by the rules
}

// State is the complete simulation state of one play session.
// Fall and Update are its only mutators.
type State struct {
	Grid   *Grid
	Player Player
	Ticks  uint64 // Gravity passes run so far
	Cycles uint64 // Controller updates run so far

	CameraStep float64

	lastButtons Buttons
}

// NewState builds a session from raw level bytes. The first PlayerMarker
// becomes the player start; every marker cell is stored as Empty.
func NewState(data []byte) (*State, error) {
	grid, err := NewGrid(data)
	if err != nil {
		return nil, err
	}

	start, ok := grid.FindFirst(PlayerMarker)
	if !ok {
		return nil, ErrNoPlayer
	}
	for i, cell := range grid.cells {
		if cell == PlayerMarker {
			grid.cells[i] = Empty
		}
	}

	return &State{
		Grid: grid,
		Player: Player{
			Start:  start,
			Pos:    start,
			Camera: Vec2{X: float64(start.X), Y: float64(start.Y)},
		},
		CameraStep: DefaultCameraStep,
	}, nil
}

// Tile returns the tile at c as seen by the rules, player included.
func (s *State) Tile(c Coord) Tile {
	return s.Grid.Get(c, s.Player.Pos)
}

// DiamondsLeft returns the number of diamonds still in the grid.
func (s *State) DiamondsLeft() int {
	return s.Grid.Count(Diamond)
}

// LineTransform returns the renderer callback for the current camera.
// The same transform applies to every row.
func (s *State) LineTransform(tileSize, screenW, screenH int) LineTransform {
	t := CameraTransform(s.Player.Camera, tileSize, screenW, screenH)
	return func(int) Transform {
		return t
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	clone := *s
	clone.Grid = s.Grid.Clone()
	return &clone
}

// Snapshot captures the observable state for determinism checks.
type Snapshot struct {
	Ticks        uint64
	Cycles       uint64
	PlayerX      int
	PlayerY      int
	Score        int
	CameraX      float64
	CameraY      float64
	DiamondsLeft int
	Rocks        int
}

// Snapshot returns the current snapshot.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Ticks:        s.Ticks,
		Cycles:       s.Cycles,
		PlayerX:      s.Player.Pos.X,
		PlayerY:      s.Player.Pos.Y,
		Score:        s.Player.Score,
		CameraX:      s.Player.Camera.X,
		CameraY:      s.Player.Camera.Y,
		DiamondsLeft: s.DiamondsLeft(),
		Rocks:        s.Grid.Count(Rock),
	}
}

// Hash returns a hash over the grid, player and counters.
func (s *State) Hash() uint64 {
	h := fnv.New64a()
	h.Write(s.Grid.Bytes())

	var buf [8]byte
	for _, v := range []uint64{
		uint64(s.Player.Pos.X),
		uint64(s.Player.Pos.Y),
		uint64(s.Player.Score),
		math.Float64bits(s.Player.Camera.X),
		math.Float64bits(s.Player.Camera.Y),
		s.Ticks,
		s.Cycles,
		uint64(s.lastButtons),
	} {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	return h.Sum64()
}

// String returns a short description of the state.
func (s *State) String() string {
	return fmt.Sprintf("tick=%d cycle=%d player=%v score=%d", s.Ticks, s.Cycles, s.Player.Pos, s.Player.Score)
}
