package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks/core"
)

func TestPressedOnlyReportsNewButtons(t *testing.T) {
	testCases := []struct {
		name       string
		held, last core.Buttons
		expected   core.Buttons
	}{
		{"fresh press", core.ButtonRight, 0, core.ButtonRight},
		{"held", core.ButtonRight, core.ButtonRight, 0},
		{"released", 0, core.ButtonRight, 0},
		{"second button added", core.ButtonRight | core.ButtonUp, core.ButtonRight, core.ButtonUp},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, core.Pressed(tc.held, tc.last))
		})
	}
}

func TestMovement(t *testing.T) {
	testCases := []struct {
		name     string
		pressed  core.Buttons
		expected core.Coord
	}{
		{"none", 0, core.C(0, 0)},
		{"up", core.ButtonUp, core.C(0, -1)},
		{"down", core.ButtonDown, core.C(0, 1)},
		{"left", core.ButtonLeft, core.C(-1, 0)},
		{"right", core.ButtonRight, core.C(1, 0)},
		{"up and down: down applied last", core.ButtonUp | core.ButtonDown, core.C(0, 1)},
		{"left and right: right applied last", core.ButtonLeft | core.ButtonRight, core.C(1, 0)},
		{"up and right: diagonal", core.ButtonUp | core.ButtonRight, core.C(1, -1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, core.Movement(tc.pressed))
		})
	}
}

func TestUpdateCollectsDiamond(t *testing.T) {
	s := newState(t, map[core.Coord]core.Tile{
		core.C(3, 3): core.PlayerMarker,
		core.C(4, 3): core.Diamond,
	})
	before := s.Player.Score

	result := s.Update(core.ButtonRight)

	assert.Equal(t, core.OutcomeCollected, result.Outcome)
	assert.Equal(t, core.C(4, 3), s.Player.Pos)
	assert.Equal(t, core.Empty, s.Grid.Stored(core.C(4, 3)))
	assert.Equal(t, core.PlayerMarker, s.Tile(core.C(4, 3)))
	assert.Equal(t, before+1, s.Player.Score)
	assert.Equal(t, 0, s.DiamondsLeft())
}

func TestUpdateDigsDirt(t *testing.T) {
	s := newState(t, map[core.Coord]core.Tile{
		core.C(3, 3): core.PlayerMarker,
		core.C(3, 4): core.Dirt,
	})

	result := s.Update(core.ButtonDown)

	assert.Equal(t, core.OutcomeDug, result.Outcome)
	assert.Equal(t, core.C(3, 4), s.Player.Pos)
	assert.Equal(t, core.Empty, s.Grid.Stored(core.C(3, 4)))
	assert.Equal(t, 0, s.Player.Score)
}

func TestUpdateWalksIntoEmpty(t *testing.T) {
	s := newState(t, map[core.Coord]core.Tile{
		core.C(3, 3): core.PlayerMarker,
	})

	result := s.Update(core.ButtonLeft)

	assert.Equal(t, core.OutcomeMoved, result.Outcome)
	assert.Equal(t, core.C(3, 3), result.From)
	assert.Equal(t, core.C(2, 3), result.To)
	assert.Equal(t, core.PlayerMarker, s.Tile(core.C(2, 3)))
	assert.Equal(t, core.Empty, s.Tile(core.C(3, 3)))
}

func TestUpdateBlockedByWall(t *testing.T) {
	testCases := []struct {
		name    string
		start   core.Coord
		wall    core.Coord
		buttons core.Buttons
	}{
		{"wall tile", core.C(3, 3), core.C(3, 2), core.ButtonUp},
		{"left edge", core.C(0, 5), core.C(40, 40), core.ButtonLeft},
		{"top edge", core.C(5, 0), core.C(40, 40), core.ButtonUp},
		{"right edge", core.C(core.W-1, 5), core.C(40, 40), core.ButtonRight},
		{"bottom edge", core.C(5, core.H-1), core.C(40, 40), core.ButtonDown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newState(t, map[core.Coord]core.Tile{
				tc.start: core.PlayerMarker,
				tc.wall:  core.Wall,
			})

			result := s.Update(tc.buttons)

			assert.Equal(t, core.OutcomeBlocked, result.Outcome)
			assert.Equal(t, tc.start, s.Player.Pos)
			assert.Equal(t, tc.start, result.To)
		})
	}
}

func TestUpdateNeverPushesVertically(t *testing.T) {
	testCases := []struct {
		name    string
		rock    core.Coord
		buttons core.Buttons
	}{
		{"up", core.C(10, 9), core.ButtonUp},
		{"down", core.C(10, 11), core.ButtonDown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newState(t, map[core.Coord]core.Tile{
				core.C(10, 10): core.PlayerMarker,
				tc.rock:        core.Rock,
			})

			result := s.Update(tc.buttons)

			assert.Equal(t, core.OutcomeBlocked, result.Outcome)
			assert.Equal(t, core.C(10, 10), s.Player.Pos)
			assert.Equal(t, []core.Coord{tc.rock}, tilesOf(s.Grid, core.Rock))
		})
	}
}

func TestUpdatePushesRockHorizontally(t *testing.T) {
	testCases := []struct {
		name    string
		buttons core.Buttons
		rock    core.Coord
		pushed  core.Coord
	}{
		{"right", core.ButtonRight, core.C(11, 10), core.C(12, 10)},
		{"left", core.ButtonLeft, core.C(9, 10), core.C(8, 10)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newState(t, map[core.Coord]core.Tile{
				core.C(10, 10): core.PlayerMarker,
				tc.rock:        core.Rock,
			})

			result := s.Update(tc.buttons)

			assert.Equal(t, core.OutcomePushed, result.Outcome)
			assert.Equal(t, tc.rock, s.Player.Pos, "player takes the rock's old cell")
			assert.Equal(t, []core.Coord{tc.pushed}, tilesOf(s.Grid, core.Rock))
			assert.Equal(t, core.Empty, s.Grid.Stored(tc.rock))
		})
	}
}

func TestUpdatePushBlockedByFarCell(t *testing.T) {
	for _, far := range []core.Tile{core.Wall, core.Dirt, core.Rock, core.Diamond} {
		t.Run(far.String(), func(t *testing.T) {
			s := newState(t, map[core.Coord]core.Tile{
				core.C(10, 10): core.PlayerMarker,
				core.C(11, 10): core.Rock,
				core.C(12, 10): far,
			})
			before := s.Grid.Bytes()

			result := s.Update(core.ButtonRight)

			assert.Equal(t, core.OutcomeBlocked, result.Outcome)
			assert.Equal(t, core.C(10, 10), s.Player.Pos)
			assert.Equal(t, before, s.Grid.Bytes(), "grid must be untouched")
		})
	}
}

func TestUpdatePushBlockedByGridEdge(t *testing.T) {
	s := newState(t, map[core.Coord]core.Tile{
		core.C(core.W-2, 10): core.PlayerMarker,
		core.C(core.W-1, 10): core.Rock,
	})

	result := s.Update(core.ButtonRight)

	assert.Equal(t, core.OutcomeBlocked, result.Outcome)
	assert.Equal(t, core.Rock, s.Grid.Stored(core.C(core.W-1, 10)))
}

func TestUpdateHoldingDoesNotRepeat(t *testing.T) {
	s := newState(t, map[core.Coord]core.Tile{
		core.C(10, 10): core.PlayerMarker,
	})

	s.Update(core.ButtonRight)
	s.Update(core.ButtonRight)
	s.Update(core.ButtonRight)
	assert.Equal(t, core.C(11, 10), s.Player.Pos)

	result := s.Update(0)
	assert.Equal(t, core.OutcomeIdle, result.Outcome)

	s.Update(core.ButtonRight)
	assert.Equal(t, core.C(12, 10), s.Player.Pos)
	assert.Equal(t, uint64(5), s.Cycles)
}

func TestUpdateDiagonalEdges(t *testing.T) {
	s := newState(t, map[core.Coord]core.Tile{
		core.C(10, 10): core.PlayerMarker,
		core.C(11, 9):  core.Diamond,
	})

	result := s.Update(core.ButtonUp | core.ButtonRight)

	assert.Equal(t, core.C(1, -1), result.Delta)
	assert.Equal(t, core.C(11, 9), s.Player.Pos)
	assert.Equal(t, 1, s.Player.Score)
}

func TestUpdateScoreIsMonotonic(t *testing.T) {
	cells := map[core.Coord]core.Tile{core.C(0, 10): core.PlayerMarker}
	for x := 1; x < 20; x++ {
		switch x % 4 {
		case 0:
			cells[core.C(x, 10)] = core.Diamond
		case 1:
			cells[core.C(x, 10)] = core.Dirt
		case 2:
			cells[core.C(x, 9)] = core.Rock
		}
	}
	s := newState(t, cells)
	diamonds := s.DiamondsLeft()

	last := s.Player.Score
	for i := 0; i < 40; i++ {
		var held core.Buttons
		if i%2 == 0 {
			held = core.ButtonRight
		}
		if i%10 == 4 {
			held = core.ButtonUp
		}
		s.Update(held)
		s.Fall()
		require.GreaterOrEqual(t, s.Player.Score, last)
		last = s.Player.Score
	}

	assert.Equal(t, diamonds-s.DiamondsLeft(), s.Player.Score)
}

func TestUpdateEasesCamera(t *testing.T) {
	s := newState(t, map[core.Coord]core.Tile{
		core.C(10, 10): core.PlayerMarker,
	})
	require.Equal(t, core.Vec2{X: 10, Y: 10}, s.Player.Camera)

	s.Update(core.ButtonRight)
	assert.InDelta(t, 10.1, s.Player.Camera.X, 1e-9)
	assert.Equal(t, 10.0, s.Player.Camera.Y)

	for i := 0; i < 20; i++ {
		s.Update(0)
		assert.LessOrEqual(t, s.Player.Camera.X, 11.0)
	}
	assert.Equal(t, core.Vec2{X: 11, Y: 10}, s.Player.Camera)
}
