package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks/core"
	"github.com/vovakirdan/rocks-diamonds/internal/registry"
)

func TestBundledLevelsAreValid(t *testing.T) {
	levels, err := Levels()
	require.NoError(t, err)
	require.NotEmpty(t, levels)

	for _, lvl := range levels {
		t.Run(lvl.ID, func(t *testing.T) {
			s, err := core.NewState(lvl.Data)
			require.NoError(t, err)
			assert.Positive(t, s.DiamondsLeft(), "level should have diamonds")
			assert.True(t, registry.Exists(lvl.ID), "level should be registered")
		})
	}
}

func TestRegisteredLevelsAreCopies(t *testing.T) {
	a, err := registry.Load("00-tutorial")
	require.NoError(t, err)
	b, err := registry.Load("00-tutorial")
	require.NoError(t, err)

	a.Data[0] = byte(core.Empty)
	assert.Equal(t, byte(core.Wall), b.Data[0])
	assert.Equal(t, "Tutorial", a.Title)
}

func TestTutorialSettles(t *testing.T) {
	lvl, err := registry.Load("00-tutorial")
	require.NoError(t, err)
	s, err := core.NewState(lvl.Data)
	require.NoError(t, err)

	rocks := s.Grid.Count(core.Rock)
	for i := 0; i < 100; i++ {
		s.Fall()
	}
	assert.Equal(t, rocks, s.Grid.Count(core.Rock))
	assert.Empty(t, s.Fall().Moves)
	assert.Equal(t, core.C(1, 1), s.Player.Pos)
}
