package core

// Buttons is a bitmask of held direction buttons.
type Buttons uint8

const (
	ButtonUp Buttons = 1 << iota
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Has reports whether every bit of b2 is set in b.
func (b Buttons) Has(b2 Buttons) bool {
	return b&b2 == b2
}

// Pressed returns the buttons held now that were not held last time.
func Pressed(held, last Buttons) Buttons {
	return held & (held ^ last)
}

// Outcome is how a controller cycle resolved.
type Outcome uint8

const (
	OutcomeIdle      Outcome = iota // No new direction pressed
	OutcomeMoved                    // Walked into Empty
	OutcomeBlocked                  // Wall or unpushable rock; move reverted
	OutcomePushed                   // Pushed a rock sideways
	OutcomeDug                      // Cleared a dirt cell
	OutcomeCollected                // Collected a diamond
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "Idle"
	case OutcomeMoved:
		return "Moved"
	case OutcomeBlocked:
		return "Blocked"
	case OutcomePushed:
		return "Pushed"
	case OutcomeDug:
		return "Dug"
	case OutcomeCollected:
		return "Collected"
	default:
		return "Unknown"
	}
}

// MoveResult describes one controller cycle.
type MoveResult struct {
	Delta   Coord
	From    Coord
	To      Coord // Final position; equals From when blocked
	Outcome Outcome
}

// Movement converts newly pressed buttons to a movement vector. Each
// button overwrites its own axis, in the order up, down, left, right.
// Pressing both axes at once yields a diagonal step.
func Movement(pressed Buttons) Coord {
	var m Coord
	if pressed.Has(ButtonUp) {
		m.Y = -1
	}
	if pressed.Has(ButtonDown) {
		m.Y = 1
	}
	if pressed.Has(ButtonLeft) {
		m.X = -1
	}
	if pressed.Has(ButtonRight) {
		m.X = 1
	}
	return m
}

// Update runs one controller cycle with the currently held buttons.
// Only buttons that went down since the previous cycle move the player.
// Illegal moves are reverted silently.
func (s *State) Update(held Buttons) MoveResult {
	movement := Movement(Pressed(held, s.lastButtons))
	s.lastButtons = held

	from := s.Player.Pos
	result := MoveResult{Delta: movement, From: from, Outcome: OutcomeMoved}
	if movement.IsZero() {
		result.Outcome = OutcomeIdle
	}

	s.Player.Pos = from.Plus(movement)
	pos := s.Player.Pos

	switch s.Tile(pos) {
	case Wall:
		s.Player.Pos = from
		result.Outcome = OutcomeBlocked

	case Rock:
		switch {
		case movement.X > 0 && s.Tile(pos.Add(1, 0)) == Empty:
			s.Grid.Set(pos.Add(1, 0), Rock)
			s.Grid.Set(pos, Empty)
			result.Outcome = OutcomePushed
		case movement.X < 0 && s.Tile(pos.Add(-1, 0)) == Empty:
			s.Grid.Set(pos.Add(-1, 0), Rock)
			s.Grid.Set(pos, Empty)
			result.Outcome = OutcomePushed
		default:
			s.Player.Pos = from
			result.Outcome = OutcomeBlocked
		}

	case Diamond:
		s.Player.Score++
		s.Grid.Set(pos, Empty)
		result.Outcome = OutcomeCollected

	case Dirt:
		s.Grid.Set(pos, Empty)
		result.Outcome = OutcomeDug
	}

	result.To = s.Player.Pos
	s.Player.Camera.Ease(s.Player.Pos, s.CameraStep)
	s.Cycles++
	return result
}
