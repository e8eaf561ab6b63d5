package core

// MoveKind tells how a rock moved during a gravity pass.
type MoveKind uint8

const (
	MoveFall MoveKind = iota
	MoveSlideLeft
	MoveSlideRight
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	switch k {
	case MoveFall:
		return "Fall"
	case MoveSlideLeft:
		return "SlideLeft"
	case MoveSlideRight:
		return "SlideRight"
	default:
		return "Unknown"
	}
}

// RockMove records one rock relocation.
type RockMove struct {
	From Coord
	To   Coord
	Kind MoveKind
}

// FallResult describes what happened during one gravity pass.
type FallResult struct {
	Tick  uint64
	Moves []RockMove
}

// Fall advances every rock by one grain in a single full-grid pass.
//
// Columns are scanned left to right; each column bottom to top, from row
// H-1 up to row 1. Scanning upward means a rock that just dropped into the
// row below is never examined again in the same pass. Row 0 is not
// examined.
//
// For each Rock:
//  1. Below is Empty: the rock falls one cell.
//  2. Below is Rock: it slides down-left when left and below-left are
//     both Empty, otherwise down-right when right and below-right are.
//  3. Anything else (Wall, Dirt, Diamond, the player): it stays.
func (s *State) Fall() FallResult {
	result := FallResult{Moves: make([]RockMove, 0)}

	for x := 0; x < W; x++ {
		for y := H - 1; y > 0; y-- {
			at := C(x, y)
			if s.Tile(at) != Rock {
				continue
			}

			below := at.Add(0, 1)
			switch s.Tile(below) {
			case Empty:
				s.moveRock(&result, at, below, MoveFall)
			case Rock:
				left, belowLeft := at.Add(-1, 0), at.Add(-1, 1)
				right, belowRight := at.Add(1, 0), at.Add(1, 1)
				if s.Tile(left) == Empty && s.Tile(belowLeft) == Empty {
					s.moveRock(&result, at, belowLeft, MoveSlideLeft)
				} else if s.Tile(right) == Empty && s.Tile(belowRight) == Empty {
					s.moveRock(&result, at, belowRight, MoveSlideRight)
				}
			}
		}
	}

	s.Ticks++
	result.Tick = s.Ticks
	return result
}

func (s *State) moveRock(result *FallResult, from, to Coord, kind MoveKind) {
	s.Grid.Set(from, Empty)
	s.Grid.Set(to, Rock)
	result.Moves = append(result.Moves, RockMove{From: from, To: to, Kind: kind})
}
