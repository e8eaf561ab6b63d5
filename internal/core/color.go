package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer.
type Color uint8

// Palette used by the Rocks & Diamonds renderer.
const (
	ColorDefault Color = iota
	ColorDirt          // brown-orange earth
	ColorWall          // steel blue
	ColorRock          // light gray boulders
	ColorDiamond       // bright cyan gems
	ColorPlayer        // bright green digger
	ColorHUD           // yellow status line
	ColorMuted         // gray hints and overlays
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorDirt:
		return "dirt"
	case ColorWall:
		return "wall"
	case ColorRock:
		return "rock"
	case ColorDiamond:
		return "diamond"
	case ColorPlayer:
		return "player"
	case ColorHUD:
		return "hud"
	case ColorMuted:
		return "muted"
	default:
		return "unknown"
	}
}
