package core

// DefaultCameraStep is how far the camera eases per controller cycle,
// in grid units.
const DefaultCameraStep = 0.1

// Vec2 is a continuous 2D value in grid units.
type Vec2 struct {
	X float64
	Y float64
}

// Ease moves v toward target by at most step on each axis.
// It snaps when closer than step so it never passes the target.
func (v *Vec2) Ease(target Coord, step float64) {
	v.X = approach(v.X, float64(target.X), step)
	v.Y = approach(v.Y, float64(target.Y), step)
}

func approach(cur, target, step float64) float64 {
	switch {
	case cur < target:
		if target-cur <= step {
			return target
		}
		return cur + step
	case cur > target:
		if cur-target <= step {
			return target
		}
		return cur - step
	default:
		return cur
	}
}

// Transform is a pixel-space translation applied by the renderer.
// A cell at pixel (px, py) is drawn at (px - TX, py - TY).
type Transform struct {
	TX float64
	TY float64
}

// LineTransform returns the transform for a given screen row.
// Renderers that draw scanline by scanline call it once per row.
type LineTransform func(row int) Transform

// CameraTransform centers the camera on the screen: the camera position
// scaled by tileSize, shifted back by half the screen.
func CameraTransform(cam Vec2, tileSize, screenW, screenH int) Transform {
	return Transform{
		TX: cam.X*float64(tileSize) - float64(screenW/2),
		TY: cam.Y*float64(tileSize) - float64(screenH/2),
	}
}
