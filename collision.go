package yars

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a position in world space. The origin is the centre of the
// screen, x grows to the right and y grows downwards.
type Transform struct {
	Pos mgl32.Vec3
}

// IntersectRect reports whether two axis aligned rectangles, given by their
// centres and full sizes, overlap. Touching edges do not count.
func IntersectRect(aPos mgl32.Vec3, aSize mgl32.Vec2, bPos mgl32.Vec3, bSize mgl32.Vec2) bool {
	dx := aPos.X() - bPos.X()
	dy := aPos.Y() - bPos.Y()
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx < (aSize.X()+bSize.X())/2 && dy < (aSize.Y()+bSize.Y())/2
}

// IsOffscreen reports whether pos lies outside a screen of the given size
// centred on the origin.
func IsOffscreen(pos mgl32.Vec3, screen mgl32.Vec2) bool {
	halfW, halfH := screen.X()/2, screen.Y()/2
	return pos.X() < -halfW || pos.X() > halfW || pos.Y() < -halfH || pos.Y() > halfH
}

func clampToScreen(pos mgl32.Vec3, size, screen mgl32.Vec2) mgl32.Vec3 {
	maxX := (screen.X() - size.X()) / 2
	maxY := (screen.Y() - size.Y()) / 2
	pos[0] = mgl32.Clamp(pos[0], -maxX, maxX)
	pos[1] = mgl32.Clamp(pos[1], -maxY, maxY)
	return pos
}
