// Package hit provides point-in-rectangle and point-in-circle checks.
package hit

import (
	"math"

	"github.com/verte-zerg/humanbench/internal/model"
)

// RectContains reports whether p lies in [r.X, r.X+r.W) × [r.Y, r.Y+r.H).
func RectContains(r model.Rect, p model.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// CircleContains reports whether p is within radius of center.
func CircleContains(center model.Point, radius float64, p model.Point) bool {
	dx := float64(p.X - center.X)
	dy := float64(p.Y - center.Y)
	return math.Hypot(dx, dy) <= radius
}

// IconRadius is the circular hit radius for a square icon: half its width, truncated.
func IconRadius(icon model.Size) float64 {
	return float64(icon.W / 2)
}

// AnyRect returns the index of the first rect containing p, or -1.
func AnyRect(rects []model.Rect, p model.Point) int {
	for i, r := range rects {
		if RectContains(r, p) {
			return i
		}
	}
	return -1
}
