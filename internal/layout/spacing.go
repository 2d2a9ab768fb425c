package layout

import (
	"math"

	"github.com/golang/geo/s2"
)

// SpacingStats summarises nearest-neighbour angular separation (rad).
type SpacingStats struct {
	Min  float64 `json:"min"`
	Mean float64 `json:"mean"`
	Max  float64 `json:"max"`
}

// Spacing measures how evenly pts cover the sphere. Points are projected
// to the unit sphere, so the result does not depend on the radius.
func Spacing(pts []Vec3) SpacingStats {
	if len(pts) < 2 {
		return SpacingStats{}
	}

	sp := make([]s2.Point, len(pts))
	for i, p := range pts {
		sp[i] = s2.PointFromCoords(p.X, p.Y, p.Z)
	}

	stats := SpacingStats{Min: math.Inf(1)}
	sum := 0.0
	for i := range sp {
		nearest := math.Inf(1)
		for j := range sp {
			if i == j {
				continue
			}
			if d := sp[i].Distance(sp[j]).Radians(); d < nearest {
				nearest = d
			}
		}
		sum += nearest
		stats.Min = math.Min(stats.Min, nearest)
		stats.Max = math.Max(stats.Max, nearest)
	}
	stats.Mean = sum / float64(len(sp))
	return stats
}
