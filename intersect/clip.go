package intersect

import "github.com/osuushi/geom"

// ClipPolygons clips the subject polygon against the clip polygon with the
// Sutherland-Hodgman algorithm and returns the overlap polygon. The clip
// polygon must be convex; the subject may be concave. Either winding is
// accepted for the clip polygon (the inside test is oriented to it). Returns
// false when the polygons do not overlap.
func ClipPolygons(subject, clip []float64) ([]float64, bool) {
	if len(subject) < 6 || len(clip) < 6 {
		return nil, false
	}

	// Interior of a counterclockwise polygon is left of each directed edge;
	// flip the test for clockwise input.
	sign := 1.0
	if geom.IsClockwise(clip, 0, len(clip)) {
		sign = -1
	}

	output := append([]float64(nil), subject...)
	for i := 0; i < len(clip); i += 2 {
		if len(output) == 0 {
			return nil, false
		}
		ex1, ey1 := clip[i], clip[i+1]
		ni := i + 2
		if ni == len(clip) {
			ni = 0
		}
		ex2, ey2 := clip[ni], clip[ni+1]

		input := output
		output = nil
		sx, sy := input[len(input)-2], input[len(input)-1]
		sInside := sign*((ex2-ex1)*(sy-ey1)-(ey2-ey1)*(sx-ex1)) >= 0
		for j := 0; j < len(input); j += 2 {
			px, py := input[j], input[j+1]
			pInside := sign*((ex2-ex1)*(py-ey1)-(ey2-ey1)*(px-ex1)) >= 0
			if pInside != sInside {
				// The edge crosses the clip line.
				if ip, ok := Lines(sx, sy, px, py, ex1, ey1, ex2, ey2); ok {
					output = append(output, ip.X, ip.Y)
				}
			}
			if pInside {
				output = append(output, px, py)
			}
			sx, sy, sInside = px, py, pInside
		}
	}

	if len(output) < 6 {
		return nil, false
	}
	return output, true
}
