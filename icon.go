package main

import "math"

// AppIconRGBA generates a 64x64 RGBA byte slice for the application icon.
// Draws a ticket stub: rounded body with edge notches and a perforation
// line. White on transparent background with antialiased edges.
func AppIconRGBA() ([]byte, int, int) {
	const size = 64
	rgba := make([]byte, size*size*4)

	const (
		cx, cy = 32.0, 32.0
		hw, hh = 24.0, 13.0 // body half extents
		corner = 5.0
		notchR = 5.5
		perfX  = 42.0 // perforation line between stub and body
	)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			idx := (y*size + x) * 4
			fx := float64(x) + 0.5
			fy := float64(y) + 0.5

			// Rounded-rect body.
			dx := math.Abs(fx-cx) - (hw - corner)
			dy := math.Abs(fy-cy) - (hh - corner)
			if dx < 0 {
				dx = 0
			}
			if dy < 0 {
				dy = 0
			}
			d := math.Sqrt(dx*dx+dy*dy) - corner

			alpha := 0.0
			if d <= 0 {
				alpha = 1.0
			} else if d <= 0.8 {
				alpha = (0.8 - d) / 0.8
			}

			// Notches cut into the left and right edges.
			for _, nx := range [2]float64{cx - hw, cx + hw} {
				nd := math.Sqrt((fx-nx)*(fx-nx) + (fy-cy)*(fy-cy))
				if nd <= notchR {
					alpha = 0.0
				} else if nd <= notchR+0.8 {
					alpha = math.Min(alpha, (nd-notchR)/0.8)
				}
			}

			// Perforation dashes.
			if alpha > 0 && math.Abs(fx-perfX) <= 0.7 && y%6 < 3 {
				alpha = 0.0
			}

			if alpha > 0.0 {
				a := uint8(math.Min(alpha, 1.0) * 255.0)
				rgba[idx] = 255
				rgba[idx+1] = 255
				rgba[idx+2] = 255
				rgba[idx+3] = a
			}
		}
	}

	return rgba, size, size
}
