package recognize

import (
	"image"
	"math"
)

// gamma corrected relative luminance, per ITU-R BT.709 over linearized
// sRGB channels

func linearize(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// luminance returns the relative luminance of the pixel at (x, y), in
// [0, 1]. Coordinates are absolute in the image's own space.
func luminance(img image.Image, x, y int) float64 {
	r, g, b, _ := img.At(x, y).RGBA()
	rl := linearize(float64(r) / 0xFFFF)
	gl := linearize(float64(g) / 0xFFFF)
	bl := linearize(float64(b) / 0xFFFF)
	return 0.2126*rl + 0.7152*gl + 0.0722*bl
}

// blockLuminance averages the luminance over a w x h block whose top left
// corner sits at (x, y) relative to the image origin. Samples outside the
// image are skipped; ok is false when the whole block lies outside.
// The summation order is fixed, so the result is deterministic.
func blockLuminance(img image.Image, x, y, w, h int) (l float64, ok bool) {
	bounds := img.Bounds()
	var sum float64
	n := 0
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			px, py := bounds.Min.X+xx, bounds.Min.Y+yy
			if px < bounds.Min.X || px >= bounds.Max.X ||
				py < bounds.Min.Y || py >= bounds.Max.Y {
				continue
			}
			sum += luminance(img, px, py)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
