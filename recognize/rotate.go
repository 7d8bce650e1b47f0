package recognize

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Rotate returns the image turned by the given angle, in degrees, about
// its top left corner (positive angles turn clockwise with the y axis
// pointing down). The output canvas is grown to hold the whole rotated
// source and filled with white, so thresholding reads the uncovered area
// as background. The result is also what a rotated-preview renderer
// displays to the user before extraction.
func Rotate(img image.Image, degrees float64) *image.RGBA {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())

	// bounding box of the four rotated corners
	xs := [4]float64{0, w * cos, -h * sin, w*cos - h*sin}
	ys := [4]float64{0, w * sin, h * cos, w*sin + h*cos}
	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 1; i < 4; i++ {
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}

	out := image.NewRGBA(image.Rect(0, 0,
		int(math.Ceil(maxX-minX)), int(math.Ceil(maxY-minY))))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)

	mx, my := float64(bounds.Min.X), float64(bounds.Min.Y)
	m := f64.Aff3{
		cos, -sin, -cos*mx + sin*my - minX,
		sin, cos, -sin*mx - cos*my - minY,
	}
	draw.NearestNeighbor.Transform(out, m, img, bounds, draw.Over, nil)
	return out
}
