package segment

import (
	"image"
	"image/color"

	"github.com/ironsheep/stimulus-features/internal/imaging"
)

// Palette holds the two reference colors that define the color groups.
type Palette struct {
	Color1 imaging.RGBColor
	Color2 imaging.RGBColor
}

// Result is the output of Segment.
type Result struct {
	// Count1 is the number of pixels exactly equal to Palette.Color1.
	Count1 int

	// Count2 is the number of pixels exactly equal to Palette.Color2.
	Count2 int

	// Grid labels every pixel. Its dimensions equal the image's.
	Grid *Grid
}

// Count returns the pixel count for a group label, or 0 for Background.
func (r *Result) Count(l Label) int {
	switch l {
	case Group1:
		return r.Count1
	case Group2:
		return r.Count2
	}
	return 0
}

// Segment classifies every pixel of img against the palette.
//
// A pixel is Group1 if its R, G and B equal Color1, otherwise Group2 if they
// equal Color2, otherwise Background. There is no tolerance: antialiased edge
// pixels are background. Alpha is ignored and channels are compared as
// straight 8-bit values.
//
// Runs in O(width × height). *image.NRGBA input is read directly from its
// pixel buffer; any other image type goes through color.NRGBAModel.
func Segment(img image.Image, p Palette) *Result {
	bounds := img.Bounds()
	grid := NewGrid(bounds.Dx(), bounds.Dy())
	res := &Result{Grid: grid}

	classify := func(x, y int, r, g, b uint8) {
		switch {
		case r == p.Color1.R && g == p.Color1.G && b == p.Color1.B:
			res.Count1++
			grid.cells[y*grid.width+x] = Group1
		case r == p.Color2.R && g == p.Color2.G && b == p.Color2.B:
			res.Count2++
			grid.cells[y*grid.width+x] = Group2
		}
	}

	if n, ok := img.(*image.NRGBA); ok {
		for y := 0; y < grid.height; y++ {
			off := n.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := 0; x < grid.width; x++ {
				px := n.Pix[off+x*4 : off+x*4+3]
				classify(x, y, px[0], px[1], px[2])
			}
		}
		return res
	}

	for y := 0; y < grid.height; y++ {
		for x := 0; x < grid.width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			classify(x, y, c.R, c.G, c.B)
		}
	}
	return res
}
