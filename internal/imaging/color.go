package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// ParseColor parses a hex color string such as "#FFFF00", "FFFF00" or "#FF0".
//
// Returns an error if the string is empty or not a valid 3 or 6 digit hex
// color. Case is ignored.
func ParseColor(s string) (RGBColor, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGBColor{}, fmt.Errorf("empty color string")
	}
	if s[0] != '#' {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return RGBColor{}, fmt.Errorf("invalid color %q: want #RGB or #RRGGBB", s)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return RGBColor{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBColor{R: r, G: g, B: b}, nil
}

// MustParseColor is like ParseColor but panics on error. Intended for
// package-level defaults and tests.
func MustParseColor(s string) RGBColor {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color formatted as "#RRGGBB".
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGBColor) String() string {
	return c.Hex()
}

// NRGBA returns the opaque color.NRGBA equivalent.
func (c RGBColor) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Colorful returns the go-colorful representation, for perceptual distances.
func (c RGBColor) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Color      RGBColor `json:"rgb"`
	Pixels     int      `json:"pixels"`
	Percentage float64  `json:"percentage"` // Percentage of pixels with this color (0-100)
}

// DominantColors returns the count most common exact colors in an image.
//
// Unlike a palette extractor this does not quantize: stimulus images are
// supposed to contain only a handful of exact colors, and the point of the
// report is to show near misses such as #FEFE00 next to #FFFF00.
//
// Colors are sorted by pixel count descending; ties are broken by hex value so
// the order is stable. Alpha is ignored.
func DominantColors(img *image.NRGBA, count int) []ColorFrequency {
	bounds := img.Bounds()
	counts := make(map[RGBColor]int)
	total := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, y):]
		for i := 0; i < bounds.Dx(); i++ {
			px := row[i*4 : i*4+3]
			counts[RGBColor{R: px[0], G: px[1], B: px[2]}]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Color:      c,
			Pixels:     n,
			Percentage: float64(n) / float64(total) * 100,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Pixels != colors[j].Pixels {
			return colors[i].Pixels > colors[j].Pixels
		}
		return colors[i].Color.Hex() < colors[j].Color.Hex()
	})

	if count > 0 && len(colors) > count {
		colors = colors[:count]
	}
	return colors
}

// Nearest returns the entry of colors closest to target in CIE L*a*b* space
// and its distance. ok is false when colors is empty.
func Nearest(colors []ColorFrequency, target RGBColor) (best ColorFrequency, dist float64, ok bool) {
	t := target.Colorful()
	for i, c := range colors {
		d := t.DistanceLab(c.Color.Colorful())
		if i == 0 || d < dist {
			best, dist, ok = c, d, true
		}
	}
	return best, dist, ok
}
