package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGBColor
	}{
		{"yellow", "#FFFF00", RGBColor{255, 255, 0}},
		{"blue lowercase", "#0000ff", RGBColor{0, 0, 255}},
		{"gray", "#808080", RGBColor{128, 128, 128}},
		{"no hash", "FFFF00", RGBColor{255, 255, 0}},
		{"short form", "#FF0", RGBColor{255, 255, 0}},
		{"surrounding space", "  #000000 ", RGBColor{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, s := range []string{"", "#", "#GGGGGG", "#FFFF00AA", "#FFFF", "yellow"} {
		t.Run(s, func(t *testing.T) {
			if _, err := ParseColor(s); err == nil {
				t.Errorf("ParseColor(%q) should fail", s)
			}
		})
	}
}

func TestRGBColor_Hex(t *testing.T) {
	c := RGBColor{R: 255, G: 128, B: 64}
	if c.Hex() != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", c.Hex())
	}
	if c.String() != c.Hex() {
		t.Errorf("String should match Hex")
	}
	if c.NRGBA() != (color.NRGBA{255, 128, 64, 255}) {
		t.Errorf("NRGBA: got %v", c.NRGBA())
	}
}

func TestDominantColors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			switch {
			case x < 2:
				img.SetNRGBA(x, y, color.NRGBA{254, 255, 0, 255}) // 20 px near-yellow
			case x < 3:
				img.SetNRGBA(x, y, color.NRGBA{0, 0, 255, 255}) // 10 px blue
			default:
				img.SetNRGBA(x, y, color.NRGBA{128, 128, 128, 255}) // 70 px gray
			}
		}
	}

	colors := DominantColors(img, 5)
	if len(colors) != 3 {
		t.Fatalf("expected 3 colors, got %d", len(colors))
	}

	if colors[0].Color.Hex() != "#808080" || colors[0].Pixels != 70 {
		t.Errorf("first: got %s/%d, want #808080/70", colors[0].Color.Hex(), colors[0].Pixels)
	}
	if colors[1].Color.Hex() != "#FEFF00" || colors[1].Pixels != 20 {
		t.Errorf("second: got %s/%d, want #FEFF00/20", colors[1].Color.Hex(), colors[1].Pixels)
	}
	if colors[0].Percentage != 70 {
		t.Errorf("percentage: got %f, want 70", colors[0].Percentage)
	}

	limited := DominantColors(img, 1)
	if len(limited) != 1 {
		t.Errorf("count limit: got %d colors, want 1", len(limited))
	}
}

func TestDominantColors_StableTieOrder(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 1, 255})

	for i := 0; i < 10; i++ {
		colors := DominantColors(img, 0)
		if colors[0].Color.Hex() != "#000001" || colors[1].Color.Hex() != "#0000FF" {
			t.Fatalf("tie order not stable: %v", colors)
		}
	}
}

func TestNearest(t *testing.T) {
	colors := []ColorFrequency{
		{Color: RGBColor{128, 128, 128}, Pixels: 70},
		{Color: RGBColor{254, 255, 0}, Pixels: 20},
		{Color: RGBColor{0, 0, 255}, Pixels: 10},
	}

	best, dist, ok := Nearest(colors, RGBColor{255, 255, 0})
	if !ok {
		t.Fatal("Nearest should find a color")
	}
	if best.Color != (RGBColor{254, 255, 0}) {
		t.Errorf("nearest: got %s, want #FEFF00", best.Color.Hex())
	}
	if dist <= 0 || dist > 0.05 {
		t.Errorf("distance: got %f, want small positive value", dist)
	}

	if _, _, ok := Nearest(nil, RGBColor{}); ok {
		t.Error("Nearest on empty input should report !ok")
	}
}
