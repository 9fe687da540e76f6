package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG encodes img into dir/name and returns the path.
func writeTestPNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// createInMemoryImage creates an in-memory test image filled with one color
func createInMemoryImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "solid.png", createInMemoryImage(100, 60, color.RGBA{255, 255, 0, 255}))

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 60 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x60", bounds.Dx(), bounds.Dy())
	}

	got := img.NRGBAAt(10, 10)
	if got != (color.NRGBA{255, 255, 0, 255}) {
		t.Errorf("pixel: got %v, want yellow", got)
	}
}

func TestLoad_PalettedImage(t *testing.T) {
	// Stimulus generators often write paletted PNGs
	pal := color.Palette{
		color.RGBA{128, 128, 128, 255},
		color.RGBA{0, 0, 255, 255},
	}
	img := image.NewPaletted(image.Rect(0, 0, 8, 8), pal)
	img.SetColorIndex(3, 4, 1)

	path := writeTestPNG(t, t.TempDir(), "paletted.png", img)

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := loaded.NRGBAAt(3, 4); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("pixel (3,4): got %v, want blue", got)
	}
	if got := loaded.NRGBAAt(0, 0); got != (color.NRGBA{128, 128, 128, 255}) {
		t.Errorf("pixel (0,0): got %v, want gray", got)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	_, err := Load("/nonexistent/path/to/image.png")
	if err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestLoad_InvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("Load should fail for invalid image data")
	}
}

func TestToNRGBA_OffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 15, 10))
	src.Set(5, 5, color.RGBA{0, 0, 255, 255})

	got := ToNRGBA(src)
	if got.Bounds().Min != (image.Point{}) {
		t.Fatalf("bounds should start at origin, got %v", got.Bounds())
	}
	if got.Bounds().Dx() != 10 || got.Bounds().Dy() != 5 {
		t.Errorf("dimensions: got %dx%d, want 10x5", got.Bounds().Dx(), got.Bounds().Dy())
	}
	if c := got.NRGBAAt(0, 0); c != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("pixel (0,0): got %v, want blue", c)
	}
}

func TestToNRGBA_PassThrough(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if ToNRGBA(src) != src {
		t.Error("ToNRGBA should return an origin-based NRGBA unchanged")
	}
}

func TestDescribe(t *testing.T) {
	img := createInMemoryImage(200, 150, color.RGBA{255, 128, 64, 255})

	info := Describe("/stimuli/stim_a_1_2.png", img)
	if info.Width != 200 {
		t.Errorf("Width: got %d, want 200", info.Width)
	}
	if info.Height != 150 {
		t.Errorf("Height: got %d, want 150", info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
}

func TestFormatFromExt(t *testing.T) {
	tests := []struct {
		ext    string
		format string
	}{
		{".png", "png"},
		{".PNG", "png"},
		{".jpg", "jpeg"},
		{".jpeg", "jpeg"},
		{".gif", "gif"},
		{".bmp", "bmp"},
		{".tif", "tiff"},
		{".tiff", "tiff"},
		{".webp", "webp"},
		{".xyz", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := FormatFromExt("image" + tt.ext); got != tt.format {
				t.Errorf("Format for %s: got %s, want %s", tt.ext, got, tt.format)
			}
		})
	}
}
