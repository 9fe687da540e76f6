package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// SaveMask writes a label-mask preview as a PNG file, creating parent
// directories as needed.
//
// Parameters:
//   - path: Destination file. The PNG encoder is used regardless of extension.
//   - img: The rendered mask.
//   - scale: Enlargement factor. Values <= 1 write the mask at its native
//     size. Scaling uses nearest-neighbor sampling so every pixel stays one of
//     the three mask colors.
func SaveMask(path string, img image.Image, scale int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create mask directory: %w", err)
	}

	if scale > 1 {
		b := img.Bounds()
		img = imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
	}

	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to write mask %s: %w", path, err)
	}
	return nil
}
