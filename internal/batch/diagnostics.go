package batch

import (
	"image"
	"strconv"

	"github.com/ironsheep/stimulus-features/internal/imaging"
	"github.com/ironsheep/stimulus-features/internal/segment"
)

// dominantColorsReported is how many colors the missing-group warning lists.
const dominantColorsReported = 5

// diagnose logs warnings for images that are probably mislabeled or were
// rendered with different colors than configured. It never fails the image.
func (r *Runner) diagnose(rel string, img *image.NRGBA, seg *segment.Result, labels Labels) {
	p := r.cfg.Palette()

	var dominant []imaging.ColorFrequency
	for _, g := range []struct {
		label segment.Label
		ref   imaging.RGBColor
	}{
		{segment.Group1, p.Color1},
		{segment.Group2, p.Color2},
	} {
		if seg.Count(g.label) > 0 {
			continue
		}
		if dominant == nil {
			dominant = imaging.DominantColors(img, dominantColorsReported)
		}
		if best, dist, ok := imaging.Nearest(dominant, g.ref); ok {
			r.log.Warnf("%s: no %s pixels match %s; nearest dominant color is %s (%d px, Lab distance %.3f)",
				rel, g.label, g.ref.Hex(), best.Color.Hex(), best.Pixels, dist)
		}
	}

	if !r.cfg.CheckComponents {
		return
	}
	for _, c := range []struct {
		label segment.Label
		text  string
	}{
		{segment.Group1, labels.First},
		{segment.Group2, labels.Second},
	} {
		blobs := seg.Grid.Components(c.label)
		if want, ok := checkCount(c.text, blobs); !ok {
			r.log.Warnf("%s: filename says %d %s objects, found %d", rel, want, c.label, blobs)
		}
	}
}

// checkCount compares a blob count with a filename label. Labels that are
// not plain integers are not checked.
func checkCount(label string, blobs int) (want int, ok bool) {
	n, err := strconv.Atoi(label)
	if err != nil {
		return 0, true
	}
	return n, n == blobs
}
