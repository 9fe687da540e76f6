package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/cyclopcam/logs"

	"github.com/ironsheep/stimulus-features/internal/config"
	"github.com/ironsheep/stimulus-features/internal/hull"
	"github.com/ironsheep/stimulus-features/internal/imaging"
	"github.com/ironsheep/stimulus-features/internal/segment"
)

// Report summarizes a run.
type Report struct {
	// Discovered is the number of matching files found under the input root.
	Discovered int

	// Records holds one entry per successfully processed image, in
	// discovery order.
	Records []Record

	// Failures holds the images skipped under config.OnErrorSkip.
	Failures []*ImageError

	// Written is true once the CSV has been moved into place.
	Written bool
}

// Runner processes images according to a validated Config.
type Runner struct {
	cfg      *config.Config
	log      logs.Log
	progress io.Writer
}

// NewRunner validates cfg and returns a Runner. Progress lines ("<n> <image>")
// go to progress; pass nil to discard them.
func NewRunner(cfg *config.Config, log logs.Log, progress io.Writer) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Runner{cfg: cfg, log: log, progress: progress}, nil
}

// Run is shorthand for NewRunner followed by Runner.Run.
func Run(ctx context.Context, cfg *config.Config, log logs.Log, progress io.Writer) (*Report, error) {
	r, err := NewRunner(cfg, log, progress)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx)
}

// Run processes every discovered image and writes the CSV.
//
// The context is checked between images; cancellation stops the run without
// writing output and returns the context's error. Under config.OnErrorAbort
// the first *ImageError is returned and no CSV is written; mask previews of
// images processed before the failure are left in place. The returned
// Report is non-nil whenever discovery succeeded.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	files, err := Discover(r.cfg.InputDir, r.cfg.Extension)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Discovered: len(files),
		Records:    make([]Record, 0, len(files)),
	}
	r.log.Infof("Found %d %s images under %s", len(files), r.cfg.Extension, r.cfg.InputDir)

	for i, rel := range files {
		if err := ctx.Err(); err != nil {
			r.log.Warnf("Stopped after %d of %d images: %v", i, len(files), err)
			return report, err
		}

		fmt.Fprintf(r.progress, "%d %s\n", i+1, rel)

		rec, err := r.ProcessImage(rel)
		if err != nil {
			var ie *ImageError
			if r.cfg.OnError == config.OnErrorSkip && errors.As(err, &ie) {
				r.log.Warnf("Skipping %s (%s stage): %v", ie.Path, ie.Stage, ie.Err)
				report.Failures = append(report.Failures, ie)
				continue
			}
			r.log.Errorf("Aborting at %s, no CSV written", rel)
			return report, err
		}
		report.Records = append(report.Records, *rec)
	}

	if err := WriteCSV(r.cfg.OutputFile, report.Records); err != nil {
		return report, err
	}
	report.Written = true

	r.log.Infof("Wrote %d rows to %s (%d skipped)", len(report.Records), r.cfg.OutputFile, len(report.Failures))
	return report, nil
}

// ProcessImage runs the full pipeline on one image, given its path relative
// to the input root. Every error returned is an *ImageError.
func (r *Runner) ProcessImage(rel string) (*Record, error) {
	fail := func(stage Stage, err error) (*Record, error) {
		return nil, &ImageError{Path: rel, Stage: stage, Err: err}
	}

	labels, err := ParseName(rel)
	if err != nil {
		return fail(StageName, err)
	}

	full := filepath.Join(r.cfg.InputDir, filepath.FromSlash(rel))
	img, err := imaging.Load(full)
	if err != nil {
		return fail(StageLoad, err)
	}
	if r.cfg.Verbose {
		info := imaging.Describe(full, img)
		r.log.Debugf("Loaded %s: %dx%d %s", rel, info.Width, info.Height, info.Format)
	}

	seg := segment.Segment(img, r.cfg.Palette())
	if seg.Grid.Width() != img.Bounds().Dx() || seg.Grid.Height() != img.Bounds().Dy() {
		return fail(StageSegment, fmt.Errorf("label grid %dx%d does not match image %v", seg.Grid.Width(), seg.Grid.Height(), img.Bounds().Size()))
	}

	hull1, err := hull.LabelArea(seg.Grid, segment.Group1, r.cfg.Policy())
	if err != nil {
		return fail(StageHull, err)
	}
	hull2, err := hull.LabelArea(seg.Grid, segment.Group2, r.cfg.Policy())
	if err != nil {
		return fail(StageHull, err)
	}

	r.diagnose(rel, img, seg, labels)

	if r.cfg.MaskDir != "" {
		if err := r.writeMask(rel, seg.Grid); err != nil {
			return fail(StageMask, err)
		}
	}

	return &Record{
		Image:  rel,
		Labels: labels,
		Count1: seg.Count1,
		Count2: seg.Count2,
		Hull1:  hull1,
		Hull2:  hull2,
	}, nil
}

// MaskPath returns where the mask preview for rel is written.
func (r *Runner) MaskPath(rel string) string {
	stem := strings.TrimSuffix(rel, path.Ext(rel))
	return filepath.Join(r.cfg.MaskDir, filepath.FromSlash(stem)+"_mask.png")
}

func (r *Runner) writeMask(rel string, g *segment.Grid) error {
	p := r.cfg.Palette()
	img := g.Render(r.cfg.BackgroundColor().NRGBA(), p.Color1.NRGBA(), p.Color2.NRGBA())
	return imaging.SaveMask(r.MaskPath(rel), img, r.cfg.MaskScale)
}
