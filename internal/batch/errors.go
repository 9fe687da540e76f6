package batch

import (
	"errors"
	"fmt"
)

// ErrMalformedName is returned when a filename does not follow the
// <prefix>_<ignored>_<label1>_<label2>.<ext> convention.
var ErrMalformedName = errors.New("malformed stimulus filename")

// Stage names the pipeline step an image failed in.
type Stage string

const (
	StageName    Stage = "name"
	StageLoad    Stage = "load"
	StageSegment Stage = "segment"
	StageHull    Stage = "hull"
	StageMask    Stage = "mask"
)

// ImageError is a failure while processing a single image.
type ImageError struct {
	Path  string // relative to the input root
	Stage Stage
	Err   error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Stage, e.Err)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}
