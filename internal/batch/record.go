package batch

import (
	"strconv"
	"strings"
)

// Header is the first CSV row.
var Header = []string{"image", "col1_N", "col2_N", "col1_TSA", "col2_TSA", "col1_CH", "col2_CH"}

// Record holds the features of one image.
type Record struct {
	// Image is the path relative to the input root, with "/" separators.
	Image string

	Labels Labels

	// Count1 and Count2 are the pixel counts (TSA) of each color group.
	Count1 int
	Count2 int

	// Hull1 and Hull2 are the convex hull areas (CH) of each color group.
	Hull1 float64
	Hull2 float64
}

// Row formats the record as a CSV row matching Header.
func (r Record) Row() []string {
	return []string{
		r.Image,
		r.Labels.First,
		r.Labels.Second,
		strconv.Itoa(r.Count1),
		strconv.Itoa(r.Count2),
		formatArea(r.Hull1),
		formatArea(r.Hull2),
	}
}

// formatArea prints the shortest exact decimal, always with a fractional
// part: 9 -> "9.0", 10.5 -> "10.5".
func formatArea(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
