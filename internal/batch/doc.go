// Package batch runs feature extraction over a directory of stimulus images.
//
// A run discovers every image under the input root, and for each one in
// sorted order parses the two object counts from its filename, segments it
// into the two color groups, measures the convex hull of each group, and
// finally writes one CSV row per image:
//
//	image,col1_N,col2_N,col1_TSA,col2_TSA,col1_CH,col2_CH
//
// # Failure Policy
//
// Per-image failures are reported as *ImageError naming the file and the
// stage that failed. With config.OnErrorAbort the first failure ends the run
// and no CSV is written. With config.OnErrorSkip the failure is recorded in
// the Report and the remaining images are processed.
//
// The CSV is written to a temporary file next to the destination and renamed
// into place, so an interrupted run never leaves a truncated file.
package batch
