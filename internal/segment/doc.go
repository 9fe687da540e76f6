// Package segment classifies the pixels of a two-tone stimulus image.
//
// Every pixel is compared against two reference colors by exact match on all
// three channels. The result is a pair of pixel counts and a label grid with
// the same dimensions as the image, where each cell is Background, Group1 or
// Group2. A pixel that matches the first color is always Group1, even if the
// two reference colors are equal.
//
// The grid is the input to convex hull computation and also supports
// counting connected blobs of a label, which the batch driver uses to check a
// stimulus against the object counts encoded in its filename.
package segment
