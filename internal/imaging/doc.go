// Package imaging provides the image input and output used by the stimulus
// feature extractor.
//
// This package loads stimulus images from disk, normalizes them to a single
// pixel layout, parses the reference colors used for segmentation, reports the
// dominant colors of an image for diagnostics, and writes label-mask previews.
// All coordinates use the standard image convention where (0,0) is the
// top-left corner, X increases rightward, and Y increases downward.
//
// # Pixel Layout
//
// Every loaded image is converted to *image.NRGBA. Stimulus files arrive as
// paletted, RGB, RGBA or 16-bit PNGs depending on the tool that rendered them;
// normalizing once means exact color comparison downstream always works on
// straight 8-bit channels.
//
// # Supported Formats
//
// Decoders are registered for PNG, JPEG and GIF from the standard library and
// for BMP, TIFF and WebP from golang.org/x/image. Mask previews are always
// written as PNG.
//
// # Color Representation
//
// Reference colors are written as hex strings ("#FFFF00", or the short form
// "#FF0") and parsed into RGBColor. Alpha is never part of a reference color.
//
// # Error Handling
//
// Functions return wrapped errors for:
//   - File I/O errors during image loading or mask writing
//   - Undecodable image data
//   - Malformed color strings
package imaging
