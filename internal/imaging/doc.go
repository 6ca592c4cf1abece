// Package imaging loads page images and prepares them for text recognition.
//
// Scanned or photographed lists are usually small, low-contrast and in
// color. Tesseract does noticeably better on a larger, high-contrast
// grayscale rendering, so every page goes through the same steps before
// recognition:
//
//  0. Optional crop to a region (see ResolveRegion), for multi-column pages
//  1. Grayscale conversion
//  2. Upscaling (2x by default) with a Lanczos filter
//  3. Contrast enhancement about the mean luminance (factor 2 by default)
//
// # Supported Formats
//
// Load decodes PNG, JPEG, GIF, BMP and TIFF. JPEG and TIFF images carrying an
// EXIF orientation tag are rotated upright on load.
//
// # Coordinate System
//
// Images keep the standard Go convention: (0,0) is the top-left corner, X
// increases rightward and Y increases downward. Preprocess always returns an
// image whose bounds start at (0,0).
//
// # Error Handling
//
// Load returns errors for missing files and undecodable data. Preprocess
// rejects nil images, non-positive scale factors and regions that fall
// outside the image; it does no I/O.
package imaging
