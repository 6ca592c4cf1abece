// Package extract runs the image-to-CSV extraction pipeline.
//
// A run processes the selected images strictly in order. For every image it
// loads the file, prepares it for recognition, runs OCR and feeds the text
// into one name list shared by the whole run:
//
//	load -> preprocess -> recognize -> parse -> (next image) -> write CSV
//
// The first failure aborts the run and is returned as a single error
// (*ImageLoadError, *PreprocessError or *RecognitionError). Nothing is
// written in that case; the CSV file is only produced after every image has
// been processed. An image that yields no names is not an error.
//
// Hooks report progress between images so a caller can show a status line
// and the raw OCR text as it arrives.
package extract
