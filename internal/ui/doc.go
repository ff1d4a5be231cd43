// Package ui renders tally's terminal output.
//
// # Counted writers
//
// Every visible character goes through a CountedWriter, which enforces a
// column budget so a line never wraps:
//
//	MaxLenWriter - truncates at maxLen columns; WriteASCII counts bytes,
//	               WriteText counts Unicode scalar values and never splits one
//	Direct       - no budget, for rendering into buffers
//
// Color and hyperlink sequences are zero-width and are written to Raw().
//
// # Progress line
//
// ProgressBarWithSuccess draws failed, success and pending segments, an
// in-progress marker and the remaining work into a fixed line width:
//
//	Progress: [#####>--------------]   5/40
//
// Below MinLineWidth it degrades to "Progress: 5/40". ComputeSegments holds
// the geometry and is exposed for callers that need the boundaries.
//
// # Colors
//
// Escape sequences come from a Palette over a termenv profile. Rendering
// defaults to plain ANSI colors; DisableColors switches to monochrome output
// (for --no-color).
package ui
