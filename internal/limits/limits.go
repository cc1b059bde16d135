// Package limits centralizes size caps shared across fetching, logging,
// and rendering.
package limits

const (
	// SampleRowsDefault is the row count requested when a sample fetch
	// does not specify one.
	SampleRowsDefault = 100

	// SampleRowsMax caps rows per sample fetch. Render cost grows linearly
	// with rows and the samples panel never shows more than a screenful.
	SampleRowsMax = 500

	// ViewportMaxCols and ViewportMaxRows bound terminal size reports.
	// Some terminals report garbage on resize storms.
	ViewportMaxCols = 500
	ViewportMaxRows = 200

	// PayloadInspectLimit bounds how many payload bytes are hashed when
	// redacted payload logging is active.
	PayloadInspectLimit = 64 * 1024
)

// ClampSampleRows normalizes a requested sample row count.
func ClampSampleRows(n int) int {
	if n <= 0 {
		return SampleRowsDefault
	}
	if n > SampleRowsMax {
		return SampleRowsMax
	}
	return n
}

// ClampViewport normalizes a reported terminal size.
func ClampViewport(cols, rows int) (int, int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols > ViewportMaxCols {
		cols = ViewportMaxCols
	}
	if rows > ViewportMaxRows {
		rows = ViewportMaxRows
	}
	return cols, rows
}
