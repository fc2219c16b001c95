package lib

import "time"

// Window is one bounded date range within [bookmark, end_date]. All
// windows are half-open [Start, End); the final window of a span closes
// on the end boundary so the overall range is covered with no gaps and
// no overlaps.
type Window struct {
	Start       time.Time
	End         time.Time
	IncludesEnd bool
}

// Windows partitions [start, end] chronologically into sub-windows of at
// most maxLength. When the span divides evenly a degenerate closed
// [end, end] window covers the end boundary itself. An empty or inverted
// span yields no windows.
func Windows(start, end time.Time, maxLength time.Duration) []Window {
	var windows []Window

	cursor := start
	for cursor.Before(end) {
		next := cursor.Add(maxLength)
		switch {
		case next.Before(end):
			windows = append(windows, Window{Start: cursor, End: next})
		case next.Equal(end):
			windows = append(windows, Window{Start: cursor, End: next})
			windows = append(windows, Window{Start: end, End: end, IncludesEnd: true})
		default:
			windows = append(windows, Window{Start: cursor, End: end, IncludesEnd: true})
		}
		cursor = next
	}

	return windows
}

// Contains reports whether t falls inside the window's bounds
func (w Window) Contains(t time.Time) bool {
	if t.Before(w.Start) {
		return false
	}
	if t.Before(w.End) {
		return true
	}
	return w.IncludesEnd && t.Equal(w.End)
}
