package logic

import (
	"math"

	"holdscroll/internal/domain"
)

// Thumb computes the scrollbar thumb for the given layout and position.
//
// The thumb height is the visible share of the track. Its top follows the
// first visible index and is interpolated towards the next index by the
// fraction of the first item scrolled out of view, so the thumb moves
// smoothly instead of snapping per item. The result always lies within
// [0, ViewportHeight]; degenerate metrics yield the zero geometry.
func Thumb(m domain.ViewportMetrics, pos domain.ScrollPosition) domain.ThumbGeometry {
	if m.TotalItems <= 0 || !(m.ViewportHeight > 0) {
		return domain.ThumbGeometry{}
	}

	total := float64(m.TotalItems)
	viewport := m.ViewportHeight
	index := clampInt(pos.Index, 0, m.TotalItems-1)
	visible := clampInt(m.VisibleItems, 0, m.TotalItems)

	height := viewport * (float64(visible) / total)

	top := float64(index) / total * viewport
	next := float64(index+1) / total * viewport

	fraction := 0.0
	if m.FirstItemHeight > 0 && pos.Offset > 0 {
		fraction = math.Min(pos.Offset/m.FirstItemHeight, 1)
	}
	top += fraction * (next - top)

	if top+height > viewport {
		top = viewport - height
	}
	if top < 0 {
		top = 0
	}

	return domain.ThumbGeometry{Top: top, Height: height}
}

// TapToIndex maps a tap on the track back to the item that should become
// the first visible one.
func TapToIndex(tap float64, m domain.ViewportMetrics) int {
	if m.TotalItems <= 0 || !(m.ViewportHeight > 0) {
		return 0
	}
	target := math.Round(tap / m.ViewportHeight * float64(m.TotalItems))
	if math.IsNaN(target) {
		return 0
	}
	if target < 0 {
		return 0
	}
	if target > float64(m.TotalItems-1) {
		return m.TotalItems - 1
	}
	return int(target)
}

// DragToItems converts a drag distance on the track into a distance in
// items, using the same ratio that maps items onto the track.
func DragToItems(dy float64, m domain.ViewportMetrics) float64 {
	if m.TotalItems <= 0 || !(m.ViewportHeight > 0) {
		return 0
	}
	return dy / m.ViewportHeight * float64(m.TotalItems)
}

// ThumbContains reports whether track row is one of the rows CellSpan draws
// the thumb on, so hit testing matches what is on screen.
func ThumbContains(g domain.ThumbGeometry, row, rows int) bool {
	start, end := CellSpan(g, rows)
	return row >= start && row < end
}

// TrackTap converts a tapped track row into a tap position. The rows are
// spread over the whole track so the first row reaches the top of the list
// and the last row its end.
func TrackTap(row, rows int) float64 {
	if rows <= 1 || row <= 0 {
		return 0
	}
	if row >= rows-1 {
		return float64(rows)
	}
	return float64(row) * float64(rows) / float64(rows-1)
}

// CellSpan rasterises the thumb onto a track of the given number of rows.
// It returns the half-open row range [start, end), at least one row long
// when the thumb is drawn, and never outside [0, rows).
func CellSpan(g domain.ThumbGeometry, rows int) (start, end int) {
	if rows <= 0 || !g.Drawn() {
		return 0, 0
	}

	start = int(math.Round(g.Top))
	end = int(math.Round(g.Bottom()))
	if end <= start {
		end = start + 1
	}
	if end > rows {
		end = rows
		if start >= end {
			start = end - 1
		}
	}
	if start < 0 {
		start = 0
	}
	return start, end
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
