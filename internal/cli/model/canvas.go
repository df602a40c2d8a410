package model

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/subdivide/internal/cli/styles"
	"github.com/bnema/subdivide/internal/domain/partition"
)

type cellClass uint8

const (
	cellPane cellClass = iota
	cellLabel
	cellPreview
	cellDivider
	cellDividerActive
)

type cell struct {
	r     rune
	class cellClass
}

// activeDivider identifies the divider under drag, if any.
type activeDivider struct {
	split partition.SplitID
	index int
	ok    bool
}

// raster is a terminal-cell rendering of a layout.
type raster struct {
	width, height int
	cells         [][]cell
}

func newRaster(width, height int) *raster {
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = cell{r: ' '}
		}
	}
	return &raster{width: width, height: height, cells: cells}
}

// toCell maps a canvas percentage onto [0, size].
func toCell(p float64, size int) int {
	c := int(math.Round(p / partition.CanvasSize * float64(size)))
	return max(0, min(size, c))
}

func (r *raster) span(rect partition.Rect) (x0, y0, x1, y1 int) {
	return toCell(rect.X, r.width), toCell(rect.Y, r.height),
		toCell(rect.Right(), r.width), toCell(rect.Bottom(), r.height)
}

func (r *raster) set(x, y int, ch rune, class cellClass) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.cells[y][x] = cell{r: ch, class: class}
}

func (r *raster) fill(rect partition.Rect, ch rune, class cellClass) {
	x0, y0, x1, y1 := r.span(rect)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.set(x, y, ch, class)
		}
	}
}

func (r *raster) label(rect partition.Rect, text string) {
	x0, y0, x1, _ := r.span(rect)
	x := x0 + 1
	for _, ch := range text {
		if x >= x1 {
			return
		}
		r.set(x, y0, ch, cellLabel)
		x++
	}
}

func (r *raster) divider(entry partition.Entry, class cellClass) {
	x0, y0, x1, y1 := r.span(entry.Rect)
	if entry.Axis == partition.AxisRow {
		x := min(x0, r.width-1)
		for y := y0; y < y1; y++ {
			r.line(x, y, '│', class, junction(y, y0, y1, '┬', '┴'))
		}
		return
	}
	y := min(y0, r.height-1)
	for x := x0; x < x1; x++ {
		r.line(x, y, '─', class, junction(x, x0, x1, '├', '┤'))
	}
}

// junction picks the glyph for a line crossing another at pos along [from, to).
func junction(pos, from, to int, start, end rune) rune {
	switch pos {
	case from:
		return start
	case to - 1:
		return end
	default:
		return '┼'
	}
}

// line draws a divider cell. Crossing an earlier divider draws join instead.
func (r *raster) line(x, y int, ch rune, class cellClass, join rune) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	existing := r.cells[y][x]
	if existing.class >= cellDivider && existing.r != ch {
		ch = join
		if existing.class == cellDividerActive {
			class = cellDividerActive
		}
	}
	r.cells[y][x] = cell{r: ch, class: class}
}

// rasterize draws panes, labels, the split preview and dividers, in that
// order, onto a width x height grid.
func rasterize(layout partition.Layout, width, height int, showIDs bool, preview *partition.Rect, active activeDivider) *raster {
	r := newRaster(width, height)
	for _, entry := range layout.Panes() {
		r.fill(entry.Rect, ' ', cellPane)
		if showIDs {
			r.label(entry.Rect, strconv.FormatUint(uint64(entry.Pane), 10))
		}
	}
	if preview != nil {
		r.fill(*preview, '░', cellPreview)
	}
	for _, entry := range layout.Dividers() {
		class := cellDivider
		if active.ok && entry.Split == active.split && entry.Index == active.index {
			class = cellDividerActive
		}
		r.divider(entry, class)
	}
	return r
}

// String returns the grid without styling.
func (r *raster) String() string {
	var sb strings.Builder
	for y, row := range r.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteRune(c.r)
		}
	}
	return sb.String()
}

// Render styles runs of equal class with the theme.
func (r *raster) Render(theme *styles.Theme) string {
	styleOf := map[cellClass]lipgloss.Style{
		cellPane:          theme.Pane,
		cellLabel:         theme.PaneLabel,
		cellPreview:       theme.Preview,
		cellDivider:       theme.Divider,
		cellDividerActive: theme.DividerActive,
	}

	lines := make([]string, 0, len(r.cells))
	for _, row := range r.cells {
		var sb strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].class == row[start].class {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, c := range row[start:x] {
				run = append(run, c.r)
			}
			sb.WriteString(styleOf[row[start].class].Render(string(run)))
			start = x
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
