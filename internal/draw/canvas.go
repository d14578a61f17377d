package draw

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/tomz197/skyraid/internal/assets"
)

// cell is one terminal character holding two stacked pixels.
type cell struct {
	top, bottom color.RGBA
}

// textOp is a line of text queued for the overlay pass.
type textOp struct {
	col, row int
	text     string
	color    color.RGBA
}

// spriteKey identifies a sprite scaled to a pixel size.
type spriteKey struct {
	name assets.Name
	w, h int
}

// Canvas is a truecolor drawing buffer with 2x vertical resolution using
// half-block characters. It implements Surface, scaling field units to
// terminal pixels.
type Canvas struct {
	termWidth      int          // Terminal columns
	termHeight     int          // Terminal rows
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x]

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when the terminal is larger
	// than the max resolution. 0-based columns/rows to skip.
	offsetCol int
	offsetRow int

	background color.RGBA
	assets     *assets.Library
	sprites    map[spriteKey]*image.RGBA

	texts []textOp

	// Last rendered frame, used to only emit changed cells.
	prev      []cell
	prevValid bool
	dirty     []bool // Cells covered by text in the previous frame

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewCanvas creates a canvas of termWidth x termHeight cells that maps a
// logicalWidth x logicalHeight field onto it. lib may be nil, in which case
// DrawImage is a no-op.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64, lib *assets.Library) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		background:    color.RGBA{A: 0xff},
		assets:        lib,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size. The next Render redraws every cell.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]color.RGBA, c.subPixelHeight*termWidth)
		c.prev = make([]cell, termWidth*termHeight)
		c.dirty = make([]bool, termWidth*termHeight)
		c.sprites = make(map[spriteKey]*image.RGBA)
		c.prevValid = false
		c.fill(c.background)
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetBackground sets the color Clear fills with.
func (c *Canvas) SetBackground(bg color.Color) {
	c.background = toRGBA(bg)
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.prevValid = false
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render emit every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	c.prevValid = false
}

// Clear resets all pixels to the background and drops queued text.
func (c *Canvas) Clear() {
	c.fill(c.background)
	c.texts = c.texts[:0]
}

func (c *Canvas) fill(clr color.RGBA) {
	for i := range c.pixels {
		c.pixels[i] = clr
	}
}

// pixelSpan maps a logical span to a half-open pixel range. Any span with
// positive size covers at least one pixel.
func pixelSpan(pos, size, scale float64) (int, int) {
	p0 := int(math.Floor(pos * scale))
	p1 := int(math.Floor((pos + size) * scale))
	if p1 <= p0 {
		p1 = p0 + 1
	}
	return p0, p1
}

func clampSpan(p0, p1, limit int) (int, int) {
	if p0 < 0 {
		p0 = 0
	}
	if p1 > limit {
		p1 = limit
	}
	return p0, p1
}

// FillRect fills a rectangle given in logical coordinates.
func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	src := toRGBA(clr)
	x0, x1 := pixelSpan(x, w, c.scaleX)
	y0, y1 := pixelSpan(y, h, c.scaleY)
	x0, x1 = clampSpan(x0, x1, c.termWidth)
	y0, y1 = clampSpan(y0, y1, c.subPixelHeight)

	for py := y0; py < y1; py++ {
		row := py * c.termWidth
		for px := x0; px < x1; px++ {
			c.pixels[row+px] = blend(c.pixels[row+px], src, 1)
		}
	}
}

// DrawImage draws the named sprite scaled to the logical rectangle.
func (c *Canvas) DrawImage(name assets.Name, x, y, w, h, alpha float64) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	px0, px1 := pixelSpan(x, w, c.scaleX)
	py0, py1 := pixelSpan(y, h, c.scaleY)
	sprite := c.sprite(name, px1-px0, py1-py0)
	if sprite == nil {
		return
	}

	x0, x1 := clampSpan(px0, px1, c.termWidth)
	y0, y1 := clampSpan(py0, py1, c.subPixelHeight)
	for py := y0; py < y1; py++ {
		row := py * c.termWidth
		for px := x0; px < x1; px++ {
			src := sprite.RGBAAt(px-px0, py-py0)
			c.pixels[row+px] = blend(c.pixels[row+px], src, alpha)
		}
	}
}

// sprite returns the named image scaled to w x h pixels, cached per size.
func (c *Canvas) sprite(name assets.Name, w, h int) *image.RGBA {
	key := spriteKey{name: name, w: w, h: h}
	if img, ok := c.sprites[key]; ok {
		return img
	}

	src := c.assets.Image(name)
	if src == nil {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	c.sprites[key] = dst
	return dst
}

// DrawText queues text for the overlay pass. Text is written after the
// pixels, one terminal cell per rune, on the row containing y.
func (c *Canvas) DrawText(text string, x, y float64, align Align, clr color.Color) {
	if text == "" {
		return
	}
	col := int(math.Floor(x * c.scaleX))
	row := int(math.Floor(y*c.scaleY)) / 2

	n := len([]rune(text))
	switch align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}

	c.texts = append(c.texts, textOp{col: col, row: row, text: text, color: toRGBA(clr)})
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the cells that changed since the last Render, then the
// queued text on top of them.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 8)

	var cur cell
	haveColor := false

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth
		cursorCol := -1

		for col := 0; col < c.termWidth; col++ {
			idx := row*c.termWidth + col
			cl := cell{top: c.pixels[topOffset+col], bottom: c.pixels[bottomOffset+col]}
			if c.prevValid && !c.dirty[idx] && c.prev[idx] == cl {
				continue
			}
			c.prev[idx] = cl
			c.dirty[idx] = false

			if cursorCol != col {
				c.moveCursor(col+1, row+1)
				cursorCol = col
			}
			if !haveColor || cur.top != cl.top {
				c.sgr(38, cl.top)
			}
			if !haveColor || cur.bottom != cl.bottom {
				c.sgr(48, cl.bottom)
			}
			cur = cl
			haveColor = true

			c.renderBuf.WriteRune(BlockUpperHalf)
			cursorCol++
		}
	}
	c.prevValid = true

	c.renderText()
	c.renderBuf.WriteString("\033[0m")

	return writeChunked(w, c.renderBuf.String())
}

// renderText writes queued text and marks the covered cells so the next
// Render repaints them.
func (c *Canvas) renderText() {
	for _, t := range c.texts {
		if t.row < 0 || t.row >= c.termHeight {
			continue
		}
		var bg color.RGBA
		first := true
		col := t.col
		for _, r := range t.text {
			if col >= 0 && col < c.termWidth {
				idx := t.row*c.termWidth + col
				c.dirty[idx] = true
				cellBg := c.pixels[t.row*2*c.termWidth+col]
				if first {
					c.moveCursor(col+1, t.row+1)
					c.sgr(38, t.color)
					c.sgr(48, cellBg)
					bg = cellBg
					first = false
				} else if cellBg != bg {
					c.sgr(48, cellBg)
					bg = cellBg
				}
				c.renderBuf.WriteRune(r)
			} else if !first {
				break
			}
			col++
		}
	}
}

// moveCursor appends an ANSI cursor position. col and row are 1-based
// canvas coordinates; the offset is applied here.
func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+c.offsetRow), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col+c.offsetCol), 10))
	c.renderBuf.WriteByte('H')
}

// sgr appends a 24-bit foreground (38) or background (48) color.
func (c *Canvas) sgr(layer int, clr color.RGBA) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(layer), 10))
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(clr.R), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(clr.G), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(clr.B), 10))
	c.renderBuf.WriteByte('m')
}

func writeChunked(w io.Writer, data string) error {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return nil
	}

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	buf.WriteString("\033[0m")
	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row < bottom; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// LogicalWidth returns the logical field width.
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical field height.
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the canvas column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// pixelAt returns the pixel at terminal pixel coordinates.
func (c *Canvas) pixelAt(x, y int) color.RGBA {
	return c.pixels[y*c.termWidth+x]
}

var _ Surface = (*Canvas)(nil)
