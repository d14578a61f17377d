package draw

import (
	"image/color"

	"github.com/tomz197/skyraid/internal/assets"
)

type opKind int

const (
	opClear opKind = iota
	opFillRect
	opImage
	opText
)

// op is one recorded Surface call.
type op struct {
	kind       opKind
	x, y, w, h float64
	alpha      float64
	color      color.Color
	name       assets.Name
	text       string
	align      Align
}

// Recorder is a Surface that stores calls for later replay. Frontends whose
// update and draw callbacks run separately record during update and replay
// on draw.
type Recorder struct {
	ops []op
}

// Reset drops all recorded calls, keeping the backing storage.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	return len(r.ops)
}

// Replay issues every recorded call on s in order.
func (r *Recorder) Replay(s Surface) {
	for _, o := range r.ops {
		switch o.kind {
		case opClear:
			s.Clear()
		case opFillRect:
			s.FillRect(o.x, o.y, o.w, o.h, o.color)
		case opImage:
			s.DrawImage(o.name, o.x, o.y, o.w, o.h, o.alpha)
		case opText:
			s.DrawText(o.text, o.x, o.y, o.align, o.color)
		}
	}
}

// Clear records a Clear call.
func (r *Recorder) Clear() {
	r.ops = append(r.ops, op{kind: opClear})
}

// FillRect records a FillRect call.
func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.ops = append(r.ops, op{kind: opFillRect, x: x, y: y, w: w, h: h, color: c})
}

// DrawImage records a DrawImage call.
func (r *Recorder) DrawImage(name assets.Name, x, y, w, h, alpha float64) {
	r.ops = append(r.ops, op{kind: opImage, name: name, x: x, y: y, w: w, h: h, alpha: alpha})
}

// DrawText records a DrawText call.
func (r *Recorder) DrawText(text string, x, y float64, align Align, c color.Color) {
	r.ops = append(r.ops, op{kind: opText, text: text, x: x, y: y, align: align, color: c})
}

var _ Surface = (*Recorder)(nil)
