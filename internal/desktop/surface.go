package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/skyraid/internal/assets"
	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/loop/config"
)

// surface draws onto an ebiten image in field coordinates.
type surface struct {
	dst    *ebiten.Image
	images map[assets.Name]*ebiten.Image
}

func (s *surface) Clear() {
	s.dst.Fill(config.ColorBackground)
}

func (s *surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *surface) DrawImage(name assets.Name, x, y, w, h, alpha float64) {
	img := s.images[name]
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	s.dst.DrawImage(img, op)
}

// DrawText draws with the 7x13 bitmap font; y is the top of the line.
func (s *surface) DrawText(str string, x, y float64, align draw.Align, c color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, str).Ceil()

	left := int(x)
	switch align {
	case draw.AlignCenter:
		left -= width / 2
	case draw.AlignRight:
		left -= width
	}
	text.Draw(s.dst, str, face, left, int(y)+face.Metrics().Ascent.Ceil(), c)
}

var _ draw.Surface = (*surface)(nil)
