package loop

import (
	"fmt"
	"strings"

	"github.com/tomz197/skyraid/internal/draw"
	"github.com/tomz197/skyraid/internal/loop/config"
	"github.com/tomz197/skyraid/internal/object"
)

// HUD layout in field units.
const (
	hudLeft       = 10.0
	hudFirstLine  = 30.0
	hudLineHeight = 30.0
)

// drawHUD draws the in-game status lines.
func drawHUD(s draw.Surface, st *State, p *object.Player) {
	lines := [...]string{
		fmt.Sprintf("Score: %d", p.Score),
		fmt.Sprintf("Lives: %d", max(p.Lives, 0)),
		fmt.Sprintf("Missiles: %d", p.Missiles),
		fmt.Sprintf("Weapon: %s Lv.%d", p.Weapon, p.WeaponLevel),
		fmt.Sprintf("Wave: %d", st.Wave),
	}
	for i, line := range lines {
		y := hudFirstLine + float64(i)*hudLineHeight
		s.DrawText(line, hudLeft, y, draw.AlignLeft, config.ColorText)
	}
}

// drawGameOver dims the field and shows the final score.
func drawGameOver(s draw.Surface, field object.Field, p *object.Player) {
	cx, cy := field.Width/2, field.Height/2
	s.FillRect(0, 0, field.Width, field.Height, config.ColorOverlay)
	s.DrawText("GAME OVER", cx, cy-50, draw.AlignCenter, config.ColorText)
	s.DrawText(fmt.Sprintf("Final score: %d", p.Score), cx, cy, draw.AlignCenter, config.ColorText)
	s.DrawText("Press SPACE to restart", cx, cy+50, draw.AlignCenter, config.ColorText)
}

// drawPaused dims the field and shows how to resume.
func drawPaused(s draw.Surface, field object.Field) {
	cx, cy := field.Width/2, field.Height/2
	s.FillRect(0, 0, field.Width, field.Height, config.ColorOverlay)
	s.DrawText("PAUSED", cx, cy, draw.AlignCenter, config.ColorText)
	s.DrawText("Press P to resume", cx, cy+50, draw.AlignCenter, config.ColorText)
}

// typeName returns a short name for an entity's type, e.g. "enemy".
func typeName(obj object.Object) string {
	name := fmt.Sprintf("%T", obj)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}
