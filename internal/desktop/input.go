package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/skyraid/internal/loop"
)

// keyBindings maps each input to the keys that trigger it.
var keyBindings = struct {
	left, right, up, down []ebiten.Key
	missile, pause        []ebiten.Key
	restart, quit         []ebiten.Key
}{
	left:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
	right:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
	up:      []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
	down:    []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
	missile: []ebiten.Key{ebiten.KeyM},
	pause:   []ebiten.Key{ebiten.KeyP},
	restart: []ebiten.Key{ebiten.KeySpace},
	quit:    []ebiten.Key{ebiten.KeyEscape},
}

// inputReader polls ebiten for the frame input. Keys report held state;
// the session does its own edge detection.
type inputReader struct {
	pressed func(ebiten.Key) bool
	mouse   drag
	touch   drag
	touches []ebiten.TouchID
}

func (r *inputReader) read() loop.Input {
	in := r.keys()

	x, y := ebiten.CursorPosition()
	dx, dy := r.mouse.track(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y)

	r.touches = ebiten.AppendTouchIDs(r.touches[:0])
	if len(r.touches) > 0 {
		tx, ty := ebiten.TouchPosition(r.touches[0])
		tdx, tdy := r.touch.track(true, tx, ty)
		dx, dy = dx+tdx, dy+tdy
	} else {
		r.touch.track(false, 0, 0)
	}

	in.PointerDX, in.PointerDY = dx, dy
	return in
}

// keys maps the keyboard state to an input.
func (r *inputReader) keys() loop.Input {
	held := func(keys []ebiten.Key) bool {
		for _, k := range keys {
			if r.pressed(k) {
				return true
			}
		}
		return false
	}
	return loop.Input{
		Left:    held(keyBindings.left),
		Right:   held(keyBindings.right),
		Up:      held(keyBindings.up),
		Down:    held(keyBindings.down),
		Missile: held(keyBindings.missile),
		Pause:   held(keyBindings.pause),
		Restart: held(keyBindings.restart),
		Quit:    held(keyBindings.quit),
	}
}

// drag turns a pressed pointer's positions into per-frame movement.
type drag struct {
	active bool
	x, y   int
}

// track records the pointer state for this frame and returns how far it
// moved since the previous frame. The first frame of a drag moves nothing.
func (d *drag) track(pressed bool, x, y int) (dx, dy float64) {
	if !pressed {
		d.active = false
		return 0, 0
	}
	if d.active {
		dx, dy = float64(x-d.x), float64(y-d.y)
	}
	d.active, d.x, d.y = true, x, y
	return dx, dy
}
