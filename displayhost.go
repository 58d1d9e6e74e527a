//go:build !headless

// displayhost.go - Default DisplaySink/InputSource backend, an
// ebiten.Game implementation: a mutex-guarded frame buffer written by
// Present and blitted on the next Draw, plus a queued InputEvent slice
// fed by ebiten's per-frame key/gamepad state. Ctrl+Shift+R queues an
// InputReset event so the scheduler can reinitialize the machine
// without tearing down the process.

package main

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	displayWidth  = fbWidth
	displayHeight = fbHeight
)

var ebitenKeyTable = map[ebiten.Key]HostKey{
	ebiten.KeyA: KeyA, ebiten.KeyB: KeyB, ebiten.KeyC: KeyC, ebiten.KeyD: KeyD,
	ebiten.KeyE: KeyE, ebiten.KeyF: KeyF, ebiten.KeyG: KeyG, ebiten.KeyH: KeyH,
	ebiten.KeyI: KeyI, ebiten.KeyJ: KeyJ, ebiten.KeyK: KeyK, ebiten.KeyL: KeyL,
	ebiten.KeyM: KeyM, ebiten.KeyN: KeyN, ebiten.KeyO: KeyO, ebiten.KeyP: KeyP,
	ebiten.KeyQ: KeyQ, ebiten.KeyR: KeyR, ebiten.KeyS: KeyS, ebiten.KeyT: KeyT,
	ebiten.KeyU: KeyU, ebiten.KeyV: KeyV, ebiten.KeyW: KeyW, ebiten.KeyX: KeyX,
	ebiten.KeyY: KeyY, ebiten.KeyZ: KeyZ,
	ebiten.Key0: Key0, ebiten.Key1: Key1, ebiten.Key2: Key2, ebiten.Key3: Key3,
	ebiten.Key4: Key4, ebiten.Key5: Key5, ebiten.Key6: Key6, ebiten.Key7: Key7,
	ebiten.Key8: Key8, ebiten.Key9: Key9,
	ebiten.KeyEnter: KeyReturn, ebiten.KeyEscape: KeyEscape,
	ebiten.KeyBackspace: KeyBackspace, ebiten.KeyTab: KeyTab,
	ebiten.KeySpace: KeySpace, ebiten.KeyArrowUp: KeyUp,
	ebiten.KeyArrowDown: KeyDown, ebiten.KeyArrowLeft: KeyLeft,
	ebiten.KeyArrowRight: KeyRight, ebiten.KeyF1: KeyF1, ebiten.KeyF2: KeyF2,
	ebiten.KeyF3: KeyF3, ebiten.KeyF4: KeyF4, ebiten.KeyF5: KeyF5,
	ebiten.KeyF6: KeyF6, ebiten.KeyF7: KeyF7, ebiten.KeyF8: KeyF8,
	ebiten.KeyF9: KeyF9, ebiten.KeyF10: KeyF10, ebiten.KeyF11: KeyF11,
	ebiten.KeyF12: KeyF12,
}

// DisplayHost implements DisplaySink, InputSource, and ebiten.Game. The
// scheduler calls Present/Poll from the emulation goroutine; ebiten
// calls Update/Draw/Layout from its own. All shared state goes through
// mu.
type DisplayHost struct {
	mu     sync.Mutex
	frame  []byte
	img    *ebiten.Image
	events []InputEvent
	closed bool
}

// NewDisplayHost opens an ebiten window sized for one display-plane
// frame and starts the ebiten run loop on its own goroutine (ebiten
// insists on owning the calling goroutine on some platforms, so the
// caller must not also call ebiten.RunGame).
func NewDisplayHost(title string) *DisplayHost {
	d := &DisplayHost{frame: make([]byte, displayWidth*displayHeight*4)}
	ebiten.SetWindowSize(displayWidth*2, displayHeight*2)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	go func() {
		_ = ebiten.RunGame(d)
		// RunGame returning means the window is gone; make sure the
		// scheduler sees a quit even if Update never observed the close.
		d.mu.Lock()
		d.closed = true
		d.queue(InputEvent{Kind: InputQuit})
		d.mu.Unlock()
	}()
	return d
}

// Present implements DisplaySink: it copies the decoded RGB frame into
// the buffer the next Draw call will blit.
func (d *DisplayHost) Present(rgb []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := 0; i+2 < len(rgb) && i/3*4+3 < len(d.frame); i += 3 {
		o := i / 3 * 4
		d.frame[o+0] = rgb[i+0]
		d.frame[o+1] = rgb[i+1]
		d.frame[o+2] = rgb[i+2]
		d.frame[o+3] = 0xFF
	}
	return nil
}

// Poll implements InputSource, draining the events queued by Update
// since the last call.
func (d *DisplayHost) Poll() []InputEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	ev := d.events
	d.events = nil
	return ev
}

func (d *DisplayHost) queue(ev InputEvent) {
	d.events = append(d.events, ev)
}

// Update implements ebiten.Game, translating key transitions and the
// first connected gamepad's D-pad/buttons into queued InputEvents.
func (d *DisplayHost) Update() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if ebiten.IsWindowBeingClosed() {
		d.closed = true
		d.queue(InputEvent{Kind: InputQuit})
		return nil
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		d.queue(InputEvent{Kind: InputReset})
	}

	for ek, hk := range ebitenKeyTable {
		if inpututil.IsKeyJustPressed(ek) {
			d.queue(InputEvent{Kind: InputKey, Key: hk, Pressed: true})
		}
		if inpututil.IsKeyJustReleased(ek) {
			d.queue(InputEvent{Kind: InputKey, Key: hk, Pressed: false})
		}
	}
	d.pollGamepad()
	return nil
}

// pollGamepad folds the first connected gamepad's D-pad and four face
// buttons into joystick InputEvents, so a real joystick can stand in
// for the keyboard-driven joystick emulation.
func (d *DisplayHost) pollGamepad() {
	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return
	}
	id := ids[0]
	var hatX, hatY int8
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		if v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal); v < -0.5 {
			hatX = -1
		} else if v > 0.5 {
			hatX = 1
		}
		if v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical); v < -0.5 {
			hatY = -1
		} else if v > 0.5 {
			hatY = 1
		}
	}
	d.queue(InputEvent{Kind: InputJoyHat, HatX: hatX, HatY: hatY})

	buttons := []struct {
		eb  ebiten.StandardGamepadButton
		btn uint16
	}{
		{ebiten.StandardGamepadButtonRightBottom, btnA},
		{ebiten.StandardGamepadButtonRightRight, btnB},
		{ebiten.StandardGamepadButtonRightTop, btnX},
		{ebiten.StandardGamepadButtonRightLeft, btnY},
	}
	for _, b := range buttons {
		pressed := ebiten.IsStandardGamepadButtonPressed(id, b.eb)
		d.queue(InputEvent{Kind: InputJoyButton, Button: b.btn, Pressed: pressed})
	}
}

// Draw implements ebiten.Game.
func (d *DisplayHost) Draw(screen *ebiten.Image) {
	d.mu.Lock()
	if d.img == nil {
		d.img = ebiten.NewImage(displayWidth, displayHeight)
	}
	d.img.WritePixels(d.frame)
	d.mu.Unlock()
	screen.DrawImage(d.img, nil)
}

// Layout implements ebiten.Game.
func (d *DisplayHost) Layout(_, _ int) (int, int) {
	return displayWidth, displayHeight
}
