// Package scene implements the runtime that owns live objects and drives
// them through a fixed per-tick cycle: sweep, update, draw, input, present.
//
// An object is any value embedding Base. Behavior is opted into by
// implementing the capability interfaces below; the loop checks for each
// one with a type assertion and skips objects that lack it.
package scene

import (
	"time"

	"github.com/vovakirdan/tui-scene/internal/core"
)

// ID identifies an object within its registry. IDs start at 1 and are never reused.
type ID uint64

// Object is anything the registry can own.
type Object interface {
	Entity() *Base
}

// Creator is called synchronously by Add once the object has its ID.
type Creator interface {
	Create()
}

// Updater is called once per tick on enabled objects.
type Updater interface {
	Update(elapsed time.Duration)
}

// Drawer is called once per tick on visible objects.
type Drawer interface {
	Draw(c *Canvas, elapsed time.Duration)
}

// TextInputHandler receives typed characters, including '\b' and '\n'.
type TextInputHandler interface {
	OnTextInput(elapsed time.Duration, ch rune)
}

// KeyPressHandler receives the transition of a button to held.
type KeyPressHandler interface {
	OnKeyPress(elapsed time.Duration, b core.Button)
}

// KeyHeldHandler receives one notification per tick for every held button.
type KeyHeldHandler interface {
	OnKeyPressed(elapsed time.Duration, b core.Button)
}

// KeyReleaseHandler receives the transition of a button to released.
type KeyReleaseHandler interface {
	OnKeyRelease(elapsed time.Duration, b core.Button)
}

// MouseMoveHandler receives the mouse position in world coordinates.
type MouseMoveHandler interface {
	OnMouseMove(elapsed time.Duration, x, y int)
}

// Destroyer is called when the object is removed at a sweep.
type Destroyer interface {
	OnDestroy()
}

// Base carries the identity and flags shared by every object.
// Embed it by value and the outer type satisfies Object.
type Base struct {
	X, Y int // World position

	id       ID
	scene    *Scene
	hidden   bool
	disabled bool
}

// Entity returns the embedded base.
func (b *Base) Entity() *Base { return b }

// ID returns the identity assigned by Add, or 0 before registration.
func (b *Base) ID() ID { return b.id }

// Scene returns the scene the object was added to.
func (b *Base) Scene() *Scene { return b.scene }

// Hide excludes the object from the draw phase.
func (b *Base) Hide() { b.hidden = true }

// Show includes the object in the draw phase again.
func (b *Base) Show() { b.hidden = false }

// Hidden reports whether the object is skipped when drawing.
func (b *Base) Hidden() bool { return b.hidden }

// Disable excludes the object from the update and input phases.
func (b *Base) Disable() { b.disabled = true }

// Enable includes the object in the update and input phases again.
func (b *Base) Enable() { b.disabled = false }

// Disabled reports whether the object is skipped by update and input.
func (b *Base) Disabled() bool { return b.disabled }

// Delete schedules the object for removal at the next sweep.
func (b *Base) Delete() {
	if b.scene != nil {
		b.scene.Delete(b.id)
	}
}

// DisableAllExceptMe gives the object exclusive input without a way back.
// Prefer PushFocus for anything that is dismissed later.
func (b *Base) DisableAllExceptMe() {
	if b.scene != nil {
		b.scene.DisableAllExceptMe(b)
	}
}

// PushFocus gives the object exclusive input until the matching PopFocus.
func (b *Base) PushFocus() {
	if b.scene != nil {
		b.scene.PushFocus(b)
	}
}

// PopFocus restores the enabled state saved by the last PushFocus.
func (b *Base) PopFocus() {
	if b.scene != nil {
		b.scene.PopFocus()
	}
}
