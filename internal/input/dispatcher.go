// Package input routes terminal key and pointer events to registered
// listeners, and binds the app-wide shortcuts to the UI state controller.
package input

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler handles a key press. It returns true to consume the event.
type KeyHandler func(tea.KeyMsg) bool

// PointerHandler handles a pointer press. It returns true to consume the
// event.
type PointerHandler func(PointerEvent) bool

// PointerEvent is a mouse button press at a screen cell. Surface is the
// region the active overlay occupies on screen, empty when none is drawn.
type PointerEvent struct {
	X, Y    int
	Button  tea.MouseButton
	Surface Rect
}

// Release detaches a listener. Calling it more than once is harmless.
type Release func()

type listener[H any] struct {
	id      int
	handler H
}

// Dispatcher is a registry of key and pointer listeners.
type Dispatcher struct {
	nextID   int
	keys     []listener[KeyHandler]
	pointers []listener[PointerHandler]
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// OnKey registers h for key presses.
func (d *Dispatcher) OnKey(h KeyHandler) Release {
	id := d.id()
	d.keys = append(d.keys, listener[KeyHandler]{id: id, handler: h})
	return func() { d.keys = without(d.keys, id) }
}

// OnPointerDown registers h for pointer presses.
func (d *Dispatcher) OnPointerDown(h PointerHandler) Release {
	id := d.id()
	d.pointers = append(d.pointers, listener[PointerHandler]{id: id, handler: h})
	return func() { d.pointers = without(d.pointers, id) }
}

// DispatchKey offers msg to key listeners in registration order and
// reports whether one consumed it.
func (d *Dispatcher) DispatchKey(msg tea.KeyMsg) bool {
	for _, l := range snapshot(d.keys) {
		if l.handler(msg) {
			return true
		}
	}
	return false
}

// DispatchPointer offers ev to pointer listeners in registration order and
// reports whether one consumed it.
func (d *Dispatcher) DispatchPointer(ev PointerEvent) bool {
	for _, l := range snapshot(d.pointers) {
		if l.handler(ev) {
			return true
		}
	}
	return false
}

// Listeners returns the number of live key and pointer listeners.
func (d *Dispatcher) Listeners() (keys, pointers int) {
	return len(d.keys), len(d.pointers)
}

func (d *Dispatcher) id() int {
	d.nextID++
	return d.nextID
}

// snapshot copies ls so handlers may register or release listeners while
// a dispatch is in progress.
func snapshot[H any](ls []listener[H]) []listener[H] {
	out := make([]listener[H], len(ls))
	copy(out, ls)
	return out
}

func without[H any](ls []listener[H], id int) []listener[H] {
	for i, l := range ls {
		if l.id == id {
			return append(ls[:i:i], ls[i+1:]...)
		}
	}
	return ls
}
