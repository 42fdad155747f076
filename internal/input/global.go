package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/marketing-hub/internal/keys"
	"github.com/nhle/marketing-hub/internal/state"
)

// Global wires the app-wide shortcuts to the controller: the palette
// chord, escape, and closing an overlay on a press outside it.
//
// The key listener lives from Mount to Unmount. The outside-press listener
// exists only while an overlay is open.
type Global struct {
	dispatcher *Dispatcher
	controller *state.Controller
	keys       *keys.KeyMap
	logger     *zap.Logger

	mounted        bool
	releaseKey     Release
	releasePointer Release
}

// NewGlobal binds d to c. Nothing is attached until Mount.
func NewGlobal(d *Dispatcher, c *state.Controller, km *keys.KeyMap, logger *zap.Logger) *Global {
	g := &Global{
		dispatcher: d,
		controller: c,
		keys:       km,
		logger:     logger,
	}
	c.Overlays.Observe(g.overlayChanged)
	return g
}

// Mount attaches the key listener, and the pointer listener when an
// overlay is already open. Calling Mount again has no effect.
func (g *Global) Mount() {
	if g.mounted {
		return
	}
	g.mounted = true
	g.releaseKey = g.dispatcher.OnKey(g.handleKey)
	if g.controller.Overlays.IsOpen() {
		g.attachPointer()
	}
	g.logger.Debug("global input mounted")
}

// Unmount releases every listener Mount attached. Calling it again has no
// effect.
func (g *Global) Unmount() {
	if !g.mounted {
		return
	}
	g.mounted = false
	g.releaseKey()
	g.releaseKey = nil
	g.detachPointer()
	g.logger.Debug("global input unmounted")
}

// Mounted reports whether the listeners are attached.
func (g *Global) Mounted() bool {
	return g.mounted
}

func (g *Global) handleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, g.keys.Palette):
		g.controller.Overlays.OpenCommandPalette()
		return true
	case key.Matches(msg, g.keys.Escape):
		g.controller.Escape()
		return true
	}
	return false
}

func (g *Global) handlePointer(ev PointerEvent) bool {
	if ev.Button != tea.MouseButtonLeft || ev.Surface.Contains(ev.X, ev.Y) {
		return false
	}
	g.logger.Debug("press outside overlay",
		zap.Int("x", ev.X),
		zap.Int("y", ev.Y),
		zap.Stringer("overlay", g.controller.Overlays.Kind()))
	g.controller.Overlays.CloseAll()
	return true
}

func (g *Global) overlayChanged(prev, next state.Overlay) {
	g.logger.Debug("overlay changed",
		zap.Stringer("from", state.KindOf(prev)),
		zap.Stringer("to", state.KindOf(next)))
	if !g.mounted {
		return
	}
	switch {
	case prev == nil && next != nil:
		g.attachPointer()
	case prev != nil && next == nil:
		g.detachPointer()
	}
}

func (g *Global) attachPointer() {
	if g.releasePointer != nil {
		return
	}
	g.releasePointer = g.dispatcher.OnPointerDown(g.handlePointer)
}

func (g *Global) detachPointer() {
	if g.releasePointer == nil {
		return
	}
	g.releasePointer()
	g.releasePointer = nil
}
