package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 5, W: 20, H: 8}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left", 10, 5, true},
		{"bottom-right", 29, 12, true},
		{"right edge exclusive", 30, 6, false},
		{"bottom edge exclusive", 12, 13, false},
		{"left of", 9, 6, false},
		{"above", 15, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.x, tt.y))
		})
	}

	assert.False(t, Rect{}.Contains(0, 0))
}

func TestDispatcher_RegistrationOrderAndConsumption(t *testing.T) {
	d := NewDispatcher()
	var calls []string

	d.OnKey(func(tea.KeyMsg) bool { calls = append(calls, "first"); return false })
	d.OnKey(func(tea.KeyMsg) bool { calls = append(calls, "second"); return true })
	d.OnKey(func(tea.KeyMsg) bool { calls = append(calls, "third"); return true })

	handled := d.DispatchKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, handled)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatcher_ReleaseIsIdempotent(t *testing.T) {
	d := NewDispatcher()
	release := d.OnPointerDown(func(PointerEvent) bool { return true })
	other := d.OnPointerDown(func(PointerEvent) bool { return false })

	_, pointers := d.Listeners()
	assert.Equal(t, 2, pointers)

	release()
	release()
	_, pointers = d.Listeners()
	assert.Equal(t, 1, pointers)

	assert.False(t, d.DispatchPointer(PointerEvent{}), "remaining listener does not consume")

	other()
	keys, pointers := d.Listeners()
	assert.Zero(t, keys)
	assert.Zero(t, pointers)
}

func TestDispatcher_ReleaseDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var release Release
	var later int

	release = d.OnKey(func(tea.KeyMsg) bool {
		release()
		return false
	})
	d.OnKey(func(tea.KeyMsg) bool {
		later++
		return false
	})

	assert.False(t, d.DispatchKey(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, 1, later, "listeners after a released one still run")

	keys, _ := d.Listeners()
	assert.Equal(t, 1, keys)
}

func TestDispatcher_Empty(t *testing.T) {
	d := NewDispatcher()
	assert.False(t, d.DispatchKey(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, d.DispatchPointer(PointerEvent{X: 1, Y: 1}))
}
